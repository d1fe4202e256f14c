package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			v := svc.Visuals()
			fmt.Println("")
			_, _ = color.New(color.Bold, color.Underline).Println("Settings")
			fmt.Printf("notifications: %v\n", svc.NotificationsEnabled())
			fmt.Printf("background: %s\n", v.Background)
			fmt.Printf("bucket color: %s\n", v.BucketColor)
			fmt.Printf("randomize bucket colors: %v\n", v.RandomizeBucketColors)
			fmt.Println("")
			return nil
		},
	}

	addSettingsNotifications(cmd)
	addSettingsVisuals(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsNotifications(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "notifications on|off",
		Short:     "Toggle the daily reminder",
		ValidArgs: []string{"on", "off"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return errors.New("requires on or off")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			svc.SetNotificationsEnabled(args[0] == "on")
			fmt.Printf("notifications: %s\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addSettingsVisuals(topLevel *cobra.Command) {
	var background, bucketColor string
	var randomize bool

	cmd := &cobra.Command{
		Use:   "visuals",
		Short: "Change the shelf visuals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			v := svc.Visuals()
			if cmd.Flags().Changed("background") {
				v.Background = background
			}
			if cmd.Flags().Changed("bucket-color") {
				v.BucketColor = bucketColor
			}
			if cmd.Flags().Changed("randomize") {
				v.RandomizeBucketColors = randomize
			}
			svc.SetVisuals(v)
			fmt.Printf("background: %s, bucket color: %s, randomize: %v\n",
				v.Background, v.BucketColor, v.RandomizeBucketColors)
			return nil
		},
	}

	cmd.Flags().StringVar(&background, "background", "", "Shelf background.")
	cmd.Flags().StringVar(&bucketColor, "bucket-color", "", "Bucket color.")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "Randomize bucket colors.")

	topLevel.AddCommand(cmd)
}
