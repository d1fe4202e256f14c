package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/commands/options"
	"github.com/calebjsmith7/cue/pkg/printers"
	"github.com/calebjsmith7/cue/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task, bucket, or tag",
		Example: `
cue add bucket Home
cue add task Water plants --bucket Home --tag "Low Priority" --recurring Weekly
cue add tag Errands
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddBucket(cmd)
	addAddTag(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "task <title>",
		Short: "Add a task to a bucket",
		Example: `
cue add task Water plants --bucket Home
cue add task Pay rent --bucket Home --recurring Monthly --on "2026-3-1"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := to.ValidateRecurring(); err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := add.Add{
				Service:   svc,
				Title:     to.Title,
				BucketRef: bo.Bucket,
				Tags:      to.Tags,
				Recurring: to.Recurring,
				On:        on,
				Notes:     to.Notes,
				ShowID:    io.ShowID,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddTaskArgs(cmd, to)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddBucket(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "bucket <name>",
		Short: "Add a bucket",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			b := svc.AddBucket(strings.Join(args, " "))
			if b.ID == "" {
				return errors.New("bucket name required")
			}
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Buckets")
			pp.Buckets(svc.Buckets()...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addAddTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag <name>",
		Short: "Add a tag with the default urgency",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			t := svc.AddTag(strings.Join(args, " "))
			if t.ID == "" {
				return errors.New("tag name required")
			}
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Tags")
			pp.Tags(svc.Tags()...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
