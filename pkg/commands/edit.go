package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/commands/options"
	"github.com/calebjsmith7/cue/pkg/printers"
	"github.com/calebjsmith7/cue/pkg/runner/edit"
	"github.com/calebjsmith7/cue/pkg/tag"
)

func addEdit(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Edit a task; the task gets a new id",
		Example: `
cue edit <task id> --title "Water all the plants"
cue edit <task id> --bucket Work --recurring ""
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
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

			s := edit.Edit{
				Service: svc,
				ID:      args[0],
				On:      on,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = &to.Notes
			}
			if cmd.Flags().Changed("recurring") {
				s.Recurring = &to.Recurring
			}
			if cmd.Flags().Changed("bucket") {
				s.BucketRef = &bo.Bucket
			}
			if cmd.Flags().Changed("tag") {
				s.Tags = &to.Tags
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddBucketArgs(cmd, bo)
	options.AddTaskArgs(cmd, to)
	options.AddOnArgs(cmd, oo)

	addEditTag(cmd)

	topLevel.AddCommand(cmd)
}

func addEditTag(topLevel *cobra.Command) {
	var name string
	var urgency int

	cmd := &cobra.Command{
		Use:   "tag <tag id>",
		Short: "Change a tag's name or urgency; the id stays",
		Example: `
cue edit tag <tag id> --urgency 8
cue edit tag <tag id> --name Chores
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one tag id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			partial := tag.Tag{ID: args[0]}
			if cmd.Flags().Changed("name") {
				partial.Name = name
			}
			if cmd.Flags().Changed("urgency") {
				partial.Urgency = urgency
			}
			svc.UpdateTag(partial)

			pp := printers.PrettyPrint{ShowID: true}
			pp.NewLine()
			pp.Title("Tags")
			pp.Tags(svc.Tags()...)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name. Tasks keep the old name.")
	cmd.Flags().IntVar(&urgency, "urgency", 0, "New urgency, 1 to 10.")

	topLevel.AddCommand(cmd)
}
