package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a task, bucket, or tag",
		Example: `
cue remove task <task id>
cue remove bucket Home
cue remove tag <tag id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveKind(cmd, remove.KindTask, "task <id>", "Remove a task by id")
	addRemoveKind(cmd, remove.KindBucket, "bucket <name or id>",
		"Remove a bucket and every task in it")
	addRemoveKind(cmd, remove.KindTag, "tag <id>",
		"Remove a tag; tasks keep the dangling name")

	topLevel.AddCommand(cmd)
}

func addRemoveKind(topLevel *cobra.Command, kind, use, short string) {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a " + kind + " reference")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Service: svc,
				Kind:    kind,
				Ref:     strings.Join(args, " "),
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
