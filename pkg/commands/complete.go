package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/commands/options"
	"github.com/calebjsmith7/cue/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done"},
		Short:   "Complete a task",
		Example: `
cue complete <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:      io.ID,
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
