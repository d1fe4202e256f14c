package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/commands/options"
	"github.com/calebjsmith7/cue/pkg/logging"
	"github.com/calebjsmith7/cue/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cue",
		Short: base.Wrap80("Bucketed tasks, ranked by tag urgency, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addEdit(topLevel)
	addRemind(topLevel)
	addSettings(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// newService loads persistence and the in-memory stores for one invocation.
func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.Load(p, logging.Default()), nil
}
