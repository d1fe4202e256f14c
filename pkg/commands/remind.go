package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/logging"
	"github.com/calebjsmith7/cue/pkg/notify"
	"github.com/calebjsmith7/cue/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	daemon := false
	at := notify.DefaultAt

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print the daily cue summary, or run the daily schedule",
		Example: `
cue remind
cue remind --daemon --at 8:30
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := remind.Remind{
				Service: svc,
				Log:     logging.Default(),
				Out:     os.Stdout,
				Daemon:  daemon,
				At:      at,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false,
		"Keep running and fire the reminder daily.")
	cmd.Flags().StringVar(&at, "at", notify.DefaultAt,
		"Time of day to fire, hh:mm.")

	topLevel.AddCommand(cmd)
}
