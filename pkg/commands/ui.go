package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive cue",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(svc), tea.WithAltScreen())
			_, err = p.Run()
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
