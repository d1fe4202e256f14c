package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/task"
)

// TaskOptions captures the task attribute flags shared by add and edit.
type TaskOptions struct {
	Title     string
	Tags      []string
	Recurring string
	Notes     string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil,
		"Tag the task by tag name; repeatable.")
	cmd.Flags().StringVarP(&o.Recurring, "recurring", "r", "",
		"Make the task recurring: Daily, Weekly, or Monthly.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes.")
}

// ValidateRecurring rejects recurrence values the cue would silently never
// show.
func (o *TaskOptions) ValidateRecurring() error {
	switch o.Recurring {
	case "", task.Daily, task.Weekly, task.Monthly:
		return nil
	}
	return fmt.Errorf("invalid recurrence %q, want Daily, Weekly, or Monthly", o.Recurring)
}
