// Package complete provides the runner logic for finishing tasks.
package complete

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/printers"
)

// Complete finishes a task by id: one-time tasks are removed, recurring ones
// roll forward to their next occurrence.
type Complete struct {
	ID      string
	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	n.Service.CompleteTask(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	ranked := n.Service.Cue(nil)
	pp.TitleWithCount("Cue", len(ranked))
	pp.Cue(n.Service.UrgencyTable(), ranked...)

	return nil
}
