package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/printers"
	"github.com/calebjsmith7/cue/pkg/task"
)

// Add creates a task in a bucket and prints the bucket's tasks.
type Add struct {
	Service *app.Service

	Title     string
	BucketRef string
	Tags      []string
	Recurring string
	On        *time.Time
	Notes     string
	ShowID    bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	b, ok := n.Service.FindBucket(n.BucketRef)
	if !ok {
		return fmt.Errorf("no bucket %q, create it first: cue add bucket %q", n.BucketRef, n.BucketRef)
	}

	t := task.New(b.ID, n.Title)
	t.Tags = n.Tags
	t.Notes = n.Notes
	if n.Recurring != "" {
		t.IsRecurring = true
		t.RecurringDetails = n.Recurring
	}
	start := time.Now()
	if n.On != nil {
		start = *n.On
	}
	t.StartDate = task.Timestamp{Time: start}

	n.Service.AddTask(t)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	all := n.Service.TasksInBucket(b.ID)
	pp.TitleWithCount(b.Name, len(all))
	pp.Tasks(n.Service.UrgencyTable(), all...)

	return nil
}
