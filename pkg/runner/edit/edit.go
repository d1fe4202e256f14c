package edit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/printers"
	"github.com/calebjsmith7/cue/pkg/task"
)

// Edit replaces a task with an updated copy under a fresh id. Nil fields are
// left as they were. The new id is printed; anything keyed by the old id no
// longer resolves.
type Edit struct {
	Service *app.Service

	ID        string
	Title     *string
	Notes     *string
	Recurring *string
	BucketRef *string
	Tags      *[]string
	On        *time.Time
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	prev, ok := n.Service.TaskByID(n.ID)
	if !ok {
		return fmt.Errorf("no task %q", n.ID)
	}

	draft := prev.Clone()
	if n.Title != nil {
		draft.Title = *n.Title
	}
	if n.Notes != nil {
		draft.Notes = *n.Notes
	}
	if n.Tags != nil {
		draft.Tags = *n.Tags
	}
	if n.On != nil {
		draft.StartDate = task.Timestamp{Time: *n.On}
	}
	if n.Recurring != nil {
		draft.RecurringDetails = *n.Recurring
		draft.IsRecurring = *n.Recurring != ""
	}
	if n.BucketRef != nil {
		b, ok := n.Service.FindBucket(*n.BucketRef)
		if !ok {
			return fmt.Errorf("no bucket %q", *n.BucketRef)
		}
		draft.BucketID = b.ID
	}

	edited := n.Service.EditTask(n.ID, draft)
	fmt.Printf("edited, new id: %s\n", edited.ID)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	all := n.Service.TasksInBucket(edited.BucketID)
	pp.TitleWithCount(bucketName(n.Service, edited.BucketID), len(all))
	pp.Tasks(n.Service.UrgencyTable(), all...)

	return nil
}

func bucketName(s *app.Service, id string) string {
	if b, ok := s.FindBucket(id); ok {
		return b.Name
	}
	return id
}
