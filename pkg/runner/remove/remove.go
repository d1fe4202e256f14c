package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/printers"
)

const (
	KindTask   = "task"
	KindBucket = "bucket"
	KindTag    = "tag"
)

// Remove deletes a task, tag, or bucket. Removing a bucket also removes
// every task in it.
type Remove struct {
	Service *app.Service

	Kind string
	Ref  string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	pp := printers.PrettyPrint{ShowID: true}

	switch n.Kind {
	case KindTask:
		n.Service.RemoveTask(n.Ref)
		fmt.Println("")
		ranked := n.Service.Cue(nil)
		pp.TitleWithCount("Cue", len(ranked))
		pp.Cue(n.Service.UrgencyTable(), ranked...)

	case KindBucket:
		b, ok := n.Service.FindBucket(n.Ref)
		if !ok {
			return fmt.Errorf("no bucket %q", n.Ref)
		}
		n.Service.RemoveBucket(b.ID)
		fmt.Println("")
		pp.Title("Buckets")
		pp.Buckets(n.Service.Buckets()...)

	case KindTag:
		n.Service.RemoveTag(n.Ref)
		fmt.Println("")
		pp.Title("Tags")
		pp.Tags(n.Service.Tags()...)

	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}

	return nil
}
