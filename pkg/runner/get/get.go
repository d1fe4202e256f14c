package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/printers"
)

// Kind selects what Get prints.
const (
	KindCue     = "cue"
	KindTasks   = "tasks"
	KindBuckets = "buckets"
	KindTags    = "tags"
)

type Get struct {
	Service *app.Service

	Kind      string
	BucketRef string
	ShowID    bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.Kind {
	case KindCue, "":
		ranked := n.Service.Cue(nil)
		pp.TitleWithCount("Cue", len(ranked))
		pp.Cue(n.Service.UrgencyTable(), ranked...)

	case KindTasks:
		if n.BucketRef != "" {
			b, ok := n.Service.FindBucket(n.BucketRef)
			if !ok {
				return fmt.Errorf("no bucket %q", n.BucketRef)
			}
			all := n.Service.TasksInBucket(b.ID)
			pp.TitleWithCount(b.Name, len(all))
			pp.Tasks(n.Service.UrgencyTable(), all...)
			return nil
		}
		for _, b := range n.Service.Buckets() {
			all := n.Service.TasksInBucket(b.ID)
			pp.TitleWithCount(b.Name, len(all))
			pp.Tasks(n.Service.UrgencyTable(), all...)
		}

	case KindBuckets:
		pp.Title("Buckets")
		pp.Buckets(n.Service.Buckets()...)

	case KindTags:
		pp.Title("Tags")
		pp.Tags(n.Service.Tags()...)

	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}

	return nil
}
