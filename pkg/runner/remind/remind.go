package remind

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/notify"
)

// Remind emits the daily summary once, or keeps a daily schedule running
// until the context is cancelled.
type Remind struct {
	Service *app.Service
	Log     *zap.SugaredLogger
	Out     io.Writer

	Daemon bool
	At     string
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remind, no service")
	}

	s := &notify.Scheduler{Service: n.Service, Log: n.Log, Out: n.Out}

	if !n.Daemon {
		s.Fire()
		return nil
	}

	if err := s.Start(n.At); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}
