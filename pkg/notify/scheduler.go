package notify

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/calebjsmith7/cue/pkg/app"
)

// DefaultAt is when the daily reminder fires.
const DefaultAt = "8:30"

// Scheduler fires the daily reminder on a cron schedule. The reminder is
// skipped while notifications are disabled in settings.
type Scheduler struct {
	Service *app.Service
	Log     *zap.SugaredLogger
	Out     io.Writer

	c *cron.Cron
}

// Start schedules the daily reminder at hh:mm and returns immediately.
func (s *Scheduler) Start(at string) error {
	hour, minute, err := parseAt(at)
	if err != nil {
		return err
	}
	s.c = cron.New()
	if _, err := s.c.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), s.Fire); err != nil {
		return err
	}
	s.c.Start()
	return nil
}

// Stop halts the schedule, waiting for a running fire to finish.
func (s *Scheduler) Stop() {
	if s.c != nil {
		<-s.c.Stop().Done()
	}
}

// Fire composes and emits the reminder once, honoring the settings toggle.
func (s *Scheduler) Fire() {
	if !s.Service.NotificationsEnabled() {
		if s.Log != nil {
			s.Log.Infow("notifications disabled, skipping reminder")
		}
		return
	}
	msg := Compose(s.Service.Cue(nil), time.Now())
	fmt.Fprintf(s.Out, "%s\n%s\n", msg.Title, msg.Body)
}

func parseAt(at string) (hour, minute int, err error) {
	if at == "" {
		at = DefaultAt
	}
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("notify: invalid time %q, want hh:mm", at)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("notify: invalid hour in %q", at)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("notify: invalid minute in %q", at)
	}
	return hour, minute, nil
}
