// Package notify composes the daily reminder from the ranked cue.
package notify

import (
	"fmt"
	"time"

	"github.com/calebjsmith7/cue/pkg/task"
)

type Message struct {
	Title string
	Body  string
}

// Compose builds the reminder for the given ranked cue. The cue should come
// from ranking with an empty exclusion set; the reminder summarizes the whole
// day, not a session.
func Compose(ranked []*task.Task, now time.Time) Message {
	first := "No tasks available"
	if len(ranked) > 0 {
		first = ranked[0].Title
	}
	return Message{
		Title: Greeting(now) + "!",
		Body:  fmt.Sprintf("You have %d items in your cue. The first task is %q.", len(ranked), first),
	}
}

func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

func (m Message) String() string {
	return m.Title + " " + m.Body
}
