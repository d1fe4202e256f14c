// Package cue ranks the currently-due tasks by tag-derived urgency. It is
// pure: callers hand it the task and tag collections and an exclusion set,
// and get back an ordered view with no side effects on either store.
package cue

import (
	"sort"
	"time"

	"github.com/calebjsmith7/cue/pkg/tag"
	"github.com/calebjsmith7/cue/pkg/task"
)

// window is how far ahead, in days, weekly and monthly tasks surface.
const window = 10

// Score returns the mean urgency of the task's tags. Names missing from the
// table weigh in at the table's fallback; a task with no tags scores zero.
func Score(t *task.Task, table tag.UrgencyTable) float64 {
	if len(t.Tags) == 0 {
		return 0
	}
	total := 0
	for _, name := range t.Tags {
		total += table.Lookup(name)
	}
	return float64(total) / float64(len(t.Tags))
}

// Due reports whether the task belongs in the cue at the given instant.
//
// One-time tasks are due once their start date is reached (inclusive).
// Daily tasks are always due. Weekly tasks surface when the start date is
// between now and ten days out. Monthly tasks use a day-of-month window
// rather than true date arithmetic: due earlier this month, or within the
// first days of next month when the window crosses a boundary. A start on
// day 31 can slip a 30-day window; that asymmetry is part of the contract
// for data written by earlier releases.
func Due(t *task.Task, now time.Time) bool {
	start := t.StartDate.Time

	if !t.IsRecurring {
		return !start.After(now)
	}

	switch t.RecurringDetails {
	case task.Daily:
		return true
	case task.Weekly:
		days := start.Sub(now).Hours() / 24
		return days >= 0 && days <= window
	case task.Monthly:
		ahead := now.AddDate(0, 0, window)
		dueThisMonth := start.Day() >= now.Day() && start.Month() == now.Month()
		dueNextMonth := start.Day() <= ahead.Day() && start.Month() == ahead.Month()
		return dueThisMonth || dueNextMonth
	}

	return false
}

// Rank filters tasks down to those due now and not excluded, ordered by
// descending urgency score. The sort is stable, so ties keep their original
// relative order. Tasks whose ids appear in excluded never qualify; the cue
// screen uses this for items completed in the current session.
func Rank(tasks []*task.Task, table tag.UrgencyTable, excluded map[string]bool, now time.Time) []*task.Task {
	ranked := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if excluded[t.ID] {
			continue
		}
		if Due(t, now) {
			ranked = append(ranked, t)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], table) > Score(ranked[j], table)
	})
	return ranked
}
