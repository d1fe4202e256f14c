package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/calebjsmith7/cue/pkg/bucket"
	"github.com/calebjsmith7/cue/pkg/cue"
	"github.com/calebjsmith7/cue/pkg/tag"
	"github.com/calebjsmith7/cue/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

const layoutUS = "January 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Cue prints the ranked view: the top task emphasized, the remainder as a
// table ordered as given.
func (pp *PrettyPrint) Cue(table tag.UrgencyTable, tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing in the cue\n\n")
		return
	}

	top := tasks[0]
	y := color.New(color.FgHiYellow, color.Bold)
	_, _ = y.Printf("▶ %s", top.Title)
	_, _ = color.New(color.Faint).Printf("  %.1f\n", cue.Score(top, table))
	if pp.ShowID {
		_, _ = color.New(color.Faint, color.Italic).Printf("  %s\n", top.ID)
	}
	if len(top.Tags) > 0 {
		_, _ = color.New(color.Faint).Printf("  %s\n", strings.Join(top.Tags, ", "))
	}
	fmt.Println("")

	if len(tasks) == 1 {
		return
	}
	pp.rows(table, tasks[1:]...)
}

// Tasks prints a bucket's tasks in stored order.
func (pp *PrettyPrint) Tasks(table tag.UrgencyTable, tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	pp.rows(table, tasks...)
}

func (pp *PrettyPrint) rows(table tag.UrgencyTable, tasks ...*task.Task) {
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range tasks {
		when := t.RecurringDetails
		if !t.IsRecurring {
			when = t.StartDate.Local().Format(layoutUS)
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, fmt.Sprintf("%.1f", cue.Score(t, table)), t.Title, strings.Join(t.Tags, ", "), when)
		} else {
			tbl.AddRow(fmt.Sprintf("%.1f", cue.Score(t, table)), t.Title, strings.Join(t.Tags, ", "), when)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) Buckets(buckets ...bucket.Bucket) {
	if len(buckets) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, b := range buckets {
		tbl.AddRow(b.ID, b.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) Tags(tags ...tag.Tag) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tags {
		tbl.AddRow(t.ID, t.Name, t.Urgency)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
