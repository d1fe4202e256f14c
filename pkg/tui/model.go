// Package tui implements the interactive cue screen, a bubbletea program
// over the same Service the commands use.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calebjsmith7/cue/pkg/app"
	"github.com/calebjsmith7/cue/pkg/cue"
	"github.com/calebjsmith7/cue/pkg/notify"
	"github.com/calebjsmith7/cue/pkg/store"
	"github.com/calebjsmith7/cue/pkg/tag"
	"github.com/calebjsmith7/cue/pkg/task"
)

// storeChanged reports an external write to the persisted collections.
type storeChanged struct{}

type Model struct {
	svc   *app.Service
	theme Theme

	// excluded holds ids completed this session so they stay out of the
	// ranked view even before the store settles.
	excluded map[string]bool
	ranked   []*task.Task
	table    tag.UrgencyTable

	cursor int
	width  int
	height int

	events <-chan store.Event
	cancel context.CancelFunc
}

func New(svc *app.Service) *Model {
	m := &Model{
		svc:      svc,
		theme:    DefaultTheme(),
		excluded: map[string]bool{},
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.svc.Persistence == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	events, err := m.svc.Persistence.Watch(ctx)
	if err != nil {
		cancel()
		m.svc.Log.Warnw("watch unavailable", "error", err)
		return nil
	}
	m.events = events
	m.cancel = cancel
	return m.waitForChange()
}

// waitForChange blocks on the watch channel and surfaces the next external
// write as a storeChanged message.
func (m *Model) waitForChange() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return storeChanged{}
	}
}

func (m *Model) refresh() {
	m.table = m.svc.UrgencyTable()
	m.ranked = m.svc.Cue(m.excluded)
	if m.cursor >= len(m.ranked) {
		m.cursor = len(m.ranked) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case storeChanged:
		m.svc.Reload()
		m.refresh()
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit

		case "j", "down":
			if m.cursor < len(m.ranked)-1 {
				m.cursor++
			}

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}

		case "c", "enter":
			if m.cursor < len(m.ranked) {
				id := m.ranked[m.cursor].ID
				m.excluded[id] = true
				m.svc.CompleteTask(id)
				m.refresh()
			}

		case "d":
			if m.cursor < len(m.ranked) {
				m.svc.RemoveTask(m.ranked[m.cursor].ID)
				m.refresh()
			}

		case "r":
			m.svc.Reload()
			m.refresh()
		}
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	now := time.Now()
	b.WriteString(m.theme.Header.Render(notify.Greeting(now)))
	b.WriteString("\n\n")

	if len(m.ranked) == 0 {
		b.WriteString(m.theme.Dim.Render("Nothing in the cue. Enjoy the quiet."))
		b.WriteString("\n\n")
		b.WriteString(m.helpView())
		return b.String()
	}

	top := m.ranked[0]
	box := m.theme.TopTitle.Render(top.Title) + "\n" +
		m.tagsView(top) + "\n" +
		m.theme.Score.Render(fmt.Sprintf("score %.2f", cue.Score(top, m.table)))
	b.WriteString(m.theme.TopBox.Render(box))
	b.WriteString("\n\n")

	for i, t := range m.ranked {
		cursor := "  "
		if i == m.cursor {
			cursor = m.theme.Cursor.Render("▶ ")
		}
		line := fmt.Sprintf("%s%s  %s", cursor, m.theme.Item.Render(t.Title),
			m.theme.Score.Render(fmt.Sprintf("%.2f", cue.Score(t, m.table))))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) tagsView(t *task.Task) string {
	if len(t.Tags) == 0 {
		return m.theme.Dim.Render("no tags")
	}
	chips := make([]string, 0, len(t.Tags))
	for _, name := range t.Tags {
		chips = append(chips, tagStyle(name).Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(chips, " "))
}

func (m *Model) helpView() string {
	return m.theme.Help.Render("j/k move · c complete · d delete · r reload · q quit")
}
