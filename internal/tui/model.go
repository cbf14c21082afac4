package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"mediaslim/internal/processor"
)

// maxNotes is how many recent soft-failure notes stay on screen.
const maxNotes = 4

// Model renders live progress from a stream of processor updates. It quits
// when the stream closes, never on its own.
type Model struct {
	updates     <-chan processor.ProgressUpdate
	onInterrupt func()
	onAbort     func()

	spinner spinner.Model
	bar     progress.Model
	started time.Time
	width   int

	last        processor.ProgressUpdate
	notes       []string
	interrupted bool
	aborted     bool
	quitting    bool
}

type doneMsg struct{}

type updateMsg processor.ProgressUpdate

// NewModel returns a Model reading from updates. onInterrupt runs on the
// first Ctrl+C, onAbort on the second. Either may be nil.
func NewModel(updates <-chan processor.ProgressUpdate, onInterrupt, onAbort func()) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		updates:     updates,
		onInterrupt: onInterrupt,
		onAbort:     onAbort,
		spinner:     s,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		started:     time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(listenForUpdates(m.updates), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.last = processor.ProgressUpdate(msg)
		if msg.Note != "" {
			m.notes = append(m.notes, msg.Note)
			if len(m.notes) > maxNotes {
				m.notes = m.notes[len(m.notes)-maxNotes:]
			}
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type != tea.KeyCtrlC {
			return m, nil
		}
		switch {
		case !m.interrupted:
			m.interrupted = true
			call(m.onInterrupt)
		case !m.aborted:
			m.aborted = true
			call(m.onAbort)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	u := m.last
	c := u.Counters
	ratio := 0.0
	if u.Total > 0 {
		ratio = float64(u.Processed) / float64(u.Total)
	}

	current := dimStyle.Render("waiting")
	if u.Current != "" {
		current = fileStyle.Render(u.Current)
	}

	lines := []string{
		titleStyle.Render("mediaslim"),
		m.spinner.View() + " " + current,
		m.bar.ViewAs(ratio) + labelStyle.Render(fmt.Sprintf("  %d/%d", u.Processed, u.Total)),
		labelStyle.Render(fmt.Sprintf("Metadata cleaned: %d  JPG: %d  PNG: %d", c.MetadataCleaned, c.JPEGOptimized, c.PNGOptimized)),
		labelStyle.Render(fmt.Sprintf("HEIC converted: %d/%d  Videos optimized: %d/%d", c.HEICConverted, c.HEICFound, c.VideosOptimized, c.VideosFound)),
		dimStyle.Render(fmt.Sprintf("Failures: %d  Timeouts: %d  Elapsed: %s", c.Failures, c.Timeouts, time.Since(m.started).Round(time.Second))),
	}
	for _, note := range m.notes {
		lines = append(lines, warnStyle.Render("! "+note))
	}
	switch {
	case m.aborted:
		lines = append(lines, warnStyle.Render("Aborting current tool..."))
	case m.interrupted:
		lines = append(lines, warnStyle.Render("Interrupted, finishing current file... (Ctrl+C again to abort it)"))
	}

	return strings.Join(lines, "\n") + "\n"
}

func listenForUpdates(updates <-chan processor.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func barWidth(termWidth int) int {
	w := termWidth - 20
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
