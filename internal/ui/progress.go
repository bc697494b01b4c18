package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressBar reports a fixed number of steps.
type ProgressBar interface {
	// Advance marks one step as finished and shows title.
	Advance(title string)
	// Done completes the bar. It is safe to call more than once.
	Done()
}

// NewProgress creates a ProgressBar over total steps writing to w. Headless
// or colorless sessions get one plain line per step.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer, total int) ProgressBar {
	if hm.IsHeadless() || theme.NoColor {
		return &headlessProgressBar{total: total, writer: w}
	}
	return newInteractiveProgressBar(theme, total, w)
}

// --- interactiveProgressBar ---

// progressStepMsg advances the bar by one step.
type progressStepMsg string

// progressDoneMsg completes the bar.
type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the step bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, total int) progressModel {
	opts := []progress.Option{progress.WithWidth(40), progress.WithoutPercentage()}
	if theme.NoColor {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary))
	}
	return progressModel{bar: progress.New(opts...), total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressStepMsg:
		m.current = min(m.current+1, m.total)
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + " " + fmt.Sprintf("[%d/%d] %s\n", m.current, m.total, m.title)
}

// interactiveProgressBar drives a progressModel in its own tea.Program.
type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveProgressBar(theme *Theme, total int, w io.Writer) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, total), tea.WithOutput(w), tea.WithInput(nil))
	go func() {
		_, _ = p.Run()
	}()
	return &interactiveProgressBar{program: p}
}

func (b *interactiveProgressBar) Advance(title string) {
	b.program.Send(progressStepMsg(title))
}

func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- headlessProgressBar ---

type headlessProgressBar struct {
	total   int
	current int
	writer  io.Writer
}

func (b *headlessProgressBar) Advance(title string) {
	b.current = min(b.current+1, b.total)
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, title)
}

func (b *headlessProgressBar) Done() {}
