// Package ui renders pack progress in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tokattr/internal/pack"
)

const statusWidth = 9

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	queuedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// fileState is the last event seen for one file.
type fileState struct {
	path   string
	stage  pack.Stage
	status pack.Status
}

func (f fileState) final() bool {
	return f.status == pack.StatusDone || f.status == pack.StatusError
}

func (f fileState) label() (string, lipgloss.Style) {
	switch f.status {
	case pack.StatusDone:
		return "done", doneStyle
	case pack.StatusError:
		return "error", errorStyle
	case pack.StatusWorking:
		switch f.stage {
		case pack.StageRead:
			return "reading", workingStyle
		case pack.StageParse:
			return "parsing", workingStyle
		case pack.StageStore:
			return "storing", workingStyle
		}
		return "working", workingStyle
	}
	return "queued", queuedStyle
}

// weight is the share of the file's work already behind it.
func (f fileState) weight() float64 {
	if f.final() {
		return 1
	}
	if f.status != pack.StatusWorking {
		return 0
	}
	switch f.stage {
	case pack.StageRead:
		return 0.1
	case pack.StageParse:
		return 0.4
	case pack.StageStore:
		return 0.8
	}
	return 0
}

type progressModel struct {
	title   string
	events  <-chan pack.Event
	spinner spinner.Model
	bar     progress.Model
	files   []fileState
	byPath  map[string]int
	width   int
	failed  int
	done    bool
	aborted bool
}

type eventMsg pack.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows pack events until
// the channel is closed.
func NewProgressModel(title string, files []string, events <-chan pack.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = workingStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		files:   make([]fileState, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.files[i] = fileState{path: f, status: pack.StatusQueued}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(pack.Event(msg)), m.waitEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(10, msg.Width-4)
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(20, m.width-statusWidth-4)
	for _, f := range m.files {
		text, style := f.label()
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%*s", statusWidth, text)), truncate(f.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) header() string {
	h := fmt.Sprintf("%s %d/%d", m.title, m.finished(), len(m.files))
	if m.failed > 0 {
		h += fmt.Sprintf(", %d failed", m.failed)
	}
	switch {
	case m.aborted:
		return "aborted: " + h
	case m.done:
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// apply records ev. Events for unknown or already finished files are dropped.
func (m *progressModel) apply(ev pack.Event) tea.Cmd {
	idx, ok := m.byPath[ev.File]
	if !ok || m.files[idx].final() {
		return nil
	}
	m.files[idx].status = ev.Status
	if ev.Status == pack.StatusWorking {
		m.files[idx].stage = ev.Stage
	}
	if ev.Status == pack.StatusError {
		m.failed++
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) finished() int {
	n := 0
	for _, f := range m.files {
		if f.final() {
			n++
		}
	}
	return n
}

func (m *progressModel) percent() float64 {
	if len(m.files) == 0 {
		return 0
	}
	total := 0.0
	for _, f := range m.files {
		total += f.weight()
	}
	return total / float64(len(m.files))
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
