package main

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/detective-quest/internal/console"
	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

type phase int

const (
	phaseExplore phase = iota
	phaseAccuse
	phaseDone
)

const (
	explorePlaceholder = "e, d or s"
	accusePlaceholder  = "Suspect name"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // teal
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	verdictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	panelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2)
)

// DetectiveUI is the Bubble Tea model for the full-screen console.
type DetectiveUI struct {
	ctx        context.Context
	session    *state.Session
	sink       console.Sink
	viewport   viewport.Model
	input      textinput.Model
	transcript []string
	phase      phase
	verdict    *verdict.Result
	status     string
	width      int
	height     int
	ready      bool
	copyFn     func(string) error
}

func NewDetectiveUI(ctx context.Context, s *state.Session, sink console.Sink) DetectiveUI {
	ti := textinput.New()
	ti.Placeholder = explorePlaceholder
	ti.Prompt = helpStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Focus()

	m := DetectiveUI{
		ctx:      ctx,
		session:  s,
		sink:     sink,
		viewport: viewport.New(72, 20),
		input:    ti,
		width:    72,
		copyFn:   clipboard.WriteAll,
	}
	m.write(titleStyle.Render(console.Welcome), console.StartHint, "", console.ExploreBegin)
	m.examine()
	return m
}

func (m DetectiveUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m DetectiveUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-6, 5)
		m.input.Width = max(msg.Width-8, 10)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			m.copyReport()
			return m, nil
		case tea.KeyEnter:
			if m.phase == phaseDone {
				return m, tea.Quit
			}
			line := m.input.Value()
			m.input.Reset()
			m.submit(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m DetectiveUI) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	if m.phase == phaseDone {
		b.WriteString(helpStyle.Render("enter: quit • ctrl+y: copy report"))
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: submit • ctrl+y: copy report • esc: quit"))
	}
	if m.status != "" {
		b.WriteString("  " + noticeStyle.Render(m.status))
	}
	return panelStyle.Render(b.String())
}

// Transcript returns everything written to the game panel so far.
func (m DetectiveUI) Transcript() string {
	return strings.Join(m.transcript, "\n")
}

func (m *DetectiveUI) submit(line string) {
	switch m.phase {
	case phaseExplore:
		out := m.session.Apply(state.ParseCommand(line))
		if msg := console.DescribeOutcome(out); msg != "" {
			m.write(noticeStyle.Render(msg))
		}
		if m.session.Ended {
			m.finishExploration()
			return
		}
		m.examine()

	case phaseAccuse:
		m.phase = phaseDone
		if line == "" {
			m.write(noticeStyle.Render(console.NoName), "", console.Farewell)
			return
		}
		res := m.session.Accuse(line)
		m.verdict = &res
		m.write("")
		for _, l := range console.DescribeVerdict(res) {
			m.write(verdictStyle.Render(l))
		}
		m.write("", console.Farewell)
		if m.sink != nil {
			if err := m.sink.PublishVerdict(m.ctx, m.session.ID, res); err != nil {
				m.status = "event feed unavailable"
			}
		}
	}
}

func (m *DetectiveUI) examine() {
	d := m.session.Examine()
	m.write("")
	for i, l := range console.DescribeDiscovery(d) {
		if i == 0 {
			l = roomStyle.Render(l)
		}
		m.write(l)
	}
	m.write(console.MenuText)
	if m.sink != nil {
		if err := m.sink.PublishRoomExamined(m.ctx, m.session.ID, d); err != nil {
			m.status = "event feed unavailable"
		}
	}
}

func (m *DetectiveUI) finishExploration() {
	clues, tallies := m.session.Clues(), m.session.Tallies()
	m.write(console.ExploreEnd, "", console.Report(clues, tallies, m.session.Turns), console.AccusePrompt)
	m.phase = phaseAccuse
	m.input.Placeholder = accusePlaceholder
	if m.sink != nil {
		if err := m.sink.PublishSessionEnded(m.ctx, m.session.ID, clues, tallies); err != nil {
			m.status = "event feed unavailable"
		}
	}
}

// Report is the plain-text case summary.
func (m DetectiveUI) Report() string {
	report := console.Report(m.session.Clues(), m.session.Tallies(), m.session.Turns)
	if m.verdict != nil {
		report += "\n" + strings.Join(console.DescribeVerdict(*m.verdict), "\n") + "\n"
	}
	return report
}

func (m *DetectiveUI) copyReport() {
	if err := m.copyFn(m.Report()); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = "report copied"
}

func (m *DetectiveUI) write(lines ...string) {
	for _, l := range lines {
		m.transcript = append(m.transcript, wordwrap.String(l, max(m.width-6, 20)))
	}
	m.refresh()
}

func (m *DetectiveUI) refresh() {
	m.viewport.SetContent(m.Transcript())
	m.viewport.GotoBottom()
}
