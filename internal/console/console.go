// Package console runs the game over a line-oriented reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// ErrNoAccusation is returned when the player enters no name or input ends.
var ErrNoAccusation = errors.New("no accusation made")

// Sink receives session events. The Redis broadcaster implements it.
type Sink interface {
	PublishRoomExamined(ctx context.Context, gameID uuid.UUID, d state.Discovery) error
	PublishSessionEnded(ctx context.Context, gameID uuid.UUID, clues []string, tallies []suspects.Tally) error
	PublishVerdict(ctx context.Context, gameID uuid.UUID, res verdict.Result) error
}

type styles struct {
	title   lipgloss.Style
	room    lipgloss.Style
	clue    lipgloss.Style
	notice  lipgloss.Style
	verdict lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // pink
		room:    r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),  // teal
		clue:    r.NewStyle().Foreground(lipgloss.Color("86")),             // green
		notice:  r.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		verdict: r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // purple
	}
}

// Console drives one session over text input and output.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	width  int
	styles styles
	sink   Sink
	logger *slog.Logger
}

// New creates a console reading commands from in and writing prompts to out.
func New(in io.Reader, out io.Writer, width int, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		width:  width,
		styles: newStyles(lipgloss.NewRenderer(out)),
		logger: log,
	}
}

// WithSink sets where session events are published.
func (c *Console) WithSink(sink Sink) *Console {
	c.sink = sink
	return c
}

// Run plays a full session: exploration, report and accusation.
func (c *Console) Run(ctx context.Context, s *state.Session) {
	c.println(c.styles.title.Render(Welcome))
	c.println(StartHint)

	c.Explore(ctx, s)
	c.PrintReport(ctx, s)
	if _, err := c.Accuse(ctx, s); err != nil && !errors.Is(err, ErrNoAccusation) {
		logger.WithError(c.logger, err).Warn("Accusation failed")
	}

	c.println("")
	c.println(c.styles.title.Render(Farewell))
}

// Explore loops until the player ends exploration, input runs out or ctx is
// cancelled. The room under the cursor is examined at the top of every turn.
func (c *Console) Explore(ctx context.Context, s *state.Session) {
	c.println("")
	c.println(ExploreBegin)

	for !s.Ended {
		if err := ctx.Err(); err != nil {
			logger.WithError(c.logger, err).Info("Exploration cancelled")
			s.End()
			break
		}

		d := s.Examine()
		c.println("")
		c.printDiscovery(d)
		c.publish("room examined", func(sink Sink) error {
			return sink.PublishRoomExamined(ctx, s.ID, d)
		})

		c.println(MenuText)
		c.print(ChoicePrompt)
		line, err := c.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.WithError(c.logger, err).Warn("Failed to read command")
			}
			c.println("")
			c.println(c.styles.notice.Render(ReadFailure))
			s.End()
			break
		}

		out := s.Apply(state.ParseCommand(line))
		if msg := DescribeOutcome(out); msg != "" {
			c.println(c.styles.notice.Render(msg))
		}
	}

	c.println(ExploreEnd)
	c.println("")
}

// PrintReport writes the collected clues and suspect tallies.
func (c *Console) PrintReport(ctx context.Context, s *state.Session) {
	clues := s.Clues()
	tallies := s.Tallies()
	c.print(Report(clues, tallies, s.Turns))
	c.println("")
	c.publish("session ended", func(sink Sink) error {
		return sink.PublishSessionEnded(ctx, s.ID, clues, tallies)
	})
}

// Accuse prompts for one name and decides the accusation. An empty line or
// unreadable input yields ErrNoAccusation.
func (c *Console) Accuse(ctx context.Context, s *state.Session) (verdict.Result, error) {
	c.print(AccusePrompt)
	line, err := c.readLine()
	if err != nil {
		c.println("")
		c.println(c.styles.notice.Render(AccuseFailure))
		return verdict.Result{}, fmt.Errorf("%w: %w", ErrNoAccusation, err)
	}

	name := strings.TrimRight(line, "\r\n")
	if name == "" {
		c.println(c.styles.notice.Render(NoName))
		return verdict.Result{}, ErrNoAccusation
	}

	res := s.Accuse(name)
	c.println("")
	for _, l := range DescribeVerdict(res) {
		c.println(c.styles.verdict.Render(l))
	}
	c.publish("verdict", func(sink Sink) error {
		return sink.PublishVerdict(ctx, s.ID, res)
	})
	return res, nil
}

func (c *Console) printDiscovery(d state.Discovery) {
	lines := DescribeDiscovery(d)
	c.println(c.styles.room.Render(lines[0]))
	for _, l := range lines[1:] {
		l = wordwrap.String(l, c.width)
		if d.HasClue() && strings.HasPrefix(l, "You found") {
			l = c.styles.clue.Render(l)
		}
		c.println(l)
	}
}

// readLine returns one line including its terminator. A final line without a
// terminator is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func (c *Console) publish(what string, fn func(Sink) error) {
	if c.sink == nil {
		return
	}
	if err := fn(c.sink); err != nil {
		logger.WithError(c.logger, err).Warn("Failed to publish event", "event", what)
	}
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}
