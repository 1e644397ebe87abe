package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/console"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/services/events"
	"github.com/jwebster45206/detective-quest/pkg/scenario"
	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := scenario.BuildFixedMap()
	pairs := scenario.Associations()
	for _, problem := range scenario.Validate(root, pairs) {
		log.Warn("Case file problem", "problem", problem)
	}

	index := suspects.NewIndex(suspects.DefaultRosterCapacity, log)
	index.Build(pairs)
	session := state.NewSession(root, index, log)
	log.Info("Session started", "session_id", session.ID, "mode", cfg.ConsoleMode)

	var sink console.Sink
	if cfg.RedisURL != "" {
		rdb, err := events.Connect(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("Event feed disabled", "error", err)
		} else {
			defer func() {
				_ = rdb.Close() // Ignore error in defer
			}()
			sink = events.NewBroadcaster(rdb, cfg.EventsChannelPrefix, log)
		}
	}

	if cfg.ConsoleMode == config.ModeTUI {
		runTUI(ctx, session, sink)
		return
	}
	console.New(os.Stdin, os.Stdout, cfg.ConsoleWidth, log).WithSink(sink).Run(ctx, session)
}

func runTUI(ctx context.Context, session *state.Session, sink console.Sink) {
	p := tea.NewProgram(NewDetectiveUI(ctx, session, sink),
		tea.WithAltScreen(),
		tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
	}

	// The alternate screen is gone once the program exits; leave the case
	// summary on the terminal.
	if ui, ok := final.(DetectiveUI); ok {
		fmt.Print(ui.Report())
	}
	fmt.Println(console.Farewell)
}
