package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"detectivequest/cmd/detective/ui"
	"detectivequest/internal/debug"
	"detectivequest/internal/explorer"
	"detectivequest/internal/journal"
	"detectivequest/internal/mcp"
	"detectivequest/internal/observability"
	"detectivequest/internal/report"
	"detectivequest/internal/rooms"
)

type appConfig struct {
	MapPath      string
	MCPServer    string
	JournalPath  string
	Plain        bool
	Debug        bool
	EndAtDeadEnd bool

	// Supplier overrides --map and --mcp-server when set.
	Supplier rooms.Supplier
}

// mapError marks failures to obtain the map; nothing has been explored yet.
type mapError struct {
	err error
}

func (e *mapError) Error() string { return "failed to build map: " + e.err.Error() }
func (e *mapError) Unwrap() error { return e.err }

func selectSupplier(cfg appConfig, logger *debug.Logger) (rooms.Supplier, string, error) {
	switch {
	case cfg.Supplier != nil:
		return cfg.Supplier, "embedded", nil
	case cfg.MapPath != "" && cfg.MCPServer != "":
		return nil, "", fmt.Errorf("--map and --mcp-server are mutually exclusive")
	case cfg.MapPath != "":
		return rooms.FileSupplier{Path: cfg.MapPath}, cfg.MapPath, nil
	case cfg.MCPServer != "":
		client, err := mcp.NewMapClient(cfg.MCPServer, logger)
		if err != nil {
			return nil, "", err
		}
		return client, "mcp:" + cfg.MCPServer, nil
	default:
		return rooms.Mansion(), "mansion", nil
	}
}

func useTerminalUI(cfg appConfig, in io.Reader, out io.Writer) bool {
	if cfg.Plain {
		return false
	}
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(inFile.Fd()) && isatty.IsTerminal(outFile.Fd())
}

func runExplore(ctx context.Context, cfg appConfig, in io.Reader, out io.Writer) error {
	debugLogger := debug.NewLogger(cfg.Debug || debug.EnabledFromEnv(), "")
	defer debugLogger.Close()

	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
		defer tracerProvider.Shutdown(context.Background())
	}

	supplier, mapName, err := selectSupplier(cfg, debugLogger)
	if err != nil {
		return err
	}
	root, err := supplier.Supply(ctx)
	if err != nil {
		return &mapError{err: err}
	}
	debugLogger.Printf("Map %s loaded with %d rooms", mapName, root.Count())

	sessionID := uuid.NewString()
	opts := []explorer.Option{explorer.WithEndAtDeadEnd(cfg.EndAtDeadEnd)}

	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			debugLogger.Printf("Journal disabled: %v", err)
		} else {
			defer j.Close()
			if id, err := j.StartSession(mapName); err != nil {
				debugLogger.Printf("Journal disabled: %v", err)
			} else {
				sessionID = id
				opts = append(opts, explorer.WithObserver(j.Recorder(sessionID, debugLogger)))
			}
		}
	}

	ctx, span := observability.StartSession(ctx, tracerProvider.Tracer(), sessionID, mapName)
	opts = append(opts, explorer.WithObserver(span))

	session, err := explorer.New(root, opts...)
	if err != nil {
		span.End(report.Report{})
		return &mapError{err: err}
	}
	debugLogger.Printf("Session %s started", sessionID)
	defer func() {
		span.End(session.Summary())
		released := session.Close()
		debugLogger.Printf("Released %d rooms and %d clues", released.Rooms, released.Clues)
	}()

	if useTerminalUI(cfg, in, out) {
		p := tea.NewProgram(ui.NewModel(session, debugLogger), tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}
	} else {
		if err := printBanner(out); err != nil {
			return err
		}
		if err := explorer.Run(session, in, out); err != nil {
			return err
		}
	}

	return printSummary(out, session.Summary())
}

// lineWriter keeps the first write error and skips every later write.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) println(a ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintln(lw.w, a...)
}

func (lw *lineWriter) result() error {
	if lw.err != nil {
		return fmt.Errorf("failed to write output: %w", lw.err)
	}
	return nil
}

func printBanner(out io.Writer) error {
	lw := &lineWriter{w: out}
	lw.println("====================================================")
	lw.println("    DETECTIVE QUEST - The Mysterious Mansion")
	lw.println("====================================================")
	lw.println("Explore the mansion and collect clues about the crime.")
	lw.println("Commands: E = left, D = right, V = view clues, S = leave")
	return lw.result()
}

func printSummary(out io.Writer, summary report.Report) error {
	lw := &lineWriter{w: out}
	lw.println()
	lw.println("====================================================")
	lw.println("          INVESTIGATION SUMMARY")
	lw.println("====================================================")
	if summary.Empty() {
		lw.println("No clues were found during the exploration.")
	}
	if err := lw.result(); err != nil || summary.Empty() {
		return err
	}
	return report.Write(out, explorer.SummaryTitle, summary)
}
