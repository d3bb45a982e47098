// Package cmd provides the CLI commands for the daylog application.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/xvierd/daylog/internal/adapters/tui"
	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	jsonOutput bool
)

// errNotTerminal is returned when the journal is started without a terminal.
var errNotTerminal = errors.New("daylog needs an interactive terminal on stdout")

// isTerminal reports whether fd is attached to a terminal.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "daylog - a one-screen activity journal",
	Long: `daylog keeps a running log of what you are doing.

Scroll the reel until an activity sits in the middle and press enter.
The previous activity is closed into the log and the new one starts.
Going to bed followed by getting up shows how long you slept.

Nothing is saved: the session log is printed when you quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runJournal,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.daylog/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the session log as JSON on exit")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("daylog\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
	return ctx
}

// runJournal runs the interactive screen and prints the session log once the
// user quits.
func runJournal(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	ctx := setupSignalHandler()

	view := tui.NewApp(app.config.DomainCatalog(), app.config.Reel, &app.config.Theme)
	view.SetClock(app.clock)
	view.SetConfirm(func(selected domain.ActivityName) (domain.State, error) {
		return app.journal.Confirm(ctx, selected)
	})

	app.logger.Info("session started", "activities", len(app.config.Catalog.Activities))
	if err := view.Run(ctx, app.journal.State()); err != nil {
		return err
	}
	app.logger.Info("session ended", "entries", len(app.journal.State().Log))

	return writeSession(context.Background(), cmd.OutOrStdout(), app.journal, jsonOutput)
}

// sessionJSON is the --json shape of a finished session.
type sessionJSON struct {
	Active  *activeJSON `json:"active,omitempty"`
	Entries []entryJSON `json:"entries"`
	Sleep   *sleepJSON  `json:"sleep,omitempty"`
	TotalMs int64       `json:"total_ms"`
}

type activeJSON struct {
	Name  string `json:"name"`
	Start string `json:"start"`
}

type entryJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Start      string `json:"start"`
	End        string `json:"end"`
	DurationMs int64  `json:"duration_ms"`
}

type sleepJSON struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	DurationMs int64  `json:"duration_ms"`
}

const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// writeSession prints the journal's log, newest first.
func writeSession(ctx context.Context, w io.Writer, journal *services.JournalService, asJSON bool) error {
	entries, err := journal.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session log: %w", err)
	}
	state := journal.State()

	if !asJSON {
		return tui.PrintHistory(w, entries, state.Sleep)
	}

	result := sessionJSON{Entries: make([]entryJSON, 0, len(entries))}
	if state.Active != nil {
		result.Active = &activeJSON{
			Name:  string(state.Active.Name),
			Start: state.Active.Start.Format(jsonTimeLayout),
		}
	}
	for _, e := range entries {
		result.Entries = append(result.Entries, entryJSON{
			ID:         e.ID,
			Name:       string(e.Name),
			Start:      e.Start.Format(jsonTimeLayout),
			End:        e.End.Format(jsonTimeLayout),
			DurationMs: e.Duration().Milliseconds(),
		})
		result.TotalMs += e.Duration().Milliseconds()
	}
	if state.Sleep != nil {
		result.Sleep = &sleepJSON{
			Start:      state.Sleep.Start.Format(jsonTimeLayout),
			End:        state.Sleep.End.Format(jsonTimeLayout),
			DurationMs: state.Sleep.DurationMs(),
		}
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
