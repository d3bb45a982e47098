package tui

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/ports"
)

// App implements the ports.JournalView interface using Bubbletea.
type App struct {
	catalog domain.Catalog
	reel    config.ReelConfig
	theme   *config.ThemeConfig

	program *tea.Program
	confirm ports.ConfirmFunc
	clock   ports.Clock
	cancel  context.CancelFunc
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

// NewApp creates a new journal screen over catalog.
func NewApp(catalog domain.Catalog, reel config.ReelConfig, theme *config.ThemeConfig) *App {
	return &App{
		catalog: catalog,
		reel:    reel,
		theme:   theme,
	}
}

// Run starts the interface and blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context, initial domain.State) error {
	model := NewModel(initial, a.catalog, a.reel, a.theme)
	a.mu.RLock()
	model.SetConfirm(a.confirm)
	if a.clock != nil {
		model.SetClock(a.clock)
	}
	a.mu.RUnlock()

	// Seed the size so the reel is measured before the first frame.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		updated, _ := model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		model = updated.(Model)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.program = tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	a.cancel = cancel
	program := a.program
	a.mu.Unlock()

	// Handle context cancellation
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-runCtx.Done()
		program.Quit()
	}()

	_, err := program.Run()

	cancel()
	a.wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop gracefully stops the interface.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	if a.program != nil {
		a.program.Quit()
	}
}

// SetConfirm sets the callback invoked when the user confirms a selection.
// It must be called before Run.
func (a *App) SetConfirm(confirm ports.ConfirmFunc) {
	a.mu.Lock()
	a.confirm = confirm
	a.mu.Unlock()
}

// SetClock sets the clock the screen reads elapsed time from. It must be
// called before Run.
func (a *App) SetClock(clock ports.Clock) {
	a.mu.Lock()
	a.clock = clock
	a.mu.Unlock()
}

// Ensure App implements ports.JournalView.
var _ ports.JournalView = (*App)(nil)
