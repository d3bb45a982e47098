package ports

import (
	"context"

	"github.com/xvierd/daylog/internal/domain"
)

// ConfirmFunc switches the session to the selected activity and returns the
// resulting state.
type ConfirmFunc func(selected domain.ActivityName) (domain.State, error)

// JournalView is the interactive screen.
// This is a driving port (called by the application layer).
type JournalView interface {
	// Run starts the interface and blocks until the user quits or ctx is done.
	Run(ctx context.Context, initial domain.State) error

	// Stop gracefully stops the interface.
	Stop()

	// SetConfirm sets the callback invoked when the user confirms a selection.
	SetConfirm(confirm ConfirmFunc)
}
