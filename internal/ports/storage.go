// Package ports defines the interfaces (driven and driving ports)
// for the daylog application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/xvierd/daylog/internal/domain"
)

// EntryRepository defines the interface for the session's closed entries.
// This is a driven port (implemented by adapters).
type EntryRepository interface {
	// Append records a closed entry. Entries are never updated or removed.
	Append(ctx context.Context, entry *domain.LogEntry) error

	// List returns every entry, newest first.
	List(ctx context.Context) ([]*domain.LogEntry, error)

	// Count returns the number of recorded entries.
	Count(ctx context.Context) (int, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Entries provides access to the entry log.
	Entries() EntryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate creates the schema.
	Migrate() error
}
