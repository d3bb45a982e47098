package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/ports"
)

// entryRepository implements ports.EntryRepository using SQLite.
type entryRepository struct {
	db *sql.DB
}

// newEntryRepository creates a new entry repository.
func newEntryRepository(db *sql.DB) ports.EntryRepository {
	return &entryRepository{db: db}
}

// Append records a closed entry.
func (r *entryRepository) Append(ctx context.Context, entry *domain.LogEntry) error {
	query := `
		INSERT INTO entries (id, name, started_ms, ended_ms)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		string(entry.Name),
		entry.Start.UnixMilli(),
		entry.End.UnixMilli(),
	)
	if isUniqueConstraintError(err) {
		return fmt.Errorf("entry %s: %w", entry.ID, domain.ErrDuplicateEntry)
	}
	if err != nil {
		return fmt.Errorf("failed to append entry: %w", err)
	}

	return nil
}

// List returns every entry, newest first. Entries that end in the same
// millisecond keep reverse insertion order.
func (r *entryRepository) List(ctx context.Context) ([]*domain.LogEntry, error) {
	query := `
		SELECT id, name, started_ms, ended_ms
		FROM entries
		ORDER BY ended_ms DESC, seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LogEntry
	for rows.Next() {
		var (
			entry     domain.LogEntry
			name      string
			startedMs int64
			endedMs   int64
		)
		if err := rows.Scan(&entry.ID, &name, &startedMs, &endedMs); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.Name = domain.ActivityName(name)
		entry.Start = time.UnixMilli(startedMs)
		entry.End = time.UnixMilli(endedMs)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded entries.
func (r *entryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}
