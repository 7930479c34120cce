package saves

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"pokecasino/server/internal/state"
)

// Store persists save slots in a local SQLite database. One row per slot;
// writes upsert.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Open opens (or creates) the database at path. Use ":memory:" for an
// ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save store: %w", err)
	}
	// The driver is single-writer; a second connection would just block
	// on the file lock.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init save store: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts a slot's profile.
func (s *Store) Save(ctx context.Context, slot string, player state.PlayerState) error {
	payload, err := EncodeSnapshot(player)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		slot, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads a slot's profile. A missing slot returns a fresh profile and
// found=false.
func (s *Store) Load(ctx context.Context, slot string) (state.PlayerState, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM saves WHERE slot = ?`, slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return state.NewPlayerState(), false, nil
	}
	if err != nil {
		return state.PlayerState{}, false, fmt.Errorf("load slot %q: %w", slot, err)
	}
	player, err := DecodeSnapshot(payload)
	if err != nil {
		return state.PlayerState{}, false, fmt.Errorf("load slot %q: %w", slot, err)
	}
	return player, true, nil
}

// Delete removes a slot.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}

// Slots lists every stored slot name.
func (s *Store) Slots(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slot FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("list slots: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
