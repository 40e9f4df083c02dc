// Package sqlite provides SQLite persistence for health records using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/charhp/internal/game/health"
)

var _ health.Store = (*HealthRepository)(nil)

// HealthRepository persists health records in a single SQLite file.
type HealthRepository struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
//
// Precondition: path must be non-empty.
// Postcondition: Returns a ready repository, or a non-nil error with no open handle.
func Open(path string) (*HealthRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// PRAGMAs are per connection; a single connection keeps them in force.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	r := &HealthRepository{db: db}
	if err := r.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return r, nil
}

func (r *HealthRepository) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS character_health (
		name_key   TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		max_hp     INTEGER NOT NULL,
		current_hp INTEGER NOT NULL,
		temp_hp    INTEGER NOT NULL DEFAULT 0 CHECK (temp_hp >= 0),
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Close closes the database handle.
func (r *HealthRepository) Close() error {
	return r.db.Close()
}

// GetByName loads the record whose name matches ignoring case.
//
// Postcondition: Returns the record, or an error wrapping health.ErrRecordNotFound.
func (r *HealthRepository) GetByName(ctx context.Context, name string) (health.Record, error) {
	var rec health.Record
	err := r.db.QueryRowContext(ctx,
		`SELECT name, max_hp, current_hp, temp_hp FROM character_health WHERE name_key = ?`,
		health.Key(name),
	).Scan(&rec.Name, &rec.MaxHP, &rec.CurrentHP, &rec.TempHP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health.Record{}, fmt.Errorf("%w: %q", health.ErrRecordNotFound, name)
		}
		return health.Record{}, fmt.Errorf("querying health: %w", err)
	}
	return rec, nil
}

// Save upserts rec keyed by its lower-cased name.
//
// Precondition: rec.Name must be non-empty.
func (r *HealthRepository) Save(ctx context.Context, rec health.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO character_health (name_key, name, max_hp, current_hp, temp_hp)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name_key) DO UPDATE SET
			name       = excluded.name,
			max_hp     = excluded.max_hp,
			current_hp = excluded.current_hp,
			temp_hp    = excluded.temp_hp,
			updated_at = CURRENT_TIMESTAMP`,
		rec.Key(), rec.Name, rec.MaxHP, rec.CurrentHP, rec.TempHP,
	)
	if err != nil {
		return fmt.Errorf("saving health: %w", err)
	}
	return nil
}

// Ping reports whether the database handle is usable.
func (r *HealthRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
