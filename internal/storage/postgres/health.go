package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/charhp/internal/game/health"
)

var _ health.Store = (*HealthRepository)(nil)

// HealthRepository persists character health records in the character_health table.
type HealthRepository struct {
	db *pgxpool.Pool
}

// NewHealthRepository creates a HealthRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewHealthRepository(db *pgxpool.Pool) *HealthRepository {
	return &HealthRepository{db: db}
}

// GetByName loads the record whose name matches ignoring case.
//
// Postcondition: Returns the record, or an error wrapping health.ErrRecordNotFound.
func (r *HealthRepository) GetByName(ctx context.Context, name string) (health.Record, error) {
	var rec health.Record
	err := r.db.QueryRow(ctx, `
		SELECT name, max_hp, current_hp, temp_hp
		FROM character_health WHERE name_key = $1`,
		health.Key(name),
	).Scan(&rec.Name, &rec.MaxHP, &rec.CurrentHP, &rec.TempHP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return health.Record{}, fmt.Errorf("%w: %q", health.ErrRecordNotFound, name)
		}
		return health.Record{}, fmt.Errorf("querying health: %w", err)
	}
	return rec, nil
}

// Save upserts rec keyed by its lower-cased name.
//
// Precondition: rec.Name must be non-empty.
// Postcondition: Exactly one row exists for rec.Key() holding rec's values.
func (r *HealthRepository) Save(ctx context.Context, rec health.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO character_health (name_key, name, max_hp, current_hp, temp_hp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name_key) DO UPDATE SET
			name       = EXCLUDED.name,
			max_hp     = EXCLUDED.max_hp,
			current_hp = EXCLUDED.current_hp,
			temp_hp    = EXCLUDED.temp_hp,
			updated_at = NOW()`,
		rec.Key(), rec.Name, rec.MaxHP, rec.CurrentHP, rec.TempHP,
	)
	if err != nil {
		return fmt.Errorf("saving health: %w", err)
	}
	return nil
}
