package health

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charhp/internal/game/character"
)

// Engine applies the health rules to characters, persisting every change
// through its Store.
//
// Engine is safe for concurrent use. Operations on the same name are serialized;
// operations on different names run in parallel.
type Engine struct {
	sheets character.Lookup
	store  Store
	logger *zap.Logger
	locks  stripedLock

	// Injected after construction. nil = no-op.
	OnCreated func(rec Record)
	OnDamage  func(name string, hpLost int)
}

// NewEngine creates an Engine.
//
// Precondition: sheets, store, and logger must be non-nil.
func NewEngine(sheets character.Lookup, store Store, logger *zap.Logger) *Engine {
	return &Engine{
		sheets: sheets,
		store:  store,
		logger: logger,
	}
}

// Sheet returns the character sheet for name.
//
// Postcondition: Returns the sheet or an error wrapping ErrNotFound.
func (e *Engine) Sheet(ctx context.Context, name string) (*character.Sheet, error) {
	s, err := e.sheets.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, character.ErrSheetNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("looking up character %q: %w", name, err)
	}
	return s, nil
}

// GetOrCreate returns the stored health record for name, materializing it from
// the character sheet at full health on first use.
//
// Postcondition: Returns the record, an error wrapping ErrNotFound when no sheet
// exists, or character.ErrInvalidSheet when max HP cannot be derived.
func (e *Engine) GetOrCreate(ctx context.Context, name string) (Record, error) {
	defer e.locks.lock(name)()
	return e.getOrCreate(ctx, name)
}

func (e *Engine) getOrCreate(ctx context.Context, name string) (Record, error) {
	rec, err := e.store.GetByName(ctx, name)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return Record{}, fmt.Errorf("loading health for %q: %w", name, err)
	}

	sheet, err := e.Sheet(ctx, name)
	if err != nil {
		return Record{}, err
	}
	maxHP, err := character.MaxHP(sheet)
	if err != nil {
		return Record{}, fmt.Errorf("computing max hp for %q: %w", name, err)
	}

	rec = NewRecord(sheet.Name, maxHP)
	if err := e.store.Save(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("saving new health for %q: %w", name, err)
	}
	e.logger.Debug("health record created",
		zap.String("name", rec.Name),
		zap.Int("max_hp", rec.MaxHP),
	)
	if e.OnCreated != nil {
		e.OnCreated(rec)
	}
	return rec, nil
}

// AddTemporaryHP grants (amount >= 0) or removes (amount < 0) temporary hit
// points. Grants do not stack: the larger of the current and granted pools is kept.
// Removal never drops the pool below zero.
//
// Postcondition: Returns the persisted record, or the first lookup/store error.
func (e *Engine) AddTemporaryHP(ctx context.Context, name string, amount int) (Record, error) {
	defer e.locks.lock(name)()

	rec, err := e.getOrCreate(ctx, name)
	if err != nil {
		return Record{}, err
	}
	updated := addTemporaryHP(rec, amount)
	if err := e.store.Save(ctx, updated); err != nil {
		return Record{}, fmt.Errorf("saving temp hp for %q: %w", name, err)
	}
	e.logger.Debug("temporary hp changed",
		zap.String("name", updated.Name),
		zap.Int("amount", amount),
		zap.Int("temp_hp_before", rec.TempHP),
		zap.Int("temp_hp", updated.TempHP),
	)
	return updated, nil
}

// DealDamage resolves requests against the character's defenses and applies the
// total. When the total is zero the record is returned as-is and nothing is saved.
//
// Postcondition: Returns the resulting record, or the first lookup/store error.
func (e *Engine) DealDamage(ctx context.Context, name string, requests []DamageRequest) (Record, error) {
	defer e.locks.lock(name)()

	rec, err := e.getOrCreate(ctx, name)
	if err != nil {
		return Record{}, err
	}
	sheet, err := e.Sheet(ctx, name)
	if err != nil {
		return Record{}, err
	}

	damage := CalculateDamage(requests, sheet.Defenses)
	if damage == 0 {
		return rec, nil
	}

	updated := ApplyDamage(damage, rec)
	if err := e.store.Save(ctx, updated); err != nil {
		return Record{}, fmt.Errorf("saving damage for %q: %w", name, err)
	}
	hpLost := rec.CurrentHP - updated.CurrentHP
	e.logger.Debug("damage applied",
		zap.String("name", updated.Name),
		zap.Int("damage", damage),
		zap.Int("temp_absorbed", rec.TempHP-updated.TempHP),
		zap.Int("hp_lost", hpLost),
		zap.Int("current_hp", updated.CurrentHP),
	)
	if e.OnDamage != nil {
		e.OnDamage(updated.Name, hpLost)
	}
	return updated, nil
}

// Heal restores hit points. Healing rules are not built yet.
//
// Postcondition: Always returns an error wrapping ErrNotImplemented.
func (e *Engine) Heal(_ context.Context, name string, amount int) (Record, error) {
	return Record{}, fmt.Errorf("healing %q by %d: %w", name, amount, ErrNotImplemented)
}
