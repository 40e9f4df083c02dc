// Package health owns the mutable hit point state of characters: the record
// lifecycle, temporary hit points, and damage resolution against sheet defenses.
package health

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when neither a record nor a sheet exists for a name.
	ErrNotFound = errors.New("character not found")
	// ErrValidation is returned for malformed amounts and unnamed records.
	ErrValidation = errors.New("validation failed")
	// ErrNotImplemented is returned by operations deliberately left unbuilt.
	ErrNotImplemented = errors.New("not implemented")
	// ErrRecordNotFound is returned by a Store when it holds no record for a name.
	ErrRecordNotFound = errors.New("health record not found")
)

// Record is the runtime hit point state of one character.
//
// Invariant: 0 <= CurrentHP <= MaxHP and TempHP >= 0 for records produced by this package.
type Record struct {
	Name      string `json:"name"`
	MaxHP     int    `json:"maxHp"`
	CurrentHP int    `json:"currentHp"`
	TempHP    int    `json:"tempHp"`
}

// NewRecord returns a full-health record.
//
// Postcondition: CurrentHP == MaxHP and TempHP == 0.
func NewRecord(name string, maxHP int) Record {
	return Record{Name: name, MaxHP: maxHP, CurrentHP: maxHP}
}

// Key returns the store key for the record.
func (r Record) Key() string {
	return Key(r.Name)
}

// Key returns the store key for a character name.
func Key(name string) string {
	return strings.ToLower(name)
}

// Validate reports whether the record may be persisted.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: health record must have a name", ErrValidation)
	}
	return nil
}

// ParseAmount converts a textual hit point amount to an integer, truncating
// toward zero.
//
// Postcondition: Returns the truncated amount or ErrValidation for non-numeric input.
func ParseAmount(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", ErrValidation, s)
	}
	return truncate(f)
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: amount %v is not a finite number", ErrValidation, f)
	}
	t := math.Trunc(f)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, fmt.Errorf("%w: amount %v is out of range", ErrValidation, f)
	}
	return int(t), nil
}
