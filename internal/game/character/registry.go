package character

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSheetNotFound is returned when no sheet matches a requested name.
var ErrSheetNotFound = errors.New("character sheet not found")

// Lookup resolves character sheets by name.
//
// Implementations MUST match names case-insensitively and be safe for concurrent use.
type Lookup interface {
	// GetByName returns the sheet named name or ErrSheetNotFound.
	GetByName(ctx context.Context, name string) (*Sheet, error)
}

// Registry is an in-memory, read-only Lookup keyed by lower-cased sheet name.
// It is safe for concurrent use because it is never modified after construction.
type Registry struct {
	sheets map[string]*Sheet
}

// NewRegistry indexes sheets by name.
//
// Precondition: every sheet must be non-nil with a non-empty name.
// Postcondition: Returns a Registry or an error naming the first empty or duplicate name.
func NewRegistry(sheets []*Sheet) (*Registry, error) {
	r := &Registry{sheets: make(map[string]*Sheet, len(sheets))}
	for _, s := range sheets {
		if s == nil || strings.TrimSpace(s.Name) == "" {
			return nil, errors.New("character sheet name must not be empty")
		}
		key := strings.ToLower(s.Name)
		if _, dup := r.sheets[key]; dup {
			return nil, fmt.Errorf("duplicate character sheet %q", s.Name)
		}
		r.sheets[key] = s
	}
	return r, nil
}

// GetByName returns the sheet whose name equals name ignoring case.
func (r *Registry) GetByName(_ context.Context, name string) (*Sheet, error) {
	s, ok := r.sheets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return s, nil
}

// Names returns the registered sheet names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sheets))
	for _, s := range r.sheets {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered sheets.
func (r *Registry) Len() int {
	return len(r.sheets)
}
