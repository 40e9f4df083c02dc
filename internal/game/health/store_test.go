package health_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/charhp/internal/game/health"
)

func TestMemoryStore_SaveAndGetIgnoresCase(t *testing.T) {
	s := health.NewMemoryStore()
	ctx := context.Background()
	rec := health.Record{Name: "Briv", MaxHP: 45, CurrentHP: 40, TempHP: 2}

	require.NoError(t, s.Save(ctx, rec))
	got, err := s.GetByName(ctx, "bRiV")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_SaveReplaces(t *testing.T) {
	s := health.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, health.Record{Name: "Briv", MaxHP: 45, CurrentHP: 45}))
	require.NoError(t, s.Save(ctx, health.Record{Name: "BRIV", MaxHP: 45, CurrentHP: 10}))

	got, err := s.GetByName(ctx, "briv")
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentHP)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_GetMissing(t *testing.T) {
	_, err := health.NewMemoryStore().GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, health.ErrRecordNotFound)
}

func TestMemoryStore_RejectsUnnamedRecord(t *testing.T) {
	s := health.NewMemoryStore()
	err := s.Save(context.Background(), health.Record{MaxHP: 10, CurrentHP: 10})
	assert.ErrorIs(t, err, health.ErrValidation)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := health.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, health.Record{Name: "Briv", MaxHP: 45, CurrentHP: 45}))

	got, err := s.GetByName(ctx, "Briv")
	require.NoError(t, err)
	got.CurrentHP = 0

	again, err := s.GetByName(ctx, "Briv")
	require.NoError(t, err)
	assert.Equal(t, 45, again.CurrentHP)
}

func TestNewRecord_FullHealth(t *testing.T) {
	rec := health.NewRecord("Briv", 45)
	assert.Equal(t, health.Record{Name: "Briv", MaxHP: 45, CurrentHP: 45, TempHP: 0}, rec)
	assert.Equal(t, "briv", rec.Key())
}

func TestParseAmount(t *testing.T) {
	cases := map[string]int{
		"5":    5,
		" 12 ": 12,
		"-2":   -2,
		"7.9":  7,
		"-3.7": -3,
		"0":    0,
	}
	for in, want := range cases {
		got, err := health.ParseAmount(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseAmount_RejectsNonNumeric(t *testing.T) {
	for _, in := range []string{"", "abc", "5hp", "NaN", "Inf", "1e300"} {
		_, err := health.ParseAmount(in)
		assert.ErrorIs(t, err, health.ErrValidation, "input %q", in)
	}
}
