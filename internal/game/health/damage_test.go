package health_test

import (
	"testing"

	"github.com/cory-johannsen/charhp/internal/game/character"
	"github.com/cory-johannsen/charhp/internal/game/health"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func coldAndSlashing(cold, slashing float64) []health.DamageRequest {
	return []health.DamageRequest{
		{Type: character.Cold, Value: cold},
		{Type: character.Slashing, Value: slashing},
	}
}

func TestCalculateDamage_AppliesImmunity(t *testing.T) {
	defenses := []character.Defense{{Type: character.Slashing, Defense: character.Immunity}}
	assert.Equal(t, 6, health.CalculateDamage(coldAndSlashing(6, 10), defenses))
}

func TestCalculateDamage_IgnoresNonMatchingImmunity(t *testing.T) {
	defenses := []character.Defense{{Type: character.Acid, Defense: character.Immunity}}
	assert.Equal(t, 16, health.CalculateDamage(coldAndSlashing(6, 10), defenses))
}

func TestCalculateDamage_AppliesVulnerability(t *testing.T) {
	defenses := []character.Defense{{Type: character.Cold, Defense: character.Vulnerability}}
	assert.Equal(t, 22, health.CalculateDamage(coldAndSlashing(6, 10), defenses))
}

func TestCalculateDamage_IgnoresNonMatchingVulnerability(t *testing.T) {
	defenses := []character.Defense{{Type: character.Thunder, Defense: character.Vulnerability}}
	assert.Equal(t, 16, health.CalculateDamage(coldAndSlashing(6, 10), defenses))
}

func TestCalculateDamage_AppliesResistanceRoundingDown(t *testing.T) {
	defenses := []character.Defense{{Type: character.Cold, Defense: character.Resistance}}
	assert.Equal(t, 13, health.CalculateDamage(coldAndSlashing(7, 10), defenses))
}

func TestCalculateDamage_IgnoresNonMatchingResistance(t *testing.T) {
	defenses := []character.Defense{{Type: character.Thunder, Defense: character.Resistance}}
	assert.Equal(t, 16, health.CalculateDamage(coldAndSlashing(6, 10), defenses))
}

func TestCalculateDamage_FlameTongueAgainstBriv(t *testing.T) {
	requests := []health.DamageRequest{
		{Type: character.Slashing, Value: 9},
		{Type: character.Fire, Value: 6},
	}
	defenses := []character.Defense{
		{Type: character.Fire, Defense: character.Immunity},
		{Type: character.Slashing, Defense: character.Resistance},
	}
	assert.Equal(t, 4, health.CalculateDamage(requests, defenses))
}

func TestCalculateDamage_EmptyRequests(t *testing.T) {
	assert.Equal(t, 0, health.CalculateDamage(nil, nil))
	assert.Equal(t, 0, health.CalculateDamage([]health.DamageRequest{}, []character.Defense{{Type: character.Fire, Defense: character.Immunity}}))
}

func TestCalculateDamage_TruncatesAndFloorsValues(t *testing.T) {
	requests := []health.DamageRequest{
		{Type: character.Fire, Value: 6.9},
		{Type: character.Cold, Value: -4},
	}
	assert.Equal(t, 6, health.CalculateDamage(requests, nil))
}

func TestCalculateDamage_RepeatedDefensesDoNotStack(t *testing.T) {
	defenses := []character.Defense{
		{Type: character.Cold, Defense: character.Resistance},
		{Type: character.Cold, Defense: character.Resistance},
		{Type: character.Slashing, Defense: character.Vulnerability},
		{Type: character.Slashing, Defense: character.Vulnerability},
	}
	assert.Equal(t, 4+20, health.CalculateDamage(coldAndSlashing(8, 10), defenses))
}

func TestCalculateDamage_ResistanceThenVulnerability(t *testing.T) {
	defenses := []character.Defense{
		{Type: character.Cold, Defense: character.Vulnerability},
		{Type: character.Cold, Defense: character.Resistance},
	}
	// floor(7/2) * 2
	requests := []health.DamageRequest{{Type: character.Cold, Value: 7}}
	assert.Equal(t, 6, health.CalculateDamage(requests, defenses))
}

func TestCalculateDamage_ImmunityBeatsVulnerability(t *testing.T) {
	defenses := []character.Defense{
		{Type: character.Fire, Defense: character.Vulnerability},
		{Type: character.Fire, Defense: character.Immunity},
	}
	requests := []health.DamageRequest{{Type: character.Fire, Value: 50}}
	assert.Equal(t, 0, health.CalculateDamage(requests, defenses))
}

func TestCalculateDamage_MatchesTypesIgnoringCase(t *testing.T) {
	defenses := []character.Defense{{Type: "FIRE", Defense: "Immunity"}}
	requests := []health.DamageRequest{{Type: "fire", Value: 10}}
	assert.Equal(t, 0, health.CalculateDamage(requests, defenses))
}

// TestCalculateDamage_Property verifies the total is never negative and never
// exceeds twice the sum of the positive request values.
func TestCalculateDamage_Property(t *testing.T) {
	types := []character.DamageType{character.Cold, character.Fire, character.Slashing}
	kinds := []character.DefenseType{character.Resistance, character.Vulnerability, character.Immunity}
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(rt, "requests")
		requests := make([]health.DamageRequest, n)
		upper := 0
		for i := range requests {
			v := rapid.IntRange(-20, 200).Draw(rt, "value")
			requests[i] = health.DamageRequest{Type: rapid.SampledFrom(types).Draw(rt, "type"), Value: float64(v)}
			if v > 0 {
				upper += 2 * v
			}
		}
		m := rapid.IntRange(0, 4).Draw(rt, "defenses")
		defenses := make([]character.Defense, m)
		for i := range defenses {
			defenses[i] = character.Defense{
				Type:    rapid.SampledFrom(types).Draw(rt, "defenseType"),
				Defense: rapid.SampledFrom(kinds).Draw(rt, "defenseKind"),
			}
		}
		total := health.CalculateDamage(requests, defenses)
		assert.GreaterOrEqual(rt, total, 0)
		assert.LessOrEqual(rt, total, upper)
	})
}

func fullHealth(temp int) health.Record {
	return health.Record{Name: "Test", MaxHP: 30, CurrentHP: 30, TempHP: temp}
}

func TestApplyDamage_DamageExceedsTempHP(t *testing.T) {
	got := health.ApplyDamage(10, fullHealth(5))
	assert.Equal(t, 0, got.TempHP)
	assert.Equal(t, 25, got.CurrentHP)
}

func TestApplyDamage_TempHPExceedsDamage(t *testing.T) {
	got := health.ApplyDamage(4, fullHealth(5))
	assert.Equal(t, 1, got.TempHP)
	assert.Equal(t, 30, got.CurrentHP)
}

func TestApplyDamage_DamageExceedsHP(t *testing.T) {
	got := health.ApplyDamage(100, fullHealth(0))
	assert.Equal(t, 0, got.TempHP)
	assert.Equal(t, 0, got.CurrentHP)
}

func TestApplyDamage_HPExceedsDamage(t *testing.T) {
	got := health.ApplyDamage(12, fullHealth(0))
	assert.Equal(t, 0, got.TempHP)
	assert.Equal(t, 18, got.CurrentHP)
}

func TestApplyDamage_NonPositiveIsNoOp(t *testing.T) {
	rec := fullHealth(5)
	assert.Equal(t, rec, health.ApplyDamage(0, rec))
	assert.Equal(t, rec, health.ApplyDamage(-7, rec))
}

func TestApplyDamage_NegativeCurrentHPNeverRises(t *testing.T) {
	rec := health.Record{Name: "Frail", MaxHP: -3, CurrentHP: -3, TempHP: 2}
	got := health.ApplyDamage(5, rec)
	assert.Equal(t, 0, got.TempHP)
	assert.Equal(t, -3, got.CurrentHP)
}

func TestApplyDamage_DoesNotMutateInput(t *testing.T) {
	rec := fullHealth(5)
	_ = health.ApplyDamage(20, rec)
	assert.Equal(t, fullHealth(5), rec)
}

// TestApplyDamage_Property verifies the record invariants and that exactly
// min(damage, temp+current) hit points are removed.
func TestApplyDamage_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 500).Draw(rt, "maxHP")
		rec := health.Record{
			Name:      "Prop",
			MaxHP:     maxHP,
			CurrentHP: rapid.IntRange(0, maxHP).Draw(rt, "currentHP"),
			TempHP:    rapid.IntRange(0, 100).Draw(rt, "tempHP"),
		}
		damage := rapid.IntRange(-50, 1000).Draw(rt, "damage")

		got := health.ApplyDamage(damage, rec)

		assert.GreaterOrEqual(rt, got.CurrentHP, 0)
		assert.LessOrEqual(rt, got.CurrentHP, got.MaxHP)
		assert.GreaterOrEqual(rt, got.TempHP, 0)
		assert.Equal(rt, rec.MaxHP, got.MaxHP)
		assert.Equal(rt, rec.Name, got.Name)

		removed := (rec.CurrentHP + rec.TempHP) - (got.CurrentHP + got.TempHP)
		assert.Equal(rt, max(0, min(damage, rec.CurrentHP+rec.TempHP)), removed)
		if damage < rec.TempHP {
			assert.Equal(rt, rec.CurrentHP, got.CurrentHP, "temp hp absorbs first")
		}
	})
}
