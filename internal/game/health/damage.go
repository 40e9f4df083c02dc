package health

import (
	"math"

	"github.com/cory-johannsen/charhp/internal/game/character"
)

// DamageRequest is one typed portion of incoming damage. Value is truncated
// toward zero and negative values count as zero.
type DamageRequest struct {
	Type  character.DamageType `json:"type"`
	Value float64              `json:"value"`
}

// CalculateDamage totals damage after defenses. It reads and writes no state.
//
// For each request: a matching immunity voids it; otherwise a matching resistance
// halves it (rounding down) once, then a matching vulnerability doubles it once.
// Repeated defense entries for the same type do not stack.
//
// Postcondition: Returns >= 0.
func CalculateDamage(requests []DamageRequest, defenses []character.Defense) int {
	total := 0
	for _, req := range requests {
		value := damageValue(req.Value)
		if len(defenses) == 0 {
			total += value
			continue
		}
		if hasDefense(defenses, req.Type, character.Immunity) {
			continue
		}
		if hasDefense(defenses, req.Type, character.Resistance) {
			value = character.HalfRoundDown(value)
		}
		if hasDefense(defenses, req.Type, character.Vulnerability) {
			value *= 2
		}
		total += value
	}
	return total
}

func damageValue(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Trunc(v))
}

func hasDefense(defenses []character.Defense, t character.DamageType, kind character.DefenseType) bool {
	for _, d := range defenses {
		if d.Type.Is(t) && d.Defense.Is(kind) {
			return true
		}
	}
	return false
}

// ApplyDamage returns rec after damage, leaving rec itself untouched. Temporary
// hit points absorb damage first; the remainder reduces current hit points,
// which stop at zero. Excess damage is discarded.
//
// Postcondition: a damage <= 0 returns rec unchanged; otherwise TempHP >= 0 and CurrentHP >= 0.
func ApplyDamage(damage int, rec Record) Record {
	if damage <= 0 {
		return rec
	}
	absorbed := min(rec.TempHP, damage)
	rec.TempHP -= absorbed
	damage -= absorbed

	// A record derived from a negative max never gains hit points from damage.
	lost := max(0, min(rec.CurrentHP, damage))
	rec.CurrentHP -= lost
	return rec
}

// addTemporaryHP applies a temporary hit point change. Temporary hit points do
// not stack: a positive grant keeps the larger of the old and new pools, and a
// negative amount reduces the pool, never below zero.
func addTemporaryHP(rec Record, amount int) Record {
	if amount < 0 {
		rec.TempHP = max(0, rec.TempHP+amount)
		return rec
	}
	rec.TempHP = max(amount, rec.TempHP)
	return rec
}
