package character

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSheet is returned when a sheet lacks the data a calculation needs.
var ErrInvalidSheet = errors.New("invalid character sheet")

const statsObject = "stats"

// StatBonus returns the ability modifier for stat after every item modifier
// targeting that stat has been added to the base score. Repeated items each
// contribute.
//
// Precondition: sheet and sheet.Stats must be non-nil.
// Postcondition: Returns AbilityModifier(base + item modifiers) or ErrInvalidSheet.
func StatBonus(sheet *Sheet, stat StatType) (int, error) {
	if sheet == nil {
		return 0, fmt.Errorf("%w: sheet must not be nil", ErrInvalidSheet)
	}
	if sheet.Stats == nil {
		return 0, fmt.Errorf("%w: %q has no stats", ErrInvalidSheet, sheet.Name)
	}
	score, ok := sheet.Stats.Score(stat)
	if !ok {
		return 0, fmt.Errorf("%w: unknown stat %q", ErrInvalidSheet, stat)
	}
	for _, item := range sheet.Items {
		if modifiesStat(item.Modifier, stat) {
			score += item.Modifier.Value
		}
	}
	return AbilityModifier(score), nil
}

func modifiesStat(m Modifier, stat StatType) bool {
	if !strings.EqualFold(m.AffectedObject, statsObject) {
		return false
	}
	return strings.EqualFold(m.AffectedValue, string(stat)) ||
		strings.EqualFold(m.AffectedValue, stat.Abbreviation())
}

// MaxHP derives a character's maximum hit points.
//
// The first class listed is the starting class: its first level grants the full
// hit die. Every other level, in any class, grants AverageDieRoll(hit die). The
// constitution bonus is added once per level. The total is not clamped.
//
// Precondition: sheet must be non-nil with at least one class and a stats block.
// Postcondition: Returns the computed maximum or ErrInvalidSheet.
func MaxHP(sheet *Sheet) (int, error) {
	if sheet == nil {
		return 0, fmt.Errorf("%w: sheet must not be nil", ErrInvalidSheet)
	}
	if len(sheet.Classes) == 0 {
		return 0, fmt.Errorf("%w: %q has no classes", ErrInvalidSheet, sheet.Name)
	}
	con, err := StatBonus(sheet, Constitution)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, class := range sheet.Classes {
		levels := max(class.ClassLevel, 0)
		if i == 0 && levels > 0 {
			total += class.HitDiceValue + con
			levels--
		}
		total += (AverageDieRoll(class.HitDiceValue) + con) * levels
	}
	return total, nil
}
