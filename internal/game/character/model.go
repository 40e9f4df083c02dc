// Package character defines the immutable character sheet model, the sheet lookup
// contract, and the pure hit point and ability score calculations derived from it.
package character

import "strings"

// DamageType names a kind of damage a defense can apply to.
type DamageType string

// Damage types recognized by sheets and damage requests.
const (
	Acid        DamageType = "acid"
	Bludgeoning DamageType = "bludgeoning"
	Cold        DamageType = "cold"
	Fire        DamageType = "fire"
	Force       DamageType = "force"
	Lightning   DamageType = "lightning"
	Necrotic    DamageType = "necrotic"
	Piercing    DamageType = "piercing"
	Poison      DamageType = "poison"
	Psychic     DamageType = "psychic"
	Radiant     DamageType = "radiant"
	Slashing    DamageType = "slashing"
	Thunder     DamageType = "thunder"
)

var damageTypes = map[DamageType]bool{
	Acid: true, Bludgeoning: true, Cold: true, Fire: true, Force: true,
	Lightning: true, Necrotic: true, Piercing: true, Poison: true,
	Psychic: true, Radiant: true, Slashing: true, Thunder: true,
}

// Valid reports whether d names a known damage type, ignoring case.
func (d DamageType) Valid() bool {
	return damageTypes[DamageType(strings.ToLower(string(d)))]
}

// Is reports whether d and other name the same damage type, ignoring case.
func (d DamageType) Is(other DamageType) bool {
	return strings.EqualFold(string(d), string(other))
}

// DefenseType is the way a defense modifies damage of its type.
type DefenseType string

const (
	// Resistance halves damage, rounding down.
	Resistance DefenseType = "resistance"
	// Vulnerability doubles damage.
	Vulnerability DefenseType = "vulnerability"
	// Immunity negates damage entirely.
	Immunity DefenseType = "immunity"
)

// Is reports whether d and other name the same defense, ignoring case.
func (d DefenseType) Is(other DefenseType) bool {
	return strings.EqualFold(string(d), string(other))
}

// StatType names one of the six ability scores.
type StatType string

const (
	Strength     StatType = "strength"
	Dexterity    StatType = "dexterity"
	Constitution StatType = "constitution"
	Intelligence StatType = "intelligence"
	Wisdom       StatType = "wisdom"
	Charisma     StatType = "charisma"
)

// Abbreviation returns the three-letter short name of the stat, e.g. "con".
func (s StatType) Abbreviation() string {
	if len(s) < 3 {
		return string(s)
	}
	return string(s[:3])
}

// ClassLevel is one class a character has levels in.
type ClassLevel struct {
	Name         string `json:"name" yaml:"name"`
	HitDiceValue int    `json:"hitDiceValue" yaml:"hitDiceValue"`
	ClassLevel   int    `json:"classLevel" yaml:"classLevel"`
}

// Stats holds the six base ability scores.
type Stats struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`
}

// Score returns the base score for stat and whether stat is known.
func (s Stats) Score(stat StatType) (int, bool) {
	switch StatType(strings.ToLower(string(stat))) {
	case Strength:
		return s.Strength, true
	case Dexterity:
		return s.Dexterity, true
	case Constitution:
		return s.Constitution, true
	case Intelligence:
		return s.Intelligence, true
	case Wisdom:
		return s.Wisdom, true
	case Charisma:
		return s.Charisma, true
	}
	return 0, false
}

// Modifier adjusts a value on the character while the owning item is carried.
//
// A modifier targets an ability score when AffectedObject is "stats" and
// AffectedValue is the stat's long or three-letter name.
type Modifier struct {
	AffectedObject string `json:"affectedObject" yaml:"affectedObject"`
	AffectedValue  string `json:"affectedValue" yaml:"affectedValue"`
	Value          int    `json:"value" yaml:"value"`
}

// Item is a carried item; only its modifier affects calculations.
type Item struct {
	Name     string   `json:"name" yaml:"name"`
	Modifier Modifier `json:"modifier" yaml:"modifier"`
}

// Defense applies a DefenseType to damage of a single DamageType.
type Defense struct {
	Type    DamageType  `json:"type" yaml:"type"`
	Defense DefenseType `json:"defense" yaml:"defense"`
}

// Sheet is the immutable definition of a playable character.
//
// Sheets returned by a Lookup are shared and must not be modified.
type Sheet struct {
	Name     string       `json:"name" yaml:"name"`
	Level    int          `json:"level" yaml:"level"`
	Classes  []ClassLevel `json:"classes" yaml:"classes"`
	Stats    *Stats       `json:"stats,omitempty" yaml:"stats"`
	Items    []Item       `json:"items" yaml:"items"`
	Defenses []Defense    `json:"defenses" yaml:"defenses"`
}
