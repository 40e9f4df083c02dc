package character

// AverageDieRoll returns the fixed per-level hit point gain for a hit die:
// half the die rounded up, plus one.
//
// Precondition: hitDiceValue >= 0.
func AverageDieRoll(hitDiceValue int) int {
	return (hitDiceValue+1)/2 + 1
}

// HalfRoundDown returns floor(value / 2). Negative odd values round toward
// negative infinity, so HalfRoundDown(-1) == -1.
func HalfRoundDown(value int) int {
	return value >> 1
}

// AbilityModifier converts a raw ability score to its modifier:
// floor((score - 10) / 2). A score of 9 yields -1.
func AbilityModifier(score int) int {
	return HalfRoundDown(score - 10)
}
