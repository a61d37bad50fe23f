package service

// Score computes the final score for a winning guess.
// The first hint is worth 100 points and each later hint costs 20; revealing
// the text clue on the solving hint costs 5 more. The result never goes
// below 0, so from the sixth hint on a win still scores 0.
// Giving up bypasses this entirely and always scores 0.
func Score(hintIndex int, usedClue bool) int {
	base := 100 - hintIndex*20
	if base < 0 {
		base = 0
	}

	if usedClue {
		base -= 5
	}
	if base < 0 {
		base = 0
	}

	return base
}
