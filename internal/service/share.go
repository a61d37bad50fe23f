package service

import (
	"fmt"
	"strings"
	"time"

	"anthyakshari/internal/models"
)

// epochDate anchors the public day number: the epoch date itself is day 1.
// It must be identical across the whole deployment or day numbers shown to
// players comparing results will diverge.
var epochDate = time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)

const (
	glyphHit     = "🟩"
	glyphMiss    = "🟥"
	glyphNeutral = "⬜"

	shareBaseURL = "https://anthyakshari.app"
)

// DayNumber converts a puzzle date (YYYY-MM-DD) to the 1-based day count
// from the epoch. Unparseable or pre-epoch dates yield 0.
func DayNumber(date string) int {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}

	days := int(d.Sub(epochDate).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}

// RenderShareText formats the Wordle-style result summary for a completed
// session. The output is deterministic for identical inputs: four lines,
// no timestamps, no randomness.
func RenderShareText(o models.ShareOutcome) string {
	day := DayNumber(o.Date)
	lang := strings.ToUpper(o.Language)

	var header, scoreLine string
	if o.GaveUp {
		header = fmt.Sprintf("అంత్యాక్షరి (%s) #%d X/%d", lang, day, o.TotalHints)
		scoreLine = "Score: 0/100"
	} else {
		header = fmt.Sprintf("అంత్యాక్షరి (%s) #%d %d/%d", lang, day, o.SolvedOnHint, o.TotalHints)
		scoreLine = fmt.Sprintf("Score: %d/100", o.Score)
		if o.UsedClue {
			scoreLine += " (clue used)"
		}
	}

	var grid strings.Builder
	for i := 1; i <= o.TotalHints; i++ {
		switch {
		case !o.GaveUp && i == o.SolvedOnHint:
			grid.WriteString(glyphHit)
		case o.GaveUp && i == o.TotalHints:
			grid.WriteString(glyphMiss)
		default:
			grid.WriteString(glyphNeutral)
		}
	}

	link := fmt.Sprintf("%s/%s", shareBaseURL, strings.ToLower(o.Language))

	return strings.Join([]string{header, scoreLine, grid.String(), link}, "\n")
}
