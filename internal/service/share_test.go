package service

import (
	"strings"
	"testing"

	"anthyakshari/internal/models"
)

func TestDayNumber(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{"epoch is day one", "2025-11-17", 1},
		{"next day", "2025-11-18", 2},
		{"thirty days in", "2025-12-16", 30},
		{"before the epoch", "2025-11-01", 0},
		{"unparseable date", "17-11-2025", 0},
		{"empty date", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DayNumber(tt.date)
			if result != tt.expected {
				t.Errorf("DayNumber(%q) = %d, want %d", tt.date, result, tt.expected)
			}
		})
	}
}

func TestRenderShareTextWin(t *testing.T) {
	out := RenderShareText(models.ShareOutcome{
		Date:         "2025-11-19",
		Language:     "telugu",
		SolvedOnHint: 3,
		TotalHints:   5,
		Score:        55,
		UsedClue:     true,
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}

	if lines[0] != "అంత్యాక్షరి (TELUGU) #3 3/5" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Score: 55/100 (clue used)" {
		t.Errorf("score line = %q", lines[1])
	}
	if lines[2] != "⬜⬜🟩⬜⬜" {
		t.Errorf("grid = %q", lines[2])
	}
	if lines[3] != "https://anthyakshari.app/telugu" {
		t.Errorf("link = %q", lines[3])
	}
}

func TestRenderShareTextWinWithoutClue(t *testing.T) {
	out := RenderShareText(models.ShareOutcome{
		Date:         "2025-11-17",
		Language:     "hindi",
		SolvedOnHint: 1,
		TotalHints:   5,
		Score:        100,
	})

	lines := strings.Split(out, "\n")
	if lines[0] != "అంత్యాక్షరి (HINDI) #1 1/5" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Score: 100/100" {
		t.Errorf("score line = %q", lines[1])
	}
	if strings.Contains(lines[1], "clue") {
		t.Error("score line should not mention the clue when none was used")
	}
	if lines[2] != "🟩⬜⬜⬜⬜" {
		t.Errorf("grid = %q", lines[2])
	}
}

func TestRenderShareTextGiveUp(t *testing.T) {
	out := RenderShareText(models.ShareOutcome{
		Date:       "2025-11-18",
		Language:   "tamil",
		TotalHints: 5,
		GaveUp:     true,
		UsedClue:   true,
	})

	lines := strings.Split(out, "\n")
	if lines[0] != "అంత్యాక్షరి (TAMIL) #2 X/5" {
		t.Errorf("header = %q", lines[0])
	}
	// Give-up score is fixed, clue usage is irrelevant
	if lines[1] != "Score: 0/100" {
		t.Errorf("score line = %q", lines[1])
	}
	if lines[2] != "⬜⬜⬜⬜🟥" {
		t.Errorf("grid = %q", lines[2])
	}
	if lines[3] != "https://anthyakshari.app/tamil" {
		t.Errorf("link = %q", lines[3])
	}
}

func TestRenderShareTextDeterministic(t *testing.T) {
	outcome := models.ShareOutcome{
		Date:         "2025-11-20",
		Language:     "telugu",
		SolvedOnHint: 2,
		TotalHints:   5,
		Score:        80,
	}

	first := RenderShareText(outcome)
	for i := 0; i < 5; i++ {
		if got := RenderShareText(outcome); got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}
}

func TestRenderShareTextGridHasSingleHit(t *testing.T) {
	for solved := 1; solved <= 5; solved++ {
		out := RenderShareText(models.ShareOutcome{
			Date:         "2025-11-17",
			Language:     "telugu",
			SolvedOnHint: solved,
			TotalHints:   5,
			Score:        Score(solved-1, false),
		})

		grid := strings.Split(out, "\n")[2]
		if n := strings.Count(grid, glyphHit); n != 1 {
			t.Errorf("solved on hint %d: grid %q has %d hit glyphs, want 1", solved, grid, n)
		}
		if strings.Contains(grid, glyphMiss) {
			t.Errorf("solved on hint %d: win grid %q should not contain a miss glyph", solved, grid)
		}
	}
}
