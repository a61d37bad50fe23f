package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleSheet = `Date,SongID,HintNumber,Clue,Song Name,Album Name,Song Link,Audio Hint Link
2026-08-29,s1,2,Second clue,Moon River,Breakfast at Tiffany's,https://open.spotify.com/track/abc,https://cdn/audio2.mp3
2026-08-29,s1,1,First clue,Moon River,Breakfast at Tiffany's,https://open.spotify.com/track/abc,https://cdn/audio1.mp3
2026-08-30,s2,1,Tomorrow clue,Other Song,,https://open.spotify.com/track/def,
2026-08-29,s1,bad,Broken row,Moon River,,,
`

func TestParseSheet(t *testing.T) {
	rows, err := parseSheet(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatalf("parseSheet() error: %v", err)
	}

	// The unparseable hint number row is dropped
	if len(rows) != 3 {
		t.Fatalf("parseSheet() returned %d rows, want 3", len(rows))
	}

	if rows[0].hintNumber != 2 || rows[0].songName != "Moon River" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[2].date != "2026-08-30" || rows[2].albumName != "" {
		t.Errorf("unexpected third row: %+v", rows[2])
	}
}

func TestParseSheetQuotedCommas(t *testing.T) {
	sheet := `Date,HintNumber,Clue,Song Name,Album Name,Song Link,Audio Hint Link
2026-08-29,1,"Released in 1961, sung by Audrey","Moon River","Breakfast at Tiffany's",,
`

	rows, err := parseSheet(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("parseSheet() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("parseSheet() returned %d rows, want 1", len(rows))
	}
	if rows[0].clue != "Released in 1961, sung by Audrey" {
		t.Errorf("quoted clue not preserved: %q", rows[0].clue)
	}
}

func TestParseSheetEmpty(t *testing.T) {
	rows, err := parseSheet(strings.NewReader("Date,HintNumber\n"))
	if err != nil {
		t.Fatalf("parseSheet() error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("header-only sheet should have no rows, got %d", len(rows))
	}
}

func TestPuzzleFor(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Write([]byte(sampleSheet))
	}))
	defer server.Close()

	feed := NewSheetFeed(map[string]string{"telugu": server.URL})
	ctx := context.Background()

	puzzle, err := feed.PuzzleFor(ctx, "telugu", "2026-08-29")
	if err != nil {
		t.Fatalf("PuzzleFor() error: %v", err)
	}

	if puzzle.HintCount() != 2 {
		t.Fatalf("HintCount() = %d, want 2", puzzle.HintCount())
	}

	// Rows arrive out of order in the sheet; the puzzle must be sorted
	if puzzle.Hints[0].HintNumber != 1 || puzzle.Hints[1].HintNumber != 2 {
		t.Errorf("hints not sorted by hint number: %+v", puzzle.Hints)
	}
	if puzzle.Hints[0].ClueText != "First clue" {
		t.Errorf("first hint clue = %q, want %q", puzzle.Hints[0].ClueText, "First clue")
	}

	// Second lookup for the same day must hit the cache
	if _, err := feed.PuzzleFor(ctx, "telugu", "2026-08-29"); err != nil {
		t.Fatalf("PuzzleFor() second call error: %v", err)
	}
	if fetches != 1 {
		t.Errorf("sheet fetched %d times for one day, want 1", fetches)
	}
}

func TestPuzzleForNoPuzzleDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleSheet))
	}))
	defer server.Close()

	feed := NewSheetFeed(map[string]string{"telugu": server.URL})

	puzzle, err := feed.PuzzleFor(context.Background(), "telugu", "2026-09-15")
	if err != nil {
		t.Fatalf("PuzzleFor() error: %v", err)
	}
	if puzzle.HintCount() != 0 {
		t.Errorf("expected empty puzzle, got %d hints", puzzle.HintCount())
	}
}

func TestPuzzleForUnconfiguredLanguage(t *testing.T) {
	feed := NewSheetFeed(map[string]string{})

	puzzle, err := feed.PuzzleFor(context.Background(), "tamil", "2026-08-29")
	if err != nil {
		t.Fatalf("PuzzleFor() error: %v", err)
	}
	if puzzle.HintCount() != 0 {
		t.Errorf("unconfigured language should yield an empty puzzle")
	}
}
