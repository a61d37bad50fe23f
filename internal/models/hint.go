package models

// HintRecord is one step in a day's progressive reveal sequence.
// The audio hint is always available; the text clue is shown only on request
// and costs points when used on the solving hint.
type HintRecord struct {
	HintNumber int
	ClueText   string
	AudioURL   string
	SongName   string
	AlbumName  string
	SongURL    string
}

// Puzzle is the ordered hint sequence for one language and one calendar day.
// Hints are sorted ascending by HintNumber and addressed by 0-based position;
// the HintNumber values need not be contiguous.
type Puzzle struct {
	Language string
	Date     string // YYYY-MM-DD
	Hints    []HintRecord
}

// HintCount returns the number of hints in the puzzle
func (p *Puzzle) HintCount() int {
	if p == nil {
		return 0
	}
	return len(p.Hints)
}

// Hint returns the hint at the given 0-based index, or nil when out of range
func (p *Puzzle) Hint(index int) *HintRecord {
	if p == nil || index < 0 || index >= len(p.Hints) {
		return nil
	}
	return &p.Hints[index]
}
