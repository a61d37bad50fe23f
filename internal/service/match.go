package service

import (
	"strings"

	"anthyakshari/internal/models"
	"anthyakshari/internal/utils"
)

// Matches reports whether the player's selected track answers the hint.
// The song must match; the album must match only when the answer key names
// one. Matching is equality or either-direction containment on normalized
// text, because search providers attach qualifiers ("- Remastered",
// "(From Movie)") that the answer key omits.
func Matches(hint models.HintRecord, sel models.Selection) bool {
	if !textMatch(utils.Normalize(hint.SongName), utils.Normalize(sel.Title)) {
		return false
	}

	if strings.TrimSpace(hint.AlbumName) == "" {
		return true
	}

	return textMatch(utils.Normalize(hint.AlbumName), utils.Normalize(sel.AlbumName))
}

// textMatch applies the equal-or-substring rule to two normalized strings.
// The substring leg requires both sides non-empty, so an empty selection
// never matches a named answer.
func textMatch(a, b string) bool {
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
