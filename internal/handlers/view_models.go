package handlers

import (
	"anthyakshari/internal/models"
)

// gameView is the JSON shape of a game session as shown to the player.
// Answer fields stay hidden until the session is terminal, and the clue text
// only appears once revealed.
type gameView struct {
	Language string `json:"language"`
	Date     string `json:"date"`
	NoPuzzle bool   `json:"noPuzzle"`

	HintCount  int    `json:"hintCount,omitempty"`
	HintIndex  int    `json:"hintIndex"`
	HintNumber int    `json:"hintNumber,omitempty"`
	AudioURL   string `json:"audioUrl,omitempty"`
	ClueText   string `json:"clueText,omitempty"`

	RevealedClues []int                `json:"revealedClues"`
	Selection     *models.Selection    `json:"selection,omitempty"`
	Status        models.SessionStatus `json:"status,omitempty"`
	FinalScore    *int                 `json:"finalScore,omitempty"`
	Message       string               `json:"message,omitempty"`

	Answer *answerView `json:"answer,omitempty"`
}

// answerView exposes the day's answer after the game ends
type answerView struct {
	SongName  string `json:"songName"`
	AlbumName string `json:"albumName,omitempty"`
	SongURL   string `json:"songUrl,omitempty"`
}

// statsView wraps the aggregates for the stats endpoint
type statsView struct {
	Language string            `json:"language"`
	Stats    models.Aggregates `json:"stats"`
}

func noPuzzleView(language, date string) gameView {
	return gameView{
		Language:      language,
		Date:          date,
		NoPuzzle:      true,
		RevealedClues: []int{},
	}
}

func buildGameView(sess *models.SessionState, puzzle *models.Puzzle) gameView {
	view := gameView{
		Language:      sess.Language,
		Date:          sess.Date,
		HintCount:     puzzle.HintCount(),
		HintIndex:     sess.HintIndex,
		RevealedClues: []int{},
		Selection:     sess.Selection,
		Status:        sess.Status,
		FinalScore:    sess.FinalScore,
		Message:       sess.Message,
	}

	for i := 0; i < puzzle.HintCount(); i++ {
		if sess.ClueRevealed(i) {
			view.RevealedClues = append(view.RevealedClues, i)
		}
	}

	if hint := puzzle.Hint(sess.HintIndex); hint != nil {
		view.HintNumber = hint.HintNumber
		view.AudioURL = hint.AudioURL
		if sess.ClueRevealed(sess.HintIndex) {
			view.ClueText = hint.ClueText
		}
		if sess.IsFinished() {
			view.Answer = &answerView{
				SongName:  hint.SongName,
				AlbumName: hint.AlbumName,
				SongURL:   hint.SongURL,
			}
		}
	}

	return view
}
