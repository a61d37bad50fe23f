package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"anthyakshari/internal/config"
	"anthyakshari/internal/models"
	"anthyakshari/internal/service"
)

// GameHandler handles the daily game API requests
type GameHandler struct {
	cfg   *config.Config
	games *service.GameService
	stats *service.StatsService
}

// NewGameHandler creates a new game handler
func NewGameHandler(cfg *config.Config, games *service.GameService, stats *service.StatsService) *GameHandler {
	return &GameHandler{
		cfg:   cfg,
		games: games,
		stats: stats,
	}
}

// language validates the {language} path value; unknown codes 404
func (h *GameHandler) language(w http.ResponseWriter, r *http.Request) (string, bool) {
	lang := r.PathValue("language")
	if !h.cfg.IsSupportedLanguage(lang) {
		http.Error(w, "Unknown language", http.StatusNotFound)
		return "", false
	}
	return lang, true
}

// respondState writes the session view after any game operation. The state
// machine quietly ignores invalid requests, so the response is always the
// fresh state with HTTP 200.
func (h *GameHandler) respondState(w http.ResponseWriter, lang string, sess *models.SessionState, puzzle *models.Puzzle, err error) {
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Puzzle feed unavailable", "Failed to load puzzle", err)
		return
	}
	if sess == nil {
		respondJSON(w, http.StatusOK, noPuzzleView(lang, ""))
		return
	}
	respondJSON(w, http.StatusOK, buildGameView(sess, puzzle))
}

// Game returns the player's current session for today
func (h *GameHandler) Game(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	sess, puzzle, err := h.games.CurrentSession(r.Context(), PlayerFromContext(r.Context()), lang)
	h.respondState(w, lang, sess, puzzle, err)
}

// RevealClue shows the text clue for the current hint
func (h *GameHandler) RevealClue(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	sess, puzzle, err := h.games.RevealClue(r.Context(), PlayerFromContext(r.Context()), lang)
	h.respondState(w, lang, sess, puzzle, err)
}

// Navigate moves the hint pointer to the index in the path
func (h *GameHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	// A non-numeric index is treated like any other invalid navigation:
	// the state machine ignores it
	target, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		target = -1
	}

	sess, puzzle, opErr := h.games.GoToHint(r.Context(), PlayerFromContext(r.Context()), lang, target)
	h.respondState(w, lang, sess, puzzle, opErr)
}

// Select sets the player's pending track selection
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	var sel models.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid selection", http.StatusBadRequest)
		return
	}

	sess, puzzle, err := h.games.SetSelection(r.Context(), PlayerFromContext(r.Context()), lang, sel)
	h.respondState(w, lang, sess, puzzle, err)
}

// Submit validates the pending selection against the current hint
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	sess, puzzle, err := h.games.SubmitGuess(r.Context(), PlayerFromContext(r.Context()), lang)
	h.respondState(w, lang, sess, puzzle, err)
}

// GiveUp ends the session with a zero score
func (h *GameHandler) GiveUp(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	sess, puzzle, err := h.games.GiveUp(r.Context(), PlayerFromContext(r.Context()), lang)
	h.respondState(w, lang, sess, puzzle, err)
}
