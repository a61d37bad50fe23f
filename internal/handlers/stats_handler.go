package handlers

import (
	"net/http"

	"anthyakshari/internal/config"
	"anthyakshari/internal/service"
)

// StatsHandler serves the player's statistics and share text
type StatsHandler struct {
	cfg   *config.Config
	games *service.GameService
	stats *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(cfg *config.Config, games *service.GameService, stats *service.StatsService) *StatsHandler {
	return &StatsHandler{
		cfg:   cfg,
		games: games,
		stats: stats,
	}
}

// Stats returns the player's aggregates for a language
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("language")
	if !h.cfg.IsSupportedLanguage(lang) {
		http.Error(w, "Unknown language", http.StatusNotFound)
		return
	}

	playerID := PlayerFromContext(r.Context())
	respondJSON(w, http.StatusOK, statsView{
		Language: lang,
		Stats:    h.stats.AggregatesFor(playerID, lang),
	})
}

// Share returns the shareable result summary for today's finished session
func (h *StatsHandler) Share(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("language")
	if !h.cfg.IsSupportedLanguage(lang) {
		http.Error(w, "Unknown language", http.StatusNotFound)
		return
	}

	outcome, err := h.games.ShareOutcome(r.Context(), PlayerFromContext(r.Context()), lang)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Puzzle feed unavailable", "Failed to load puzzle", err)
		return
	}
	if outcome == nil {
		http.Error(w, "Session not finished", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(service.RenderShareText(*outcome)))
}
