package handlers

import (
	"net/http"

	"anthyakshari/internal/spotify"
)

// SearchHandler proxies track autocomplete to the search provider so the
// app credentials never reach the browser
type SearchHandler struct {
	spotify *spotify.Client
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(client *spotify.Client) *SearchHandler {
	return &SearchHandler{spotify: client}
}

// Search returns candidate tracks for the q parameter
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondJSON(w, http.StatusOK, map[string][]spotify.Track{"tracks": {}})
		return
	}

	tracks, err := h.spotify.Search(r.Context(), query)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Search failed", "Spotify search error", err)
		return
	}
	if tracks == nil {
		tracks = []spotify.Track{}
	}

	respondJSON(w, http.StatusOK, map[string][]spotify.Track{"tracks": tracks})
}

// TrackMeta resolves a track URL to song and album names
func (h *SearchHandler) TrackMeta(w http.ResponseWriter, r *http.Request) {
	trackURL := r.URL.Query().Get("url")
	if trackURL == "" {
		http.Error(w, "Missing url query param", http.StatusBadRequest)
		return
	}

	meta, err := h.spotify.TrackMetaByURL(r.Context(), trackURL)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Track lookup failed", "Spotify track meta error", err)
		return
	}

	respondJSON(w, http.StatusOK, meta)
}

// Health is the liveness check
func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
