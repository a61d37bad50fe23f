package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anthyakshari/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const PlayerContextKey ContextKey = "player"

// PlayerCookieName carries the signed player identity token
const PlayerCookieName = "player_token"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	jwtSecret []byte
	tokenTTL  time.Duration
	limiter   *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(jwtSecret string, tokenTTL time.Duration) *Middleware {
	return &Middleware{
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		limiter:   security.NewRateLimiter(30, time.Minute),
	}
}

// PlayerIdentity attaches an anonymous player ID to the request. A missing,
// invalid or expired cookie is replaced silently with a fresh identity;
// the game never refuses a player.
func (m *Middleware) PlayerIdentity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := ""
		if cookie, err := r.Cookie(PlayerCookieName); err == nil {
			playerID, _ = security.ParsePlayerToken(m.jwtSecret, cookie.Value)
		}

		if playerID == "" {
			playerID = security.GeneratePlayerID()
			token, err := security.MintPlayerToken(m.jwtSecret, playerID, m.tokenTTL)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to mint player token", err)
				return
			}
			http.SetCookie(w, security.CreatePlayerCookie(r, PlayerCookieName, token, time.Now().Add(m.tokenTTL)))
		}

		ctx := context.WithValue(r.Context(), PlayerContextKey, playerID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects clients that exceed the per-IP request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// PlayerFromContext retrieves the player ID from the request context
func PlayerFromContext(ctx context.Context) string {
	playerID, _ := ctx.Value(PlayerContextKey).(string)
	return playerID
}
