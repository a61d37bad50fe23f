package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anthyakshari/internal/config"
	"anthyakshari/internal/database"
	"anthyakshari/internal/feed"
	"anthyakshari/internal/handlers"
	"anthyakshari/internal/repository"
	"anthyakshari/internal/service"
	"anthyakshari/internal/spotify"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	sheetFeed := feed.NewSheetFeed(cfg.SheetURLs)
	statsService := service.NewStatsService(statsRepo)
	gameService := service.NewGameService(sheetFeed, statsService)
	spotifyClient := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)

	alertService, err := service.NewAlertService(cfg.AWSRegion, cfg.FromEmail, cfg.AlertEmail)
	if err != nil {
		log.Fatalf("Failed to initialize alert service: %v", err)
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(cfg.JWTSecret, cfg.PlayerTokenTTL)
	gameHandler := handlers.NewGameHandler(cfg, gameService, statsService)
	statsHandler := handlers.NewStatsHandler(cfg, gameService, statsService)
	searchHandler := handlers.NewSearchHandler(spotifyClient)

	// Setup routes
	mux := http.NewServeMux()

	// Game routes
	mux.HandleFunc("GET /api/{language}/game", middleware.PlayerIdentity(gameHandler.Game))
	mux.HandleFunc("POST /api/{language}/game/reveal", middleware.PlayerIdentity(gameHandler.RevealClue))
	mux.HandleFunc("POST /api/{language}/game/hint/{index}", middleware.PlayerIdentity(gameHandler.Navigate))
	mux.HandleFunc("POST /api/{language}/game/select", middleware.PlayerIdentity(gameHandler.Select))
	mux.HandleFunc("POST /api/{language}/game/submit", middleware.PlayerIdentity(gameHandler.Submit))
	mux.HandleFunc("POST /api/{language}/game/giveup", middleware.PlayerIdentity(gameHandler.GiveUp))

	// Stats routes
	mux.HandleFunc("GET /api/{language}/stats", middleware.PlayerIdentity(statsHandler.Stats))
	mux.HandleFunc("GET /api/{language}/share", middleware.PlayerIdentity(statsHandler.Share))

	// Search proxy routes
	mux.HandleFunc("GET /api/search", middleware.RateLimit(searchHandler.Search))
	mux.HandleFunc("GET /api/track-meta", middleware.RateLimit(searchHandler.TrackMeta))

	// Health check
	mux.HandleFunc("GET /api/health", searchHandler.Health)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background puzzle gap checker
	go checkPuzzleGaps(cfg, sheetFeed, alertService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// checkPuzzleGaps periodically verifies that tomorrow's puzzle exists for
// every configured language, alerting the curator when one is missing
func checkPuzzleGaps(cfg *config.Config, puzzles *feed.SheetFeed, alerts *service.AlertService) {
	if !alerts.IsEnabled() {
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

		for _, lang := range cfg.Languages() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

			puzzle, err := puzzles.PuzzleFor(ctx, lang, tomorrow)
			if err != nil {
				log.Printf("Puzzle gap check failed for %s: %v", lang, err)
				cancel()
				continue
			}

			if puzzle.HintCount() == 0 {
				if err := alerts.SendPuzzleGapAlert(ctx, lang, tomorrow); err != nil {
					log.Printf("Failed to alert puzzle gap for %s: %v", lang, err)
				}
			}
			cancel()
		}
	}
}
