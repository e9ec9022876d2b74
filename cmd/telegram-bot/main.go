package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram/internal/cart"
	"foodgram/internal/clipper"
	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/ingredient"
	"foodgram/internal/llm"
	"foodgram/internal/metrics"
	"foodgram/internal/recipe"
	"foodgram/internal/sharelink"
	"foodgram/internal/shopping"
	"foodgram/internal/tag"
	"foodgram/internal/telegram"
	"foodgram/internal/user"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. Initialize the SQLite database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 3. Initialize repositories
	userRepo := user.NewRepository(db.SQL)
	tagRepo := tag.NewRepository(db.SQL)
	ingredientRepo := ingredient.NewRepository(db.SQL)
	recipeRepo := recipe.NewRepository(db.SQL)
	cartRepo := cart.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	// 4. Initialize the LLM and the clipper
	textGen, err := llm.NewTextGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}
	if closer, ok := textGen.(llm.Closer); ok {
		defer closer.Close()
	}
	recipeClipper := clipper.NewClipper(textGen, ingredientRepo, recipeRepo, tagRepo, metricsStore)

	// 5. Initialize the export pipeline and link tokens
	format, err := shopping.ParseFormat(cfg.ExportFormat)
	if err != nil {
		log.Fatalf("Invalid export format: %v", err)
	}
	exporter := shopping.NewExporter(cartRepo, recipeRepo, userRepo, format)
	tokens := sharelink.NewTokens(cfg.ShareLinkSecret, 15*time.Minute)

	// 6. Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg, recipeClipper, exporter, metricsStore, tokens, userRepo, recipeRepo, cartRepo)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	// 7. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
