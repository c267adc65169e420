package main

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/api"
	"bhasharakshak/preservation-app/internal/config"
	"bhasharakshak/preservation-app/internal/profanity"
	"bhasharakshak/preservation-app/internal/repository/mongo"
	"bhasharakshak/preservation-app/internal/service"
	"bhasharakshak/preservation-app/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Bhasha Rakshak Preservation Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")
	if cfg.App.AdminPin == "" {
		log.Println("WARN: app.admin_pin is not set; admin curation routes will reject every request.")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureAssetIndexes(ctx, appDB.Collection("assets"))
		mongo.EnsureHeritageIndexes(ctx, appDB.Collection("visual_heritage"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize AI Client & Profanity Filter ---
	aiService := ai.NewClient(cfg.AI.URL, cfg.AI.Timeout)
	log.Printf("AI client initialized for %s (timeout %s)", cfg.AI.URL, cfg.AI.Timeout)
	filter := profanity.New()
	log.Printf("Profanity filter compiled for languages: %v", filter.SupportedLanguages())

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	assetRepo := mongo.NewMongoAssetRepository(appDB)
	heritageRepo := mongo.NewMongoHeritageRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	assetService := service.NewAssetService(assetRepo, fileStorage, aiService, filter)
	curationService := service.NewCurationService(assetRepo, aiService)
	collectionService := service.NewCollectionService(assetRepo)
	heritageService := service.NewHeritageService(heritageRepo, fileStorage, aiService, cfg.App.TargetLanguages)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg, assetService, curationService, collectionService, heritageService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
		// Uploads and AI-enriched requests can legitimately take a while;
		// read/write timeouts must cover the AI call budget.
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
