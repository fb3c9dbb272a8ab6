package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-backend/internal/config"
	"campus-backend/internal/database"
	"campus-backend/internal/handlers"
	"campus-backend/internal/middleware"
	"campus-backend/internal/router"
	"campus-backend/internal/services"
	"campus-backend/internal/store"
)

func main() {
	log.Println("🚀 Starting Campus Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Select Storage Backend ────
	var st store.Store
	if cfg.UseMemory() {
		st = store.NewMemory()
		log.Println("✓ In-memory store active (development fallback, data is not persisted)")
	} else {
		client, err := database.NewMongoClient(cfg.MongoURL)
		if err != nil {
			log.Fatalf("✗ MongoDB connection failed: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.Disconnect(ctx)
		}()
		st = store.NewMongo(client.Database(cfg.DBName))
		log.Println("✓ MongoDB connected")
	}

	// ──── Step 3: Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret, st)
	authService := services.NewAuthService(st, jwtAuth)

	assistant, err := services.NewAssistant(cfg.GeminiAPIKey, st)
	if err != nil {
		log.Fatalf("✗ Assistant initialization failed: %v", err)
	}
	defer assistant.Close()
	if assistant.Configured() {
		log.Println("✓ Gemini assistant initialized")
	} else {
		log.Println("✓ Assistant running on fallback responses (no GEMINI_API_KEY)")
	}

	// ──── Step 4: Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler()
	courseHandler := handlers.NewCourseHandler(st)
	attendanceHandler := handlers.NewAttendanceHandler(st)
	eventHandler := handlers.NewEventHandler(st)
	studyGroupHandler := handlers.NewStudyGroupHandler(st)
	chatHandler := handlers.NewChatHandler(assistant, st)
	dashboardHandler := handlers.NewDashboardHandler(st)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		userHandler,
		courseHandler,
		attendanceHandler,
		eventHandler,
		studyGroupHandler,
		chatHandler,
		dashboardHandler,
		cfg.CORSOrigins,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Campus Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
