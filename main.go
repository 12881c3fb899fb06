package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"homestay-backend/config"
	"homestay-backend/controllers"
	"homestay-backend/routes"
	"homestay-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Session secret signs the login cookie — refuse to start without it.
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ ERROR: SESSION_SECRET environment variable is not set.")
	}

	oauthCfg := services.OAuthConfig{
		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		AuthURL:      os.Getenv("OAUTH_AUTH_URL"),
		TokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
		UserInfoURL:  os.Getenv("OAUTH_USERINFO_URL"),
		CallbackURL:  os.Getenv("OAUTH_CALLBACK_URL"),
	}
	if oauthCfg.ClientID == "" || oauthCfg.AuthURL == "" {
		log.Println("⚠️  OAuth provider not fully configured; logins will fail until OAUTH_* variables are set")
	}

	// Connect database
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	userService := services.NewUserService(db)
	homestayService := services.NewHomestayService(db)
	webhookService := services.NewWebhookService(os.Getenv("WEBHOOK_URL"))
	oauthService := services.NewOAuthService(oauthCfg)

	// Initialize controllers
	authController := controllers.NewAuthController(userService, oauthService, sessionSecret)
	homestayController := controllers.NewHomestayController(userService, homestayService, webhookService)

	// Build router
	router := routes.SetupRouter(authController, homestayController, sessionSecret)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// Let in-flight webhook notifications finish before exiting.
	webhookService.Wait()

	log.Println("✅ Server stopped gracefully")
}
