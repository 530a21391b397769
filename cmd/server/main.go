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

	"holiday_tracker/internal/api"
	"holiday_tracker/internal/app/service"
	"holiday_tracker/internal/common/security"
	"holiday_tracker/internal/domain/repository"
	"holiday_tracker/internal/platform/config"
	"holiday_tracker/internal/platform/database"
	"holiday_tracker/internal/platform/session"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	database.Migrate()

	// 4. Initialize Redis (session store)
	session.Connect()
	defer session.Close()
	sessions := session.NewRedisStore(session.RDB)

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	ledgerRepo := repository.NewPgLedgerRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, sessions)
	ledgerService := service.NewLedgerService(ledgerRepo)
	dashboardService := service.NewDashboardService(ledgerService, userRepo)
	userService := service.NewUserService(userRepo)

	// 7. Seed the bootstrap admin account
	if err := authService.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Could not seed admin user: %v", err)
	}

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, ledgerService, dashboardService, userService, sessions)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
