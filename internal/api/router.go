package api

import (
	"net/http"
	"time"

	"holiday_tracker/internal/api/handler"
	"holiday_tracker/internal/api/middleware"
	"holiday_tracker/internal/app/service"
	"holiday_tracker/internal/common/security"
	"holiday_tracker/internal/platform/session"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	ledgerService *service.LedgerService,
	dashboardService *service.DashboardService,
	userService *service.UserService,
	sessions session.Store,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Token verification. The Verifier reads the token from the Authorization
	// header or the "jwt" cookie; the Authenticator below additionally
	// requires the referenced session to still be live.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(authService)

		// Login is the only action reachable without a session.
		v1.Route("/auth", func(auth chi.Router) {
			authHandler.RegisterPublicRoutes(auth)

			auth.Group(func(protected chi.Router) {
				protected.Use(middleware.Authenticator(sessions))
				authHandler.RegisterProtectedRoutes(protected)
			})
		})

		v1.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator(sessions))

			dashboardHandler := handler.NewDashboardHandler(dashboardService)
			protected.Route("/dashboard", dashboardHandler.RegisterRoutes)

			ledgerHandler := handler.NewLedgerHandler(ledgerService)
			ledgerHandler.RegisterRoutes(protected)

			userHandler := handler.NewUserHandler(userService)
			protected.Route("/users", userHandler.RegisterRoutes)
		})
	})

	return r
}
