package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/api/handler"
	"github.com/kwanchai/cleanbook/internal/api/middleware"
	"github.com/kwanchai/cleanbook/internal/services/account"
	"github.com/kwanchai/cleanbook/internal/services/booking"
	"github.com/kwanchai/cleanbook/internal/services/catalog"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AccountService *account.Service
	CatalogService *catalog.Service
	BookingService *booking.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService)
	servicesHandler := handler.NewServicesHandler(cfg.CatalogService)
	bookingsHandler := handler.NewBookingsHandler(cfg.BookingService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AccountService)
	authorMiddleware := middleware.RequireAuthor()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Auth routes (no auth required)
	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Public catalogue reads
	r.HandleFunc("/services", servicesHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/services/{id}", servicesHandler.Get).Methods(http.MethodGet)

	// Catalogue writes (Author only)
	serviceWrites := r.PathPrefix("/services").Subrouter()
	serviceWrites.Use(authMiddleware, authorMiddleware)
	serviceWrites.HandleFunc("", servicesHandler.Create).Methods(http.MethodPost)
	serviceWrites.HandleFunc("/{id}", servicesHandler.Update).Methods(http.MethodPut)
	serviceWrites.HandleFunc("/{id}", servicesHandler.Delete).Methods(http.MethodDelete)

	// Booking routes (all require auth; listing everything and changing
	// status are Author operations)
	bookings := r.PathPrefix("/bookings").Subrouter()
	bookings.Use(authMiddleware)
	bookings.HandleFunc("", bookingsHandler.Create).Methods(http.MethodPost)
	bookings.Handle("", authorMiddleware(http.HandlerFunc(bookingsHandler.List))).Methods(http.MethodGet)
	bookings.HandleFunc("/user/{userId}", bookingsHandler.ListByUser).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", bookingsHandler.Get).Methods(http.MethodGet)
	bookings.Handle("/{id}", authorMiddleware(http.HandlerFunc(bookingsHandler.Update))).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}", bookingsHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
