package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/identity"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/handler"
	"github.com/kwanchai/cleanbook/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	IdentityStore *identity.CookieStore
	AuthAPI       *client.AuthAPI
	ServicesAPI   *client.ServicesAPI
	BookingsAPI   *client.BookingsAPI
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	identityMiddleware := middleware.Identity(cfg.IdentityStore)
	flashMiddleware := middleware.Flash()
	requireAuth := middleware.RequireAuth()
	requireAuthor := middleware.RequireAuth(model.RoleAuthor)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(identityMiddleware)
	r.Use(flashMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.ServicesAPI)
	authHandler := handler.NewAuthHandler(cfg.AuthAPI, cfg.IdentityStore)
	bookingsHandler := handler.NewBookingsHandler(cfg.ServicesAPI, cfg.BookingsAPI)
	manageHandler := handler.NewManageHandler(cfg.ServicesAPI, cfg.BookingsAPI)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes
	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/service/{id}", homeHandler.ServiceDetail).Methods(http.MethodGet)
	r.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Routes for any authenticated visitor
	authed := r.NewRoute().Subrouter()
	authed.Use(requireAuth)
	authed.HandleFunc("/book", bookingsHandler.BookPage).Methods(http.MethodGet)
	authed.HandleFunc("/book", bookingsHandler.Book).Methods(http.MethodPost)
	authed.HandleFunc("/my-bookings", bookingsHandler.MyBookings).Methods(http.MethodGet)
	authed.HandleFunc("/my-bookings/{id}/cancel", bookingsHandler.CancelBooking).Methods(http.MethodPost)

	// Author-only administration routes
	author := r.NewRoute().Subrouter()
	author.Use(requireAuthor)
	author.HandleFunc("/manage-services", manageHandler.ManageServices).Methods(http.MethodGet)
	author.HandleFunc("/add-service", manageHandler.AddServicePage).Methods(http.MethodGet)
	author.HandleFunc("/add-service", manageHandler.AddService).Methods(http.MethodPost)
	author.HandleFunc("/edit-service/{id}", manageHandler.EditServicePage).Methods(http.MethodGet)
	author.HandleFunc("/edit-service/{id}", manageHandler.EditService).Methods(http.MethodPost)
	author.HandleFunc("/manage-services/{id}/delete", manageHandler.DeleteService).Methods(http.MethodPost)
	author.HandleFunc("/manage-bookings", manageHandler.ManageBookings).Methods(http.MethodGet)
	author.HandleFunc("/manage-bookings/{id}/status", manageHandler.UpdateBookingStatus).Methods(http.MethodPost)
	author.HandleFunc("/manage-bookings/{id}/delete", manageHandler.DeleteBooking).Methods(http.MethodPost)

	return r
}
