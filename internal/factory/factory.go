package factory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kwanchai/cleanbook/internal/api"
	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/dependencies/clock"
	"github.com/kwanchai/cleanbook/internal/identity"
	"github.com/kwanchai/cleanbook/internal/services/account"
	"github.com/kwanchai/cleanbook/internal/services/booking"
	"github.com/kwanchai/cleanbook/internal/services/catalog"
	"github.com/kwanchai/cleanbook/internal/storage"
	"github.com/kwanchai/cleanbook/internal/storage/memory"
	redisstorage "github.com/kwanchai/cleanbook/internal/storage/redis"
	"github.com/kwanchai/cleanbook/internal/web"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Embedded backend (nil when running against a remote API)
	AccountService *account.Service
	CatalogService *catalog.Service
	BookingService *booking.Service
	APIRouter      http.Handler

	// Outbound SDK
	Client      *client.Client
	AuthAPI     *client.AuthAPI
	ServicesAPI *client.ServicesAPI
	BookingsAPI *client.BookingsAPI

	// Web frontend
	IdentityStore *identity.CookieStore
	WebRouter     http.Handler
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the embedded backend's storage ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AccountConfig holds configuration for the account service (optional)
	// If zero value, defaults to account.DefaultConfig()
	AccountConfig account.Config
	// APIBaseURL points the frontend at an external backend over the
	// network. When empty the embedded backend serves the API in-process.
	APIBaseURL string
	// SecureCookies marks the identity cookie Secure (set when serving HTTPS)
	SecureCookies bool
	// StaticDir is the path to static web assets (optional)
	StaticDir string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	app := &App{Clock: clk}

	if cfg.APIBaseURL == "" {
		// Embedded backend
		var store storage.Storage
		storageType := cfg.StorageType
		if storageType == "" {
			storageType = StorageTypeMemory
		}

		switch storageType {
		case StorageTypeMemory:
			store = memory.New()
		case StorageTypeRedis:
			if cfg.RedisConfig == nil {
				return nil, errors.New("RedisConfig required when StorageType is redis")
			}
			redisStore, err := redisstorage.New(*cfg.RedisConfig)
			if err != nil {
				return nil, err
			}
			store = redisStore
		default:
			return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
		}

		accountCfg := cfg.AccountConfig
		if accountCfg.TokenDuration == 0 {
			accountCfg = account.DefaultConfig()
		}

		app.Storage = store
		app.AccountService = account.New(store, clk, accountCfg)
		app.CatalogService = catalog.New(store, logger)
		app.BookingService = booking.New(store, clk, logger)
		app.APIRouter = api.NewRouter(api.RouterConfig{
			Logger:         logger,
			AccountService: app.AccountService,
			CatalogService: app.CatalogService,
			BookingService: app.BookingService,
		})
	}

	app.wireClient(cfg, clk)
	app.wireWeb(cfg, logger, clk)

	return app, nil
}

// wireClient builds the SDK, routing through the embedded backend when
// no remote base URL is configured
func (a *App) wireClient(cfg Config, clk clock.Clock) {
	var base http.RoundTripper
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		base = client.HandlerTransport{Handler: a.APIRouter}
		baseURL = "http://backend"
	}

	httpClient := &http.Client{
		Transport: &client.Transport{
			Base:   base,
			Source: client.ContextSource(),
		},
	}

	a.Client = client.New(baseURL, httpClient)
	a.AuthAPI = client.NewAuthAPI(a.Client)
	a.ServicesAPI = client.NewServicesAPI(a.Client)
	a.BookingsAPI = client.NewBookingsAPI(a.Client, clk)
}

// wireWeb builds the identity store and web router
func (a *App) wireWeb(cfg Config, logger *slog.Logger, clk clock.Clock) {
	a.IdentityStore = identity.NewCookieStore(clk, cfg.SecureCookies)
	a.WebRouter = web.NewRouter(web.RouterConfig{
		Logger:        logger,
		IdentityStore: a.IdentityStore,
		AuthAPI:       a.AuthAPI,
		ServicesAPI:   a.ServicesAPI,
		BookingsAPI:   a.BookingsAPI,
		StaticDir:     cfg.StaticDir,
	})
}
