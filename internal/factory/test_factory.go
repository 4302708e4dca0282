package factory

import (
	"time"

	"github.com/kwanchai/cleanbook/internal/api"
	"github.com/kwanchai/cleanbook/internal/dependencies/mocks"
	"github.com/kwanchai/cleanbook/internal/services/account"
	"github.com/kwanchai/cleanbook/internal/services/booking"
	"github.com/kwanchai/cleanbook/internal/services/catalog"
	"github.com/kwanchai/cleanbook/internal/storage/memory"
	"github.com/kwanchai/cleanbook/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time for expiry tests
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock
// and in-memory storage
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()

	app := &App{
		Storage:        store,
		Clock:          mockClock,
		AccountService: account.New(store, mockClock, account.DefaultConfig()),
		CatalogService: catalog.New(store, logger),
		BookingService: booking.New(store, mockClock, logger),
	}
	app.APIRouter = api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AccountService: app.AccountService,
		CatalogService: app.CatalogService,
		BookingService: app.BookingService,
	})

	app.wireClient(Config{}, mockClock)
	app.wireWeb(Config{}, logger, mockClock)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
