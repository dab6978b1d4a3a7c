package factory

import (
	"time"

	"coopbingo/internal/dependencies/mocks"
	"coopbingo/internal/services/game"
	"coopbingo/internal/services/session"
	"coopbingo/internal/storage/memory"
	"coopbingo/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(game.DefaultConfig())
}

// NewTestAppWithConfig creates a TestApp with a custom engine configuration
func NewTestAppWithConfig(engineCfg game.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, engineCfg, session.Config{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
