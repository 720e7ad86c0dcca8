package factory

import (
	"github.com/superapp/accounts/internal/storage/memory"
	"github.com/superapp/accounts/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MemoryStorage exposes the backing store for blob-level assertions
	MemoryStorage *memory.Storage
}

// NewTestApp creates an App backed by in-memory storage for testing
func NewTestApp() *TestApp {
	store := memory.New()
	app := newWithDependencies(store, testutil.NopLogger())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
	}
}
