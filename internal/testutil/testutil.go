// Package testutil provides shared helpers for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/store"
)

// TestStore opens a fresh SQLite store in a temporary directory and closes it
// when the test finishes.
func TestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
