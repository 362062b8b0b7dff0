package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMalformedConfigSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := newCommand().Run(context.Background(), []string{"ansuz", "--config", path})
	if err == nil {
		t.Fatal("malformed config should fail the command")
	}
	if err.Error() == "" {
		t.Error("failure must carry a printable message")
	}
}

func TestInvalidConfigSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  icons: emoji\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := newCommand().Run(context.Background(), []string{"ansuz", "--config", path}); err == nil {
		t.Fatal("invalid config should fail the command")
	}
}
