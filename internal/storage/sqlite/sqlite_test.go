package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
	"github.com/mmynk/fueleu/internal/storage/storetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestNewCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "fueleu.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Expected database file at %s: %v", dbPath, err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2025, 42)); err != nil {
		t.Fatalf("SaveCompliance failed: %v", err)
	}
	store.Close()

	// Reopen: migrations run again and data survives.
	store, err = New(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	cb, err := store.GetCompliance(ctx, "S1", 2025)
	if err != nil {
		t.Fatalf("GetCompliance failed: %v", err)
	}
	if cb.CB != 42 {
		t.Errorf("CB mismatch: got %f, want 42", cb.CB)
	}
}

func TestSingleBaselineEnforcedBySchema(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateRoute(ctx, &models.Route{RouteID: "A", Year: 2025, IsBaseline: true}); err != nil {
		t.Fatalf("CreateRoute failed: %v", err)
	}
	if err := store.CreateRoute(ctx, &models.Route{RouteID: "B", Year: 2025, IsBaseline: true}); err == nil {
		t.Error("Expected second baseline to be rejected")
	}
}
