package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fueleu/internal/config"
	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
	"github.com/mmynk/fueleu/internal/storage/sqlite"
)

// setupStore creates a seeded SQLite store in a temp directory.
func setupStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := storage.Seed(context.Background(), store); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return store
}

func setupComplianceService(t *testing.T) (*ComplianceService, *sqlite.SQLiteStore) {
	t.Helper()
	store := setupStore(t)
	return NewComplianceService(store, store, config.DefaultRegime(), nil), store
}

func TestCalculateCompliance(t *testing.T) {
	svc, store := setupComplianceService(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		shipID     string
		year       int
		wantCB     float64
		wantStatus models.ComplianceStatus
		wantErr    error
	}{
		{
			name:   "deficit route",
			shipID: "R001", year: 2024,
			// (89.3368 - 91.0) × 5000 × 41000
			wantCB: -340_956_000, wantStatus: models.StatusDeficit,
		},
		{
			name:   "surplus route",
			shipID: "R002", year: 2024,
			// (89.3368 - 88.0) × 4800 × 41000
			wantCB: 263_082_240, wantStatus: models.StatusSurplus,
		},
		{
			name:   "surplus on baseline route",
			shipID: "R004", year: 2025,
			// (89.3368 - 89.2) × 4900 × 41000
			wantCB: 27_483_120, wantStatus: models.StatusSurplus,
		},
		{name: "route sailed in another year", shipID: "R001", year: 2025, wantErr: storage.ErrNotFound},
		{name: "unknown ship", shipID: "NOPE", year: 2024, wantErr: storage.ErrNotFound},
		{name: "missing ship id", shipID: "", year: 2024, wantErr: ErrInvalidInput},
		{name: "bad year", shipID: "R001", year: -1, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := svc.CalculateCompliance(ctx, tt.shipID, tt.year)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InEpsilon(t, tt.wantCB, cb.CB, 1e-9)
			assert.Equal(t, tt.wantStatus, cb.Status)

			stored, err := store.GetCompliance(ctx, tt.shipID, tt.year)
			require.NoError(t, err)
			assert.Equal(t, cb.CB, stored.CB, "calculated balance is persisted")
		})
	}
}

func TestGetCompliance(t *testing.T) {
	svc, _ := setupComplianceService(t)
	ctx := context.Background()

	_, err := svc.GetCompliance(ctx, "R002", 2024)
	var missing *MissingComplianceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"R002"}, missing.ShipIDs)

	calculated, err := svc.CalculateCompliance(ctx, "R002", 2024)
	require.NoError(t, err)

	got, err := svc.GetCompliance(ctx, "R002", 2024)
	require.NoError(t, err)
	assert.Equal(t, calculated.CB, got.CB)
}

func TestBankSurplus(t *testing.T) {
	ctx := context.Background()

	t.Run("banks full surplus once", func(t *testing.T) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 1000)))

		entry, err := svc.BankSurplus(ctx, "S1", 2024)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, entry.Amount)
		assert.NotEmpty(t, entry.ID)

		_, err = svc.BankSurplus(ctx, "S1", 2024)
		assert.ErrorIs(t, err, ErrNothingToBank, "surplus cannot be banked twice")

		entries, err := svc.ListBankEntries(ctx, "S1")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("recalculated higher surplus banks the difference", func(t *testing.T) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 1000)))
		_, err := svc.BankSurplus(ctx, "S1", 2024)
		require.NoError(t, err)

		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 1500)))
		entry, err := svc.BankSurplus(ctx, "S1", 2024)
		require.NoError(t, err)
		assert.Equal(t, 500.0, entry.Amount)
	})

	t.Run("deficit cannot be banked", func(t *testing.T) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, -10)))

		_, err := svc.BankSurplus(ctx, "S1", 2024)
		assert.ErrorIs(t, err, ErrNothingToBank)
	})

	t.Run("zero balance cannot be banked", func(t *testing.T) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 0)))

		_, err := svc.BankSurplus(ctx, "S1", 2024)
		assert.ErrorIs(t, err, ErrNothingToBank)
	})

	t.Run("no compliance record", func(t *testing.T) {
		svc, _ := setupComplianceService(t)

		_, err := svc.BankSurplus(ctx, "S1", 2024)
		var missing *MissingComplianceError
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("ship id required for listing", func(t *testing.T) {
		svc, _ := setupComplianceService(t)

		_, err := svc.ListBankEntries(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestApplyBanked(t *testing.T) {
	ctx := context.Background()

	// S1 banked 300 in 2024 and runs a 500 deficit in 2025.
	setup := func(t *testing.T) (*ComplianceService, *sqlite.SQLiteStore) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 300)))
		_, err := svc.BankSurplus(ctx, "S1", 2024)
		require.NoError(t, err)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2025, -500)))
		return svc, store
	}

	t.Run("applies everything available by default", func(t *testing.T) {
		svc, _ := setup(t)

		app, err := svc.ApplyBanked(ctx, "S1", 2025, nil)
		require.NoError(t, err)
		assert.Equal(t, 300.0, app.Amount)

		adjusted, err := svc.GetAdjustedCompliance(ctx, "S1", 2025)
		require.NoError(t, err)
		assert.Equal(t, -500.0, adjusted.CBBefore)
		assert.Equal(t, 300.0, adjusted.Applied)
		assert.Equal(t, -200.0, adjusted.CBAfter)
		assert.Equal(t, models.StatusDeficit, adjusted.Status)

		_, err = svc.ApplyBanked(ctx, "S1", 2025, nil)
		assert.ErrorIs(t, err, ErrNoBankedSurplus, "bank is drained")
	})

	t.Run("partial amount", func(t *testing.T) {
		svc, _ := setup(t)
		amount := 120.0

		app, err := svc.ApplyBanked(ctx, "S1", 2025, &amount)
		require.NoError(t, err)
		assert.Equal(t, 120.0, app.Amount)

		app, err = svc.ApplyBanked(ctx, "S1", 2025, nil)
		require.NoError(t, err)
		assert.Equal(t, 180.0, app.Amount, "remaining bank")
	})

	t.Run("never applies more than the deficit", func(t *testing.T) {
		svc, store := setup(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2025, -50)))
		amount := 1000.0

		app, err := svc.ApplyBanked(ctx, "S1", 2025, &amount)
		require.NoError(t, err)
		assert.Equal(t, 50.0, app.Amount)

		adjusted, err := svc.GetAdjustedCompliance(ctx, "S1", 2025)
		require.NoError(t, err)
		assert.Equal(t, 0.0, adjusted.CBAfter)
		assert.Equal(t, models.StatusSurplus, adjusted.Status)

		_, err = svc.ApplyBanked(ctx, "S1", 2025, nil)
		assert.ErrorIs(t, err, ErrNotInDeficit)
	})

	t.Run("same-year surplus is not available", func(t *testing.T) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveBankEntry(ctx, &models.BankEntry{ShipID: "S2", Year: 2025, Amount: 100}))
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S2", 2025, -10)))

		_, err := svc.ApplyBanked(ctx, "S2", 2025, nil)
		assert.ErrorIs(t, err, ErrNoBankedSurplus)
	})

	t.Run("surplus ship is not in deficit", func(t *testing.T) {
		svc, store := setup(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2025, 10)))

		_, err := svc.ApplyBanked(ctx, "S1", 2025, nil)
		assert.ErrorIs(t, err, ErrNotInDeficit)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc, _ := setup(t)
		amount := 0.0

		_, err := svc.ApplyBanked(ctx, "S1", 2025, &amount)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no compliance record", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.ApplyBanked(ctx, "S1", 2030, nil)
		var missing *MissingComplianceError
		assert.True(t, errors.As(err, &missing))
	})
}

func TestBankingParallelCallers(t *testing.T) {
	ctx := context.Background()
	const callers = 20

	t.Run("surplus is banked once", func(t *testing.T) {
		svc, store := setupComplianceService(t)

		for round := 0; round < 10; round++ {
			shipID := fmt.Sprintf("SX%d", round)
			require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance(shipID, 2025, 100)))

			var wg sync.WaitGroup
			errs := make([]error, callers)
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, errs[i] = svc.BankSurplus(ctx, shipID, 2025)
				}()
			}
			wg.Wait()

			succeeded := 0
			for _, err := range errs {
				if err == nil {
					succeeded++
					continue
				}
				assert.ErrorIs(t, err, ErrNothingToBank)
			}
			assert.Equal(t, 1, succeeded, "round %d", round)

			entries, err := store.GetBankEntries(ctx, shipID)
			require.NoError(t, err)
			require.Len(t, entries, 1, "round %d", round)
			assert.Equal(t, 100.0, entries[0].Amount)
		}
	})

	t.Run("applications never overdraw the bank", func(t *testing.T) {
		svc, store := setupComplianceService(t)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 300)))
		_, err := svc.BankSurplus(ctx, "S1", 2024)
		require.NoError(t, err)
		require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2025, -500)))

		amount := 40.0
		var wg sync.WaitGroup
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = svc.ApplyBanked(ctx, "S1", 2025, &amount)
			}()
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, ErrNoBankedSurplus)
			}
		}

		adjusted, err := svc.GetAdjustedCompliance(ctx, "S1", 2025)
		require.NoError(t, err)
		assert.Equal(t, 300.0, adjusted.Applied)
		assert.Equal(t, -200.0, adjusted.CBAfter)
	})
}

func TestGetAdjustedComplianceWithoutApplications(t *testing.T) {
	svc, store := setupComplianceService(t)
	ctx := context.Background()
	require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2025, 42)))

	adjusted, err := svc.GetAdjustedCompliance(ctx, "S1", 2025)
	require.NoError(t, err)
	assert.Equal(t, &models.AdjustedCompliance{
		ShipID: "S1", Year: 2025, CBBefore: 42, Applied: 0, CBAfter: 42, Status: models.StatusSurplus,
	}, adjusted)
}
