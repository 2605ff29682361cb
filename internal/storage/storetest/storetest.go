// Package storetest holds behavioural tests shared by every storage.Store backend.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

// Run exercises a store implementation. newStore must return an empty store;
// it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("Routes", func(t *testing.T) { testRoutes(t, newStore(t)) })
	t.Run("Baseline", func(t *testing.T) { testBaseline(t, newStore(t)) })
	t.Run("Compliance", func(t *testing.T) { testCompliance(t, newStore(t)) })
	t.Run("Banking", func(t *testing.T) { testBanking(t, newStore(t)) })
	t.Run("Ledger", func(t *testing.T) { testLedger(t, newStore(t)) })
	t.Run("LedgerConcurrent", func(t *testing.T) { testLedgerConcurrent(t, newStore(t)) })
	t.Run("BaselineConcurrent", func(t *testing.T) { testBaselineConcurrent(t, newStore(t)) })
	t.Run("Pools", func(t *testing.T) { testPools(t, newStore(t)) })
	t.Run("Seed", func(t *testing.T) { testSeed(t, newStore(t)) })
}

func testRoutes(t *testing.T, store storage.Store) {
	ctx := context.Background()

	route := &models.Route{
		RouteID: "R100", VesselType: "Tanker", FuelType: "MGO", Year: 2025,
		GHGIntensity: 90.1, FuelConsumption: 4000, Distance: 9000, TotalEmissions: 3100,
	}
	require.NoError(t, store.CreateRoute(ctx, route))
	assert.NotEmpty(t, route.ID, "expected route ID to be generated")

	got, err := store.GetRoute(ctx, route.ID)
	require.NoError(t, err)
	assert.Equal(t, route, got)

	found, err := store.FindRoute(ctx, "R100", 2025)
	require.NoError(t, err)
	assert.Equal(t, route.ID, found.ID)

	_, err = store.FindRoute(ctx, "R100", 2024)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)

	_, err = store.GetRoute(ctx, "nonexistent-id")
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)

	require.NoError(t, store.CreateRoute(ctx, &models.Route{RouteID: "R050", VesselType: "RoRo", FuelType: "HFO", Year: 2025, GHGIntensity: 88}))
	routes, err := store.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "R050", routes[0].RouteID)
}

func testBaseline(t *testing.T, store storage.Store) {
	ctx := context.Background()

	_, err := store.GetBaseline(ctx)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)

	a := &models.Route{RouteID: "A", VesselType: "Container", FuelType: "HFO", Year: 2025, GHGIntensity: 91}
	b := &models.Route{RouteID: "B", VesselType: "Container", FuelType: "LNG", Year: 2025, GHGIntensity: 88, IsBaseline: true}
	require.NoError(t, store.CreateRoute(ctx, a))
	require.NoError(t, store.CreateRoute(ctx, b))

	baseline, err := store.GetBaseline(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, baseline.ID)

	require.NoError(t, store.SetBaseline(ctx, a.ID))
	baseline, err = store.GetBaseline(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, baseline.ID)

	routes, err := store.ListRoutes(ctx)
	require.NoError(t, err)
	count := 0
	for _, r := range routes {
		if r.IsBaseline {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one baseline")

	// Unknown route leaves the existing baseline untouched.
	err = store.SetBaseline(ctx, "nonexistent-id")
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)
	baseline, err = store.GetBaseline(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, baseline.ID)
}

func testCompliance(t *testing.T, store storage.Store) {
	ctx := context.Background()

	_, err := store.GetCompliance(ctx, "S1", 2025)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)

	first := models.NewComplianceBalance("S1", 2025, -100)
	require.NoError(t, store.SaveCompliance(ctx, first))

	second := models.NewComplianceBalance("S1", 2025, 250.5)
	require.NoError(t, store.SaveCompliance(ctx, second))

	require.NoError(t, store.SaveCompliance(ctx, models.NewComplianceBalance("S1", 2024, 7)))

	got, err := store.GetCompliance(ctx, "S1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 250.5, got.CB, "latest record wins")
	assert.Equal(t, models.StatusSurplus, got.Status)
	assert.WithinDuration(t, second.CreatedAt, got.CreatedAt, time.Millisecond)

	got, err = store.GetCompliance(ctx, "S1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.CB)
}

func testBanking(t *testing.T, store storage.Store) {
	ctx := context.Background()

	entries, err := store.GetBankEntries(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entry := &models.BankEntry{ShipID: "S1", Year: 2024, Amount: 500}
	require.NoError(t, store.SaveBankEntry(ctx, entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	require.NoError(t, store.SaveBankEntry(ctx, &models.BankEntry{ShipID: "S2", Year: 2024, Amount: 10}))

	assert.Error(t, store.SaveBankEntry(ctx, &models.BankEntry{ShipID: "S1", Year: 2024, Amount: 0}),
		"zero amounts must never be banked")
	assert.Error(t, store.SaveBankEntry(ctx, &models.BankEntry{ShipID: "S1", Year: 2024, Amount: -5}),
		"deficits must never be banked")

	entries, err = store.GetBankEntries(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, 500.0, entries[0].Amount)

	app := &models.BankApplication{ShipID: "S1", Year: 2025, Amount: 200}
	require.NoError(t, store.SaveBankApplication(ctx, app))
	assert.Error(t, store.SaveBankApplication(ctx, &models.BankApplication{ShipID: "S1", Year: 2025}))

	apps, err := store.GetBankApplications(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, 200.0, apps[0].Amount)
	assert.Equal(t, 2025, apps[0].Year)
}

func testLedger(t *testing.T, store storage.Store) {
	ctx := context.Background()

	require.NoError(t, store.SaveBankEntry(ctx, &models.BankEntry{ShipID: "S1", Year: 2024, Amount: 40}))
	require.NoError(t, store.SaveBankEntry(ctx, &models.BankEntry{ShipID: "S2", Year: 2024, Amount: 99}))

	t.Run("sees only the ship's ledger", func(t *testing.T) {
		var seen *storage.Ledger
		err := store.UpdateLedger(ctx, "S1", func(l *storage.Ledger) (*storage.LedgerAppend, error) {
			seen = l
			return nil, nil
		})
		require.NoError(t, err)
		require.Len(t, seen.Entries, 1)
		assert.Equal(t, 40.0, seen.Entries[0].Amount)
		assert.Empty(t, seen.Applications)
	})

	t.Run("callback error is returned and nothing is written", func(t *testing.T) {
		errStop := errors.New("stop")
		err := store.UpdateLedger(ctx, "S1", func(*storage.Ledger) (*storage.LedgerAppend, error) {
			return &storage.LedgerAppend{Entry: &models.BankEntry{ShipID: "S1", Year: 2025, Amount: 1}}, errStop
		})
		assert.ErrorIs(t, err, errStop)

		entries, err := store.GetBankEntries(ctx, "S1")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("appends entry and application together", func(t *testing.T) {
		entry := &models.BankEntry{ShipID: "S1", Year: 2025, Amount: 15}
		app := &models.BankApplication{ShipID: "S1", Year: 2026, Amount: 10}
		err := store.UpdateLedger(ctx, "S1", func(*storage.Ledger) (*storage.LedgerAppend, error) {
			return &storage.LedgerAppend{Entry: entry, Application: app}, nil
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, app.ID)

		entries, err := store.GetBankEntries(ctx, "S1")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		apps, err := store.GetBankApplications(ctx, "S1")
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("failed insert rolls back the whole update", func(t *testing.T) {
		err := store.UpdateLedger(ctx, "S2", func(*storage.Ledger) (*storage.LedgerAppend, error) {
			return &storage.LedgerAppend{
				Entry:       &models.BankEntry{ShipID: "S2", Year: 2025, Amount: 5},
				Application: &models.BankApplication{ShipID: "S2", Year: 2025, Amount: -1},
			}, nil
		})
		assert.Error(t, err)

		entries, err := store.GetBankEntries(ctx, "S2")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

// testLedgerConcurrent has many callers top the ledger up to a fixed total.
// Each reads what is banked and appends the difference, so only serialized
// updates end with exactly that total.
func testLedgerConcurrent(t *testing.T, store storage.Store) {
	ctx := context.Background()
	const target = 100.0

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.UpdateLedger(ctx, "SX", func(l *storage.Ledger) (*storage.LedgerAppend, error) {
				var banked float64
				for _, e := range l.Entries {
					banked += e.Amount
				}
				if banked >= target {
					return nil, nil
				}
				return &storage.LedgerAppend{Entry: &models.BankEntry{ShipID: "SX", Year: 2025, Amount: target - banked}}, nil
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := store.GetBankEntries(ctx, "SX")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, target, entries[0].Amount)
}

func testBaselineConcurrent(t *testing.T, store storage.Store) {
	ctx := context.Background()

	ids := make([]string, 6)
	for i := range ids {
		route := &models.Route{RouteID: fmt.Sprintf("C%d", i), VesselType: "Container", FuelType: "HFO", Year: 2025, GHGIntensity: 90}
		require.NoError(t, store.CreateRoute(ctx, route))
		ids[i] = route.ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids)*3)
	for round := 0; round < 3; round++ {
		for _, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- store.SetBaseline(ctx, id)
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	routes, err := store.ListRoutes(ctx)
	require.NoError(t, err)
	count := 0
	for _, r := range routes {
		if r.IsBaseline {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one baseline")
}

func testPools(t *testing.T, store storage.Store) {
	ctx := context.Background()

	pools, err := store.FindAllPools(ctx, 2025)
	require.NoError(t, err)
	assert.Empty(t, pools)

	pool := &models.Pool{
		Year: 2025,
		Members: []models.PoolMember{
			{ShipID: "S1", CBBefore: 100, CBAfter: 10},
			{ShipID: "S2", CBBefore: -40, CBAfter: 0},
			{ShipID: "S3", CBBefore: -50, CBAfter: 0},
		},
	}
	require.NoError(t, store.SavePool(ctx, pool))
	assert.NotEmpty(t, pool.ID)
	assert.False(t, pool.CreatedAt.IsZero())

	require.NoError(t, store.SavePool(ctx, &models.Pool{
		Year:    2024,
		Members: []models.PoolMember{{ShipID: "S9", CBBefore: 1, CBAfter: 1}},
	}))

	pools, err = store.FindAllPools(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, pool.ID, pools[0].ID)
	assert.Equal(t, pool.Members, pools[0].Members, "members keep allocation order")

	// A member that breaks a constraint rolls back the whole pool.
	broken := &models.Pool{
		Year: 2025,
		Members: []models.PoolMember{
			{ShipID: "S1", CBBefore: 5, CBAfter: 5},
			{ShipID: "S1", CBBefore: 5, CBAfter: 5},
		},
	}
	assert.Error(t, store.SavePool(ctx, broken))

	pools, err = store.FindAllPools(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, pools, 1, "partial pool must not be visible")
}

func testSeed(t *testing.T, store storage.Store) {
	ctx := context.Background()

	n, err := storage.Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, len(storage.SeedRoutes()), n)

	n, err = storage.Seed(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding a populated store is a no-op")

	baseline, err := store.GetBaseline(ctx)
	require.NoError(t, err)
	assert.Equal(t, "R004", baseline.RouteID)
}
