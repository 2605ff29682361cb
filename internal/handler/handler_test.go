package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fueleu/internal/calculator"
	"github.com/mmynk/fueleu/internal/config"
	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/service"
	"github.com/mmynk/fueleu/internal/storage"
	"github.com/mmynk/fueleu/internal/storage/sqlite"
)

type testServer struct {
	*httptest.Server
	store *sqlite.SQLiteStore
}

// setupTestServer serves the handler over a seeded SQLite store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = storage.Seed(context.Background(), store)
	require.NoError(t, err)

	regime := config.DefaultRegime()
	pools, err := service.NewPoolingService(store, store)
	require.NoError(t, err)

	h := New(
		service.NewRouteService(store, regime),
		service.NewComplianceService(store, store, regime, nil),
		pools,
	)

	r := chi.NewRouter()
	h.Register(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testServer{Server: server, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), "body: %s", data)
	return v
}

func (s *testServer) saveCompliance(t *testing.T, shipID string, year int, cb float64) {
	t.Helper()
	require.NoError(t, s.store.SaveCompliance(context.Background(), models.NewComplianceBalance(shipID, year, cb)))
}

func TestRoutesEndpoints(t *testing.T) {
	s := setupTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/routes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	routes := decode[[]models.Route](t, body)
	require.Len(t, routes, 5)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, body = s.do(t, http.MethodGet, "/routes/comparison", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comparisons := decode[[]models.RouteComparison](t, body)
	assert.Len(t, comparisons, 5)

	resp, _ = s.do(t, http.MethodPost, fmt.Sprintf("/routes/%s/baseline", routes[0].ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/routes/nonexistent-id/baseline", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode[errorResponse](t, body).Error, "not found")
}

func TestComplianceEndpoints(t *testing.T) {
	s := setupTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/compliance/cb?shipId=R002&year=2024", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cb := decode[models.ComplianceBalance](t, body)
	assert.InEpsilon(t, 263_082_240, cb.CB, 1e-9)
	assert.Equal(t, models.StatusSurplus, cb.Status)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"missing ship", "/compliance/cb?year=2024", http.StatusBadRequest},
		{"missing year", "/compliance/cb?shipId=R002", http.StatusBadRequest},
		{"non-numeric year", "/compliance/cb?shipId=R002&year=soon", http.StatusBadRequest},
		{"no route for year", "/compliance/cb?shipId=R002&year=2030", http.StatusNotFound},
		{"adjusted without record", "/compliance/adjusted-cb?shipId=R003&year=2024", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := s.do(t, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestBankingEndpoints(t *testing.T) {
	s := setupTestServer(t)
	s.saveCompliance(t, "S9", 2024, 100)
	s.saveCompliance(t, "S9", 2025, -30)

	resp, body := s.do(t, http.MethodPost, "/banking/bank", map[string]any{"shipId": "S9", "year": 2024})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", body)
	entry := decode[models.BankEntry](t, body)
	assert.Equal(t, 100.0, entry.Amount)

	resp, _ = s.do(t, http.MethodPost, "/banking/bank", map[string]any{"shipId": "S9", "year": 2024})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/banking/bank", map[string]any{"shipId": "S9", "year": 2025})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "deficits cannot be banked")

	resp, body = s.do(t, http.MethodGet, "/banking/records?shipId=S9", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.BankEntry](t, body), 1)

	resp, body = s.do(t, http.MethodPost, "/banking/apply", map[string]any{"shipId": "S9", "year": 2025})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", body)
	assert.Equal(t, 30.0, decode[models.BankApplication](t, body).Amount)

	resp, body = s.do(t, http.MethodGet, "/compliance/adjusted-cb?shipId=S9&year=2025", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	adjusted := decode[models.AdjustedCompliance](t, body)
	assert.Equal(t, -30.0, adjusted.CBBefore)
	assert.Equal(t, 30.0, adjusted.Applied)
	assert.Equal(t, 0.0, adjusted.CBAfter)

	resp, _ = s.do(t, http.MethodPost, "/banking/apply", map[string]any{"shipId": "S9", "year": 2025})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "no deficit left")

	resp, _ = s.do(t, http.MethodPost, "/banking/apply", map[string]any{"shipId": "S9", "year": 2025, "amount": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/banking/records", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPoolEndpoints(t *testing.T) {
	s := setupTestServer(t)
	s.saveCompliance(t, "S1", 2025, 100)
	s.saveCompliance(t, "S2", 2025, -40)
	s.saveCompliance(t, "S3", 2025, -50)
	s.saveCompliance(t, "S4", 2025, -200)

	t.Run("create pool", func(t *testing.T) {
		resp, body := s.do(t, http.MethodPost, "/pools", map[string]any{"shipIds": []string{"S1", "S2", "S3"}, "year": 2025})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", body)

		pool := decode[models.Pool](t, body)
		assert.NotEmpty(t, pool.ID)
		assert.Equal(t, []models.PoolMember{
			{ShipID: "S1", CBBefore: 100, CBAfter: 10},
			{ShipID: "S2", CBBefore: -40, CBAfter: 0},
			{ShipID: "S3", CBBefore: -50, CBAfter: 0},
		}, pool.Members)
	})

	t.Run("infeasible pool", func(t *testing.T) {
		resp, body := s.do(t, http.MethodPost, "/pools", map[string]any{"shipIds": []string{"S1", "S4"}, "year": 2025})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, decode[errorResponse](t, body).Error, "negative")
	})

	t.Run("missing compliance", func(t *testing.T) {
		resp, body := s.do(t, http.MethodPost, "/pools", map[string]any{"shipIds": []string{"S1", "GHOST"}, "year": 2025})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, []string{"GHOST"}, decode[errorResponse](t, body).ShipIDs)
	})

	t.Run("duplicate ship", func(t *testing.T) {
		resp, _ := s.do(t, http.MethodPost, "/pools", map[string]any{"shipIds": []string{"S1", "S1"}, "year": 2025})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := s.do(t, http.MethodPost, "/pools", "{not json")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("misspelled field is rejected", func(t *testing.T) {
		resp, body := s.do(t, http.MethodPost, "/pools", `{"shipIDs":["S1","S2"],"year":2025}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[errorResponse](t, body).Error, `unknown field "shipIDs"`)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		resp, body := s.do(t, http.MethodPost, "/pools", `{"shipIds":["S1","S2","S3"],"year":2025} garbage`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[errorResponse](t, body).Error, "single JSON object")
	})

	t.Run("second object is rejected", func(t *testing.T) {
		resp, _ := s.do(t, http.MethodPost, "/banking/bank", `{"shipId":"S1","year":2025}{"shipId":"S1","year":2025}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("failed attempts persist nothing", func(t *testing.T) {
		resp, body := s.do(t, http.MethodGet, "/pools?year=2025", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]models.Pool](t, body), 1)

		resp, body = s.do(t, http.MethodGet, "/pools?year=2024", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]\n", string(body))
	})

	t.Run("list requires year", func(t *testing.T) {
		resp, _ := s.do(t, http.MethodGet, "/pools", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: bad", service.ErrInvalidInput), http.StatusBadRequest},
		{"missing compliance", &service.MissingComplianceError{Year: 2025, ShipIDs: []string{"S1"}}, http.StatusNotFound},
		{"not found", fmt.Errorf("route: %w", storage.ErrNotFound), http.StatusNotFound},
		{"no baseline", service.ErrNoBaseline, http.StatusNotFound},
		{"infeasible", &calculator.InfeasiblePoolError{Total: -1}, http.StatusUnprocessableEntity},
		{"nothing to bank", service.ErrNothingToBank, http.StatusUnprocessableEntity},
		{"not in deficit", service.ErrNotInDeficit, http.StatusUnprocessableEntity},
		{"no banked surplus", service.ErrNoBankedSurplus, http.StatusUnprocessableEntity},
		{"invariant violation", &calculator.AllocationInvariantError{Rule: calculator.RuleConservation}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestInternalErrorsHideDetails(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/pools?year=2025", nil)

	writeError(w, r, errors.New("database is locked"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", decode[errorResponse](t, w.Body.Bytes()).Error)
}
