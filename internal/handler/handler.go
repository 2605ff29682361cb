// Package handler exposes the compliance services over REST.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/fueleu/internal/models"
)

// RouteService defines the route operations used by the handler.
type RouteService interface {
	ListRoutes(ctx context.Context) ([]*models.Route, error)
	SetBaseline(ctx context.Context, id string) error
	GetComparison(ctx context.Context) ([]models.RouteComparison, error)
}

// ComplianceService defines the compliance and banking operations used by the handler.
type ComplianceService interface {
	CalculateCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error)
	GetAdjustedCompliance(ctx context.Context, shipID string, year int) (*models.AdjustedCompliance, error)
	BankSurplus(ctx context.Context, shipID string, year int) (*models.BankEntry, error)
	ApplyBanked(ctx context.Context, shipID string, year int, amount *float64) (*models.BankApplication, error)
	ListBankEntries(ctx context.Context, shipID string) ([]*models.BankEntry, error)
}

// PoolService defines the pooling operations used by the handler.
type PoolService interface {
	CreatePool(ctx context.Context, shipIDs []string, year int) (*models.Pool, error)
	ListPools(ctx context.Context, year int) ([]*models.Pool, error)
}

// Handler wires REST endpoints to the services.
type Handler struct {
	routes     RouteService
	compliance ComplianceService
	pools      PoolService
}

// New constructs a Handler.
func New(routes RouteService, compliance ComplianceService, pools PoolService) *Handler {
	return &Handler{routes: routes, compliance: compliance, pools: pools}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/routes", func(r chi.Router) {
		r.Get("/", h.HandleListRoutes)
		r.Get("/comparison", h.HandleComparison)
		r.Post("/{id}/baseline", h.HandleSetBaseline)
	})

	r.Route("/compliance", func(r chi.Router) {
		r.Get("/cb", h.HandleComplianceBalance)
		r.Get("/adjusted-cb", h.HandleAdjustedCompliance)
	})

	r.Route("/banking", func(r chi.Router) {
		r.Post("/bank", h.HandleBank)
		r.Post("/apply", h.HandleApply)
		r.Get("/records", h.HandleBankRecords)
	})

	r.Route("/pools", func(r chi.Router) {
		r.Post("/", h.HandleCreatePool)
		r.Get("/", h.HandleListPools)
	})
}

// HandleListRoutes handles GET /routes.
func (h *Handler) HandleListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.routes.ListRoutes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, routes)
}

// HandleSetBaseline handles POST /routes/{id}/baseline.
func (h *Handler) HandleSetBaseline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.routes.SetBaseline(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// HandleComparison handles GET /routes/comparison.
func (h *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	comparisons, err := h.routes.GetComparison(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comparisons)
}

// HandleComplianceBalance handles GET /compliance/cb?shipId=&year=.
func (h *Handler) HandleComplianceBalance(w http.ResponseWriter, r *http.Request) {
	shipID, year, err := shipYearQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cb, err := h.compliance.CalculateCompliance(r.Context(), shipID, year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cb)
}

// HandleAdjustedCompliance handles GET /compliance/adjusted-cb?shipId=&year=.
func (h *Handler) HandleAdjustedCompliance(w http.ResponseWriter, r *http.Request) {
	shipID, year, err := shipYearQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	adjusted, err := h.compliance.GetAdjustedCompliance(r.Context(), shipID, year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adjusted)
}

type bankRequest struct {
	ShipID string `json:"shipId"`
	Year   int    `json:"year"`
}

// HandleBank handles POST /banking/bank.
func (h *Handler) HandleBank(w http.ResponseWriter, r *http.Request) {
	var req bankRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.compliance.BankSurplus(r.Context(), req.ShipID, req.Year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

type applyRequest struct {
	ShipID string   `json:"shipId"`
	Year   int      `json:"year"`
	Amount *float64 `json:"amount,omitempty"`
}

// HandleApply handles POST /banking/apply.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	app, err := h.compliance.ApplyBanked(r.Context(), req.ShipID, req.Year, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// HandleBankRecords handles GET /banking/records?shipId=.
func (h *Handler) HandleBankRecords(w http.ResponseWriter, r *http.Request) {
	entries, err := h.compliance.ListBankEntries(r.Context(), r.URL.Query().Get("shipId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type createPoolRequest struct {
	ShipIDs []string `json:"shipIds"`
	Year    int      `json:"year"`
}

// HandleCreatePool handles POST /pools.
func (h *Handler) HandleCreatePool(w http.ResponseWriter, r *http.Request) {
	var req createPoolRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	pool, err := h.pools.CreatePool(r.Context(), req.ShipIDs, req.Year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, pool)
}

// HandleListPools handles GET /pools?year=.
func (h *Handler) HandleListPools(w http.ResponseWriter, r *http.Request) {
	year, err := yearQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pools, err := h.pools.ListPools(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pools)
}

func shipYearQuery(r *http.Request) (string, int, error) {
	shipID := r.URL.Query().Get("shipId")
	if shipID == "" {
		return "", 0, badRequest("missing shipId or year")
	}
	year, err := yearQuery(r)
	if err != nil {
		return "", 0, err
	}
	return shipID, year, nil
}

func yearQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, badRequest("missing year")
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("year must be an integer")
	}
	return year, nil
}
