package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/fueleu/internal/calculator"
	"github.com/mmynk/fueleu/internal/service"
	"github.com/mmynk/fueleu/internal/storage"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string   `json:"error"`
	ShipIDs []string `json:"shipIds,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidInput, msg)
}

// decodeJSON reads exactly one JSON object into v. Unknown fields and
// trailing data are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("malformed JSON body: " + err.Error())
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return badRequest("body must contain a single JSON object")
	}
	return nil
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	var (
		missing    *service.MissingComplianceError
		infeasible *calculator.InfeasiblePoolError
	)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.As(err, &missing),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, service.ErrNoBaseline):
		return http.StatusNotFound
	case errors.As(err, &infeasible),
		errors.Is(err, service.ErrNothingToBank),
		errors.Is(err, service.ErrNotInDeficit),
		errors.Is(err, service.ErrNoBankedSurplus):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error()}

	var missing *service.MissingComplianceError
	if errors.As(err, &missing) {
		resp.ShipIDs = missing.ShipIDs
	}

	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		resp.Error = "internal error"
	}

	writeJSON(w, status, resp)
}
