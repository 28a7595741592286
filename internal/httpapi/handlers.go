// Package httpapi exposes the itinerary service over HTTP with gorilla/mux,
// the router used across the fleet's newer services.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/draymaster/itinerary-service/internal/domain"
	"github.com/draymaster/itinerary-service/internal/platform/apperrors"
	"github.com/draymaster/itinerary-service/internal/platform/logger"
	"github.com/draymaster/itinerary-service/internal/service"
)

// Handler holds the dependencies the HTTP routes need.
type Handler struct {
	svc    *service.ItineraryService
	logger *logger.Logger
}

// NewRouter builds the mux.Router exposing the itinerary API plus the
// health/readiness/metrics endpoints the fleet's services all carry.
func NewRouter(svc *service.ItineraryService, log *logger.Logger) *mux.Router {
	h := &Handler{svc: svc, logger: log}

	r := mux.NewRouter()
	r.HandleFunc("/v1/itineraries", h.planItinerary).Methods(http.MethodPost)
	r.HandleFunc("/v1/itineraries/{id}", h.getItinerary).Methods(http.MethodGet)
	r.HandleFunc("/v1/drivers/{driverID}/itineraries/latest", h.getLatestItinerary).Methods(http.MethodGet)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.ready).Methods(http.MethodGet)
	r.HandleFunc("/metrics", h.metrics).Methods(http.MethodGet)

	return r
}

// planItineraryRequest is the POST /v1/itineraries request body.
type planItineraryRequest struct {
	DriverID       uuid.UUID    `json:"driver_id"`
	Route          domain.Route `json:"route"`
	UsedCycleHours int          `json:"used_cycle_hours"`
	TripStartTime  time.Time    `json:"trip_start_time"`
}

func (h *Handler) planItinerary(w http.ResponseWriter, r *http.Request) {
	var req planItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("invalid request body", "body", nil))
		return
	}

	stored, err := h.svc.PlanItinerary(r.Context(), service.PlanItineraryInput{
		DriverID:       req.DriverID,
		Route:          req.Route,
		UsedCycleHours: req.UsedCycleHours,
		TripStartTime:  req.TripStartTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) getItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, apperrors.ValidationError("invalid itinerary id", "id", mux.Vars(r)["id"]))
		return
	}

	stored, err := h.svc.GetItinerary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) getLatestItinerary(w http.ResponseWriter, r *http.Request) {
	driverID, err := uuid.Parse(mux.Vars(r)["driverID"])
	if err != nil {
		writeError(w, apperrors.ValidationError("invalid driver id", "driverID", mux.Vars(r)["driverID"]))
		return
	}

	stored, err := h.svc.GetLatestItinerary(r.Context(), driverID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.InternalError("unexpected error", err)
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(appErr, apperrors.ErrInvalidInput), errors.Is(appErr, apperrors.ErrMalformedRoute):
		status = http.StatusBadRequest
	case errors.Is(appErr, apperrors.ErrNotFound):
		status = http.StatusNotFound
	}

	writeJSON(w, status, appErr)
}
