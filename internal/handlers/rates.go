package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// RateLister defines the listing operation the service must implement.
type RateLister interface {
	Find(ctx context.Context, filter models.RateFilter) (*models.RatePage, error)
}

// RateCreator defines the upsert operation the service must implement.
type RateCreator interface {
	Create(ctx context.Context, upsert models.RateUpsert) (*models.Rate, error)
}

// RatePatcher defines the partial-update operation the service must implement.
type RatePatcher interface {
	Patch(ctx context.Context, id uuid.UUID, patch models.RatePatch) (*models.Rate, error)
}

// RateRemover defines the soft-delete operation the service must implement.
type RateRemover interface {
	Remove(ctx context.Context, id uuid.UUID) (*models.Rate, error)
}

// CreateRateRequest represents the JSON body for creating or updating a rate
// swagger:model CreateRateRequest
type CreateRateRequest struct {
	// Source currency code
	// required: true
	// default: USD
	FromCurrency string `json:"fromCurrency"`

	// Target currency code
	// required: true
	// default: EUR
	ToCurrency string `json:"toCurrency"`

	// Exchange rate, must be positive
	// required: true
	// default: 0.85
	Rate decimal.Decimal `json:"rate"`

	// Rate source: coingecko, openexchangerates or manual
	// default: manual
	Source string `json:"source"`
}

// PatchRateRequest represents the JSON body for a partial rate update
// swagger:model PatchRateRequest
type PatchRateRequest struct {
	// New exchange rate
	Rate *decimal.Decimal `json:"rate,omitempty"`

	// New rate source
	Source *string `json:"source,omitempty"`

	// Activate or deactivate the rate
	IsActive *bool `json:"isActive,omitempty"`
}

// DeleteRateResponse represents a successful soft-delete response
// swagger:model DeleteRateResponse
type DeleteRateResponse struct {
	// Success message
	// default: Rate deactivated
	Message string `json:"message"`

	// The deactivated rate
	Rate *models.Rate `json:"rate"`
}

// NewListRatesHandler returns an HTTP handler listing stored rates.
// @Summary List exchange rates
// @Description Returns active rates ordered by last update, newest first. Supports pair and source filters with limit/skip paging.
// @Tags rates
// @Produce json
// @Param from query string false "Source currency filter"
// @Param to query string false "Target currency filter"
// @Param source query string false "Rate source filter"
// @Param limit query int false "Page size, max 100"
// @Param skip query int false "Rows to skip"
// @Success 200 {object} models.RatePage "Page of rates"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /rates [get]
func NewListRatesHandler(lister RateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.RateFilter{
			FromCurrency: r.URL.Query().Get("from"),
			ToCurrency:   r.URL.Query().Get("to"),
			Source:       r.URL.Query().Get("source"),
			Limit:        queryInt(r, "limit"),
			Skip:         queryInt(r, "skip"),
		}

		page, err := lister.Find(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewCreateRateHandler returns an HTTP handler upserting a rate for a pair.
// @Summary Create or update an exchange rate
// @Description Upserts the rate for a currency pair. An existing pair record is updated in place, active or not.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body handlers.CreateRateRequest true "Rate"
// @Success 201 {object} models.Rate "Stored rate"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /rates [post]
func NewCreateRateHandler(creator RateCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Source == "" {
			req.Source = models.SourceManual
		}

		rate, err := creator.Create(r.Context(), models.RateUpsert{
			FromCurrency: req.FromCurrency,
			ToCurrency:   req.ToCurrency,
			Rate:         req.Rate,
			Source:       req.Source,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rate)
	}
}

// NewPatchRateHandler returns an HTTP handler for partial rate updates.
// @Summary Patch an exchange rate
// @Description Applies a partial update to a rate by id; omitted fields are left untouched.
// @Tags rates
// @Accept json
// @Produce json
// @Param id path string true "Rate id"
// @Param request body handlers.PatchRateRequest true "Fields to update"
// @Success 200 {object} models.Rate "Updated rate"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Rate not found"
// @Router /rates/{id} [patch]
func NewPatchRateHandler(patcher RatePatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid rate id")
			return
		}

		var req PatchRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rate, err := patcher.Patch(r.Context(), id, models.RatePatch{
			Rate:     req.Rate,
			Source:   req.Source,
			IsActive: req.IsActive,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rate)
	}
}

// NewDeleteRateHandler returns an HTTP handler soft-deleting a rate.
// @Summary Deactivate an exchange rate
// @Description Soft-deletes a rate: the row persists with isActive=false and keeps the pair slot.
// @Tags rates
// @Produce json
// @Param id path string true "Rate id"
// @Success 200 {object} handlers.DeleteRateResponse "Deactivated rate"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Rate not found"
// @Router /rates/{id} [delete]
func NewDeleteRateHandler(remover RateRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid rate id")
			return
		}

		rate, err := remover.Remove(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DeleteRateResponse{
			Message: "Rate deactivated",
			Rate:    rate,
		})
	}
}

// queryInt parses an integer query parameter; absent or malformed values
// resolve to zero.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
