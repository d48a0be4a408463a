package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// Converter defines the conversion operation the service must implement.
type Converter interface {
	Convert(
		ctx context.Context,
		fromCurrency, toCurrency string,
		amount decimal.Decimal,
		meta models.RequesterMeta,
	) (*models.ConversionResult, error)
}

// ConversionLister defines the listing operation the service must implement.
type ConversionLister interface {
	Find(ctx context.Context, filter models.ConversionFilter) (*models.ConversionPage, error)
}

// ConversionGetter defines the single-row read the service must implement.
type ConversionGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Conversion, error)
}

// ConversionPatcher defines the (always rejected) update operation.
type ConversionPatcher interface {
	Patch(ctx context.Context, id uuid.UUID) error
}

// ConversionRemover defines the hard-delete operation.
type ConversionRemover interface {
	Remove(ctx context.Context, id uuid.UUID) error
}

// ConversionStatser defines the aggregation the service must implement.
type ConversionStatser interface {
	Stats(ctx context.Context, filter models.ConversionFilter) (*models.ConversionStats, error)
}

// PopularPairsLister defines the pair ranking the service must implement.
type PopularPairsLister interface {
	PopularPairs(ctx context.Context, limit int) ([]models.PopularPair, error)
}

// ConvertRequest represents the JSON body for a currency conversion
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Source currency code
	// required: true
	// default: USD
	From string `json:"from"`

	// Target currency code
	// required: true
	// default: EUR
	To string `json:"to"`

	// Amount to convert, positive with up to 2 decimal places
	// required: true
	// default: 100.0
	Amount decimal.Decimal `json:"amount"`
}

// DeleteConversionResponse represents a successful delete response
// swagger:model DeleteConversionResponse
type DeleteConversionResponse struct {
	// Success message
	// default: Conversion deleted
	Message string `json:"message"`
}

// requesterMeta resolves the client's address and agent from proxy headers.
func requesterMeta(r *http.Request) models.RequesterMeta {
	ip := r.Header.Get("X-Forwarded-For")
	if ip != "" {
		first, _, _ := strings.Cut(ip, ",")
		ip = strings.TrimSpace(first)
	}
	if ip == "" {
		ip = r.Header.Get("X-Real-IP")
	}
	return models.RequesterMeta{
		IP:        ip,
		UserAgent: r.UserAgent(),
	}
}

// NewConvertHandler returns an HTTP handler performing a conversion.
// @Summary Convert an amount between currencies
// @Description Resolves the pair rate (cache, store, then external providers), computes the converted amount and logs the conversion.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body handlers.ConvertRequest true "Conversion request"
// @Success 200 {object} models.ConversionResult "Conversion result"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 422 {object} handlers.ErrorResponse "Rate not available"
// @Router /convert [post]
func NewConvertHandler(converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := converter.Convert(r.Context(), req.From, req.To, req.Amount, requesterMeta(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewListConversionsHandler returns an HTTP handler listing logged conversions.
// @Summary List conversions
// @Description Returns logged conversions, newest first, filtered by pair and date range with limit/skip paging.
// @Tags convert
// @Produce json
// @Param from query string false "Source currency filter"
// @Param to query string false "Target currency filter"
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Param limit query int false "Page size, max 100"
// @Param skip query int false "Rows to skip"
// @Success 200 {object} models.ConversionPage "Page of conversions"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /convert [get]
func NewListConversionsHandler(lister ConversionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.ConversionFilter{
			FromCurrency: r.URL.Query().Get("from"),
			ToCurrency:   r.URL.Query().Get("to"),
			Limit:        queryInt(r, "limit"),
			Skip:         queryInt(r, "skip"),
		}

		start, ok := queryTime(r, "startDate", false)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid startDate")
			return
		}
		end, ok := queryTime(r, "endDate", true)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid endDate")
			return
		}
		filter.StartDate = start
		filter.EndDate = end

		page, err := lister.Find(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewConversionStatsHandler returns an HTTP handler for conversion statistics.
// @Summary Conversion statistics
// @Description Aggregates logged conversions: totals, average/min/max rate. Supports the same filters as listing.
// @Tags convert
// @Produce json
// @Param from query string false "Source currency filter"
// @Param to query string false "Target currency filter"
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} models.ConversionStats "Aggregated statistics"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /convert/stats [get]
func NewConversionStatsHandler(statser ConversionStatser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.ConversionFilter{
			FromCurrency: r.URL.Query().Get("from"),
			ToCurrency:   r.URL.Query().Get("to"),
		}

		start, ok := queryTime(r, "startDate", false)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid startDate")
			return
		}
		end, ok := queryTime(r, "endDate", true)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid endDate")
			return
		}
		filter.StartDate = start
		filter.EndDate = end

		stats, err := statser.Stats(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewPopularPairsHandler returns an HTTP handler ranking currency pairs.
// @Summary Popular currency pairs
// @Description Ranks currency pairs by conversion count, most converted first.
// @Tags convert
// @Produce json
// @Param limit query int false "Number of pairs, default 10"
// @Success 200 {array} models.PopularPair "Ranked pairs"
// @Router /convert/popular [get]
func NewPopularPairsHandler(lister PopularPairsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs, err := lister.PopularPairs(r.Context(), queryInt(r, "limit"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pairs)
	}
}

// NewGetConversionHandler returns an HTTP handler reading a single conversion.
// @Summary Get a conversion
// @Description Returns one logged conversion by id.
// @Tags convert
// @Produce json
// @Param id path string true "Conversion id"
// @Success 200 {object} models.Conversion "Conversion"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Conversion not found"
// @Router /convert/{id} [get]
func NewGetConversionHandler(getter ConversionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid conversion id")
			return
		}

		conversion, err := getter.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, conversion)
	}
}

// NewPatchConversionHandler returns an HTTP handler rejecting updates:
// conversions are immutable once logged.
// @Summary Patch a conversion
// @Description Always fails with 405: logged conversions are immutable.
// @Tags convert
// @Produce json
// @Param id path string true "Conversion id"
// @Failure 405 {object} handlers.ErrorResponse "PATCH method not allowed for conversions"
// @Router /convert/{id} [patch]
func NewPatchConversionHandler(patcher ConversionPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid conversion id")
			return
		}

		if err := patcher.Patch(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteConversionHandler returns an HTTP handler deleting a conversion.
// @Summary Delete a conversion
// @Description Hard-deletes one logged conversion by id.
// @Tags convert
// @Produce json
// @Param id path string true "Conversion id"
// @Success 200 {object} handlers.DeleteConversionResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Conversion not found"
// @Router /convert/{id} [delete]
func NewDeleteConversionHandler(remover ConversionRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid conversion id")
			return
		}

		if err := remover.Remove(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DeleteConversionResponse{Message: "Conversion deleted"})
	}
}

// queryTime parses a timestamp query parameter, accepting RFC 3339 or a bare
// date. Bare end dates resolve to the end of that day.
func queryTime(r *http.Request, name string, endOfDay bool) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, true
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, true
}
