package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
	"github.com/cambix/currency-conversion-api/internal/repositories"
)

// unknownRequester is recorded when no client metadata could be resolved.
const unknownRequester = "unknown"

// placeholderID identifies conversions computed while the store was
// unreachable; they are returned to the caller but never persisted.
const placeholderID = "demo"

// ConversionReader defines conversion log read operations used by services.
type ConversionReader interface {
	Ping(ctx context.Context) error
	Find(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Conversion, error)
	Stats(ctx context.Context, filter models.ConversionFilter) (*models.ConversionStats, error)
	PopularPairs(ctx context.Context, filter models.ConversionFilter, limit int) ([]models.PopularPair, error)
}

// ConversionWriter defines conversion log write operations used by services.
type ConversionWriter interface {
	Save(ctx context.Context, conversion models.Conversion) (*models.Conversion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RateResolver prices a currency pair per the rate service contract.
type RateResolver interface {
	ResolveRateForPair(ctx context.Context, fromCurrency, toCurrency string) (*models.Rate, error)
}

// ConversionNotifier delivers conversion events. PublishConversion reaches
// the durable queue and live subscribers; BroadcastConversion reaches live
// subscribers only.
type ConversionNotifier interface {
	PublishConversion(ctx context.Context, data models.ConversionEvent)
	BroadcastConversion(data models.ConversionEvent)
}

// ConvertService validates conversion requests, resolves rates, computes the
// converted amount, appends to the conversion log and emits notifications.
type ConvertService struct {
	reader   ConversionReader
	writer   ConversionWriter
	rates    RateResolver
	notifier ConversionNotifier
}

func NewConvertService(
	reader ConversionReader,
	writer ConversionWriter,
	rates RateResolver,
	notifier ConversionNotifier,
) *ConvertService {
	return &ConvertService{
		reader:   reader,
		writer:   writer,
		rates:    rates,
		notifier: notifier,
	}
}

// Convert performs a currency conversion. The result is returned even when
// the store is unreachable; in that case it is not durable, carries the
// placeholder id and is broadcast to live subscribers only.
func (s *ConvertService) Convert(
	ctx context.Context,
	fromCurrency, toCurrency string,
	amount decimal.Decimal,
	meta models.RequesterMeta,
) (*models.ConversionResult, error) {
	fromCurrency = models.NormalizeCurrency(fromCurrency)
	toCurrency = models.NormalizeCurrency(toCurrency)

	var details []string
	if !currencyCodeRe.MatchString(fromCurrency) {
		details = append(details, validationDetail("from", "must be 3 uppercase letters (e.g., USD, EUR, BTC)"))
	}
	if !currencyCodeRe.MatchString(toCurrency) {
		details = append(details, validationDetail("to", "must be 3 uppercase letters (e.g., USD, EUR, BTC)"))
	}
	if !amount.IsPositive() {
		details = append(details, validationDetail("amount", "must be positive"))
	} else if !amount.Equal(amount.Round(2)) {
		details = append(details, validationDetail("amount", "can have up to 2 decimal places"))
	}
	if len(details) > 0 {
		return nil, newValidationError(details...)
	}

	rate, err := s.rates.ResolveRateForPair(ctx, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}

	convertedAmount := amount.Mul(rate.Rate).Round(2)

	if meta.IP == "" {
		meta.IP = unknownRequester
	}
	if meta.UserAgent == "" {
		meta.UserAgent = unknownRequester
	}

	conversion := models.Conversion{
		ConversionID:    uuid.New(),
		FromCurrency:    fromCurrency,
		ToCurrency:      toCurrency,
		OriginalAmount:  amount,
		ConvertedAmount: convertedAmount,
		Rate:            rate.Rate,
		RateSource:      rate.Source,
		ConversionDate:  time.Now().UTC(),
		UserIP:          meta.IP,
		UserAgent:       meta.UserAgent,
	}

	saved, err := s.writer.Save(ctx, conversion)
	if err != nil {
		logger.Log.Warnw("conversion not persisted, returning computed result",
			"from", fromCurrency, "to", toCurrency, "error", err)

		result := resultFromConversion(conversion, placeholderID, false)
		s.notifier.BroadcastConversion(eventFromConversion(conversion, placeholderID))
		return result, nil
	}

	result := resultFromConversion(*saved, saved.ConversionID.String(), true)
	s.notifier.PublishConversion(ctx, eventFromConversion(*saved, saved.ConversionID.String()))
	return result, nil
}

func resultFromConversion(c models.Conversion, id string, persisted bool) *models.ConversionResult {
	return &models.ConversionResult{
		ID:              id,
		FromCurrency:    c.FromCurrency,
		ToCurrency:      c.ToCurrency,
		OriginalAmount:  c.OriginalAmount,
		ConvertedAmount: c.ConvertedAmount,
		Rate:            c.Rate,
		RateSource:      c.RateSource,
		ConversionDate:  c.ConversionDate,
		Persisted:       persisted,
	}
}

func eventFromConversion(c models.Conversion, id string) models.ConversionEvent {
	return models.ConversionEvent{
		ID:              id,
		FromCurrency:    c.FromCurrency,
		ToCurrency:      c.ToCurrency,
		OriginalAmount:  c.OriginalAmount,
		ConvertedAmount: c.ConvertedAmount,
		Rate:            c.Rate,
		RateSource:      c.RateSource,
		ConversionDate:  c.ConversionDate,
		UserIP:          c.UserIP,
	}
}

// Find returns a page of logged conversions, newest first. An unreachable
// store yields an empty demo page.
func (s *ConvertService) Find(ctx context.Context, filter models.ConversionFilter) (*models.ConversionPage, error) {
	filter.FromCurrency = models.NormalizeCurrency(filter.FromCurrency)
	filter.ToCurrency = models.NormalizeCurrency(filter.ToCurrency)
	if filter.Limit == 0 {
		filter.Limit = defaultPageLimit
	}
	if verr := checkStruct(filter); verr != nil {
		return nil, verr
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, newValidationError(validationDetail("endDate", "must not precede startDate"))
	}

	if err := s.reader.Ping(ctx); err != nil {
		logger.Log.Warnw("conversion store unreachable, serving demo page", "error", err)
		return &models.ConversionPage{
			Data:    []models.Conversion{},
			Limit:   filter.Limit,
			Skip:    filter.Skip,
			Message: demoMessage,
		}, nil
	}

	conversions, err := s.reader.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.ConversionPage{
		Data:  conversions,
		Total: len(conversions),
		Limit: filter.Limit,
		Skip:  filter.Skip,
	}, nil
}

// Get returns a single logged conversion.
func (s *ConvertService) Get(ctx context.Context, id uuid.UUID) (*models.Conversion, error) {
	conversion, err := s.reader.Get(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrConversionNotFound
	}
	if err != nil {
		return nil, err
	}
	return conversion, nil
}

// Patch always fails: conversions are immutable once logged.
func (s *ConvertService) Patch(ctx context.Context, id uuid.UUID) error {
	return ErrPatchNotAllowed
}

// Remove hard-deletes a conversion log entry.
func (s *ConvertService) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.writer.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrConversionNotFound
	}
	return err
}

// Stats aggregates logged conversions matching the filter. An unreachable
// store yields zero-valued statistics.
func (s *ConvertService) Stats(ctx context.Context, filter models.ConversionFilter) (*models.ConversionStats, error) {
	filter.FromCurrency = models.NormalizeCurrency(filter.FromCurrency)
	filter.ToCurrency = models.NormalizeCurrency(filter.ToCurrency)
	if verr := checkStruct(filter); verr != nil {
		return nil, verr
	}

	if err := s.reader.Ping(ctx); err != nil {
		logger.Log.Warnw("conversion store unreachable, serving zero stats", "error", err)
		return &models.ConversionStats{}, nil
	}

	return s.reader.Stats(ctx, filter)
}

// PopularPairs ranks currency pairs by conversion count.
func (s *ConvertService) PopularPairs(ctx context.Context, limit int) ([]models.PopularPair, error) {
	if limit <= 0 {
		limit = 10
	}

	if err := s.reader.Ping(ctx); err != nil {
		logger.Log.Warnw("conversion store unreachable, serving empty pairs", "error", err)
		return []models.PopularPair{}, nil
	}

	return s.reader.PopularPairs(ctx, models.ConversionFilter{}, limit)
}
