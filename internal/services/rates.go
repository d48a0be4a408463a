package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
	"github.com/cambix/currency-conversion-api/internal/repositories"
)

const defaultPageLimit = 50

// demoMessage marks pages served while the store is unreachable.
const demoMessage = "store not connected - using demo data"

// RateReader defines rate store read operations used by services.
type RateReader interface {
	Ping(ctx context.Context) error
	Find(ctx context.Context, filter models.RateFilter) ([]models.Rate, error)
	GetActiveByPair(ctx context.Context, fromCurrency, toCurrency string) (*models.Rate, error)
}

// RateWriter defines rate store write operations used by services.
type RateWriter interface {
	Upsert(ctx context.Context, upsert models.RateUpsert) (*models.Rate, error)
	Update(ctx context.Context, id uuid.UUID, patch models.RatePatch) (*models.Rate, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*models.Rate, error)
}

// RateCache caches resolved pair rates together with their source.
type RateCache interface {
	Get(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, string, error)
	Set(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal, source string) error
}

// RateProvider is an external read-only source of rates.
type RateProvider interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	GetAllRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// RateEventNotifier publishes rate-change events.
type RateEventNotifier interface {
	PublishRateUpdate(ctx context.Context, data models.RateEvent)
}

// RatesService owns the rate store: CRUD with pair-level upsert semantics,
// soft delete, pair resolution against external providers, and bulk refresh.
type RatesService struct {
	reader   RateReader
	writer   RateWriter
	cache    RateCache
	crypto   RateProvider
	fiat     RateProvider
	notifier RateEventNotifier
}

func NewRatesService(
	reader RateReader,
	writer RateWriter,
	cache RateCache,
	crypto RateProvider,
	fiat RateProvider,
	notifier RateEventNotifier,
) *RatesService {
	return &RatesService{
		reader:   reader,
		writer:   writer,
		cache:    cache,
		crypto:   crypto,
		fiat:     fiat,
		notifier: notifier,
	}
}

// Find returns a page of active rates ordered by last update, newest first.
// When the store is unreachable it returns an empty demo page instead of an
// error.
func (s *RatesService) Find(ctx context.Context, filter models.RateFilter) (*models.RatePage, error) {
	filter.FromCurrency = models.NormalizeCurrency(filter.FromCurrency)
	filter.ToCurrency = models.NormalizeCurrency(filter.ToCurrency)
	if filter.Limit == 0 {
		filter.Limit = defaultPageLimit
	}
	if verr := checkStruct(filter); verr != nil {
		return nil, verr
	}

	if err := s.reader.Ping(ctx); err != nil {
		logger.Log.Warnw("rate store unreachable, serving demo page", "error", err)
		return &models.RatePage{
			Data:    []models.Rate{},
			Limit:   filter.Limit,
			Skip:    filter.Skip,
			Message: demoMessage,
		}, nil
	}

	rates, err := s.reader.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.RatePage{
		Data:  rates,
		Total: len(rates),
		Limit: filter.Limit,
		Skip:  filter.Skip,
	}, nil
}

// Create upserts a rate for a pair. A record existing for the pair, active or
// not, is updated in place; otherwise a new one is inserted. A rate-change
// notification is always emitted.
func (s *RatesService) Create(ctx context.Context, upsert models.RateUpsert) (*models.Rate, error) {
	upsert.FromCurrency = models.NormalizeCurrency(upsert.FromCurrency)
	upsert.ToCurrency = models.NormalizeCurrency(upsert.ToCurrency)
	if verr := checkStruct(upsert); verr != nil {
		return nil, verr
	}
	if !upsert.Rate.IsPositive() {
		return nil, newValidationError(validationDetail("Rate", "must be positive"))
	}

	action := "create"
	if _, err := s.reader.GetActiveByPair(ctx, upsert.FromCurrency, upsert.ToCurrency); err == nil {
		action = "update"
	}

	rate, err := s.writer.Upsert(ctx, upsert)
	if err != nil {
		logger.Log.Errorw("rate upsert failed",
			"from", upsert.FromCurrency, "to", upsert.ToCurrency, "error", err)
		return nil, err
	}

	s.notifier.PublishRateUpdate(ctx, models.RateEvent{
		Action:       action,
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		Source:       rate.Source,
	})

	return rate, nil
}

// Patch applies a partial update to a single rate by id.
func (s *RatesService) Patch(ctx context.Context, id uuid.UUID, patch models.RatePatch) (*models.Rate, error) {
	if verr := checkStruct(patch); verr != nil {
		return nil, verr
	}
	if patch.Rate != nil && !patch.Rate.IsPositive() {
		return nil, newValidationError(validationDetail("Rate", "must be positive"))
	}

	rate, err := s.writer.Update(ctx, id, patch)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, err
	}

	s.notifier.PublishRateUpdate(ctx, models.RateEvent{
		Action:       "update",
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		Source:       rate.Source,
	})

	return rate, nil
}

// Remove soft-deletes a rate: the row persists with IsActive=false.
func (s *RatesService) Remove(ctx context.Context, id uuid.UUID) (*models.Rate, error) {
	rate, err := s.writer.Deactivate(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, err
	}

	s.notifier.PublishRateUpdate(ctx, models.RateEvent{
		Action:       "delete",
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		Source:       rate.Source,
	})

	return rate, nil
}

// ResolveRateForPair prices a pair: cache first, then the store, then the
// matching external provider (bridging through USD for mixed crypto/fiat
// pairs). Provider hits are persisted through Create and cached.
func (s *RatesService) ResolveRateForPair(ctx context.Context, fromCurrency, toCurrency string) (*models.Rate, error) {
	fromCurrency = models.NormalizeCurrency(fromCurrency)
	toCurrency = models.NormalizeCurrency(toCurrency)
	if !currencyCodeRe.MatchString(fromCurrency) || !currencyCodeRe.MatchString(toCurrency) {
		return nil, newValidationError(validationDetail("currency", "must be 3 uppercase letters (e.g., USD, EUR, BTC)"))
	}

	if cached, source, err := s.cache.Get(ctx, fromCurrency, toCurrency); err == nil {
		return &models.Rate{
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
			Rate:         cached,
			Source:       source,
			IsActive:     true,
		}, nil
	}

	if rate, err := s.reader.GetActiveByPair(ctx, fromCurrency, toCurrency); err == nil {
		if cerr := s.cache.Set(ctx, fromCurrency, toCurrency, rate.Rate, rate.Source); cerr != nil {
			logger.Log.Errorw("failed to cache rate", "from", fromCurrency, "to", toCurrency, "error", cerr)
		}
		return rate, nil
	}

	external, source, err := s.resolveExternal(ctx, fromCurrency, toCurrency)
	if err != nil {
		logger.Log.Errorw("no provider priced pair", "from", fromCurrency, "to", toCurrency, "error", err)
		return nil, ErrRateUnavailable
	}

	rate, err := s.Create(ctx, models.RateUpsert{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         external,
		Source:       source,
	})
	if err != nil {
		return nil, err
	}

	if cerr := s.cache.Set(ctx, fromCurrency, toCurrency, rate.Rate, rate.Source); cerr != nil {
		logger.Log.Errorw("failed to cache rate", "from", fromCurrency, "to", toCurrency, "error", cerr)
	}

	return rate, nil
}

// resolveExternal queries the provider matching the pair's type. Mixed pairs
// are bridged through USD by composing two independent lookups; the legs can
// be fetched at different instants and carry no snapshot consistency.
func (s *RatesService) resolveExternal(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, string, error) {
	fromCrypto := models.IsCryptoCurrency(fromCurrency)
	toCrypto := models.IsCryptoCurrency(toCurrency)

	switch {
	case fromCrypto && toCrypto:
		rate, err := s.crypto.GetRate(ctx, fromCurrency, toCurrency)
		return rate, models.SourceCoinGecko, err

	case !fromCrypto && !toCrypto:
		rate, err := s.fiat.GetRate(ctx, fromCurrency, toCurrency)
		return rate, models.SourceOpenExchangeRates, err

	case fromCrypto:
		usdLeg, err := s.crypto.GetRate(ctx, fromCurrency, "USD")
		if err != nil {
			return decimal.Zero, "", err
		}
		fiatLeg, err := s.fiat.GetRate(ctx, "USD", toCurrency)
		if err != nil {
			return decimal.Zero, "", err
		}
		return usdLeg.Mul(fiatLeg), models.SourceCoinGecko, nil

	default:
		usdLeg, err := s.fiat.GetRate(ctx, fromCurrency, "USD")
		if err != nil {
			return decimal.Zero, "", err
		}
		cryptoUSD, err := s.crypto.GetRate(ctx, toCurrency, "USD")
		if err != nil {
			return decimal.Zero, "", err
		}
		if cryptoUSD.IsZero() {
			return decimal.Zero, "", ErrRateUnavailable
		}
		return usdLeg.DivRound(cryptoUSD, 12), models.SourceOpenExchangeRates, nil
	}
}

// RefreshAllFromProviders pulls bulk snapshots from both providers and
// upserts every pair found. A provider failing entirely, or a single pair
// failing validation, is logged and skipped without failing the batch.
func (s *RatesService) RefreshAllFromProviders(ctx context.Context) (int, error) {
	updated := 0
	updated += s.refreshSnapshot(ctx, s.crypto, models.SourceCoinGecko)
	updated += s.refreshSnapshot(ctx, s.fiat, models.SourceOpenExchangeRates)
	logger.Log.Infow("rates refreshed from providers", "updated", updated)
	return updated, nil
}

func (s *RatesService) refreshSnapshot(ctx context.Context, provider RateProvider, source string) int {
	snapshot, err := provider.GetAllRates(ctx)
	if err != nil {
		logger.Log.Errorw("provider snapshot failed", "source", source, "error", err)
		return 0
	}

	updated := 0
	for pair, rate := range snapshot {
		fromCurrency, toCurrency, ok := splitPair(pair)
		if !ok {
			continue
		}
		if _, err := s.Create(ctx, models.RateUpsert{
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
			Rate:         rate,
			Source:       source,
		}); err != nil {
			logger.Log.Warnw("skipping pair from snapshot", "pair", pair, "error", err)
			continue
		}
		updated++
	}
	return updated
}

// splitPair parses a provider snapshot key of the form "FROM_TO".
func splitPair(pair string) (string, string, bool) {
	for i := 0; i < len(pair); i++ {
		if pair[i] == '_' {
			return pair[:i], pair[i+1:], i > 0 && i < len(pair)-1
		}
	}
	return "", "", false
}
