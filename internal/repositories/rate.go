package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

const rateColumns = "rate_id, from_currency, to_currency, rate, source, last_updated, is_active"

// RateReadRepository handles rate read operations.
type RateReadRepository struct {
	db *sqlx.DB
}

func NewRateReadRepository(db *sqlx.DB) *RateReadRepository {
	return &RateReadRepository{db: db}
}

// Ping probes store availability for the degraded read paths.
func (r *RateReadRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Find returns active rates matching the filter, newest first.
func (r *RateReadRepository) Find(ctx context.Context, filter models.RateFilter) ([]models.Rate, error) {
	var (
		conds = []string{"is_active = TRUE"}
		args  []any
	)
	if filter.FromCurrency != "" {
		args = append(args, filter.FromCurrency)
		conds = append(conds, fmt.Sprintf("from_currency = $%d", len(args)))
	}
	if filter.ToCurrency != "" {
		args = append(args, filter.ToCurrency)
		conds = append(conds, fmt.Sprintf("to_currency = $%d", len(args)))
	}
	if filter.Source != "" {
		args = append(args, filter.Source)
		conds = append(conds, fmt.Sprintf("source = $%d", len(args)))
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Skip)
	skipPos := len(args)

	query := fmt.Sprintf(
		"SELECT %s FROM rates WHERE %s ORDER BY last_updated DESC LIMIT $%d OFFSET $%d",
		rateColumns, strings.Join(conds, " AND "), limitPos, skipPos,
	)

	rates := []models.Rate{}
	err := r.db.SelectContext(ctx, &rates, query, args...)

	logger.Log.Infow("rates find",
		"query", query,
		"args", args,
		"rows", len(rates),
		"error", err,
	)

	return rates, err
}

// GetActiveByPair returns the active rate for a pair, or ErrNotFound.
func (r *RateReadRepository) GetActiveByPair(ctx context.Context, fromCurrency, toCurrency string) (*models.Rate, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM rates WHERE from_currency = $1 AND to_currency = $2 AND is_active = TRUE",
		rateColumns,
	)

	var rate models.Rate
	err := r.db.GetContext(ctx, &rate, query, fromCurrency, toCurrency)

	logger.Log.Infow("rate get by pair",
		"from", fromCurrency,
		"to", toCurrency,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// RateWriteRepository handles rate write operations.
type RateWriteRepository struct {
	db *sqlx.DB
}

func NewRateWriteRepository(db *sqlx.DB) *RateWriteRepository {
	return &RateWriteRepository{db: db}
}

// Upsert inserts a rate or, when the pair already exists (active or not),
// replaces its rate/source, reactivates it and bumps last_updated. The unique
// pair index is the only concurrency guard; last write wins.
func (r *RateWriteRepository) Upsert(ctx context.Context, upsert models.RateUpsert) (*models.Rate, error) {
	query := fmt.Sprintf(`
		INSERT INTO rates (rate_id, from_currency, to_currency, rate, source, last_updated, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), TRUE, NOW(), NOW())
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET rate = EXCLUDED.rate, source = EXCLUDED.source, is_active = TRUE, last_updated = NOW(), updated_at = NOW()
		RETURNING %s`, rateColumns)

	var rate models.Rate
	err := r.db.GetContext(ctx, &rate, query,
		uuid.New(), upsert.FromCurrency, upsert.ToCurrency, upsert.Rate, upsert.Source)

	logger.Log.Infow("rate upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{upsert.FromCurrency, upsert.ToCurrency, upsert.Rate, upsert.Source},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// Update applies a partial update to a single rate by id.
func (r *RateWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.RatePatch) (*models.Rate, error) {
	query := fmt.Sprintf(`
		UPDATE rates
		SET rate = COALESCE($2, rate),
		    source = COALESCE($3, source),
		    is_active = COALESCE($4, is_active),
		    last_updated = NOW(),
		    updated_at = NOW()
		WHERE rate_id = $1
		RETURNING %s`, rateColumns)

	var rateArg *string
	if patch.Rate != nil {
		s := patch.Rate.String()
		rateArg = &s
	}

	var rate models.Rate
	err := r.db.GetContext(ctx, &rate, query, id, rateArg, patch.Source, patch.IsActive)

	logger.Log.Infow("rate update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, patch.Rate, patch.Source, patch.IsActive},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// Deactivate soft-deletes a rate; the row persists with is_active=FALSE.
func (r *RateWriteRepository) Deactivate(ctx context.Context, id uuid.UUID) (*models.Rate, error) {
	query := fmt.Sprintf(`
		UPDATE rates
		SET is_active = FALSE, updated_at = NOW()
		WHERE rate_id = $1
		RETURNING %s`, rateColumns)

	var rate models.Rate
	err := r.db.GetContext(ctx, &rate, query, id)

	logger.Log.Infow("rate deactivate",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
