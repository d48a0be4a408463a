package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

const conversionColumns = "conversion_id, from_currency, to_currency, original_amount, converted_amount, rate, rate_source, conversion_date, user_ip, user_agent"

// ConversionReadRepository handles conversion log read operations.
type ConversionReadRepository struct {
	db *sqlx.DB
}

func NewConversionReadRepository(db *sqlx.DB) *ConversionReadRepository {
	return &ConversionReadRepository{db: db}
}

// Ping probes store availability for the degraded read paths.
func (r *ConversionReadRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// filterConds builds WHERE conditions shared by Find, Stats and PopularPairs.
func filterConds(filter models.ConversionFilter) (conds []string, args []any) {
	if filter.FromCurrency != "" {
		args = append(args, filter.FromCurrency)
		conds = append(conds, fmt.Sprintf("from_currency = $%d", len(args)))
	}
	if filter.ToCurrency != "" {
		args = append(args, filter.ToCurrency)
		conds = append(conds, fmt.Sprintf("to_currency = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conds = append(conds, fmt.Sprintf("conversion_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conds = append(conds, fmt.Sprintf("conversion_date <= $%d", len(args)))
	}
	return conds, args
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// Find returns conversions matching the filter, newest first.
func (r *ConversionReadRepository) Find(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error) {
	conds, args := filterConds(filter)

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Skip)
	skipPos := len(args)

	query := fmt.Sprintf(
		"SELECT %s FROM conversions%s ORDER BY conversion_date DESC LIMIT $%d OFFSET $%d",
		conversionColumns, whereClause(conds), limitPos, skipPos,
	)

	conversions := []models.Conversion{}
	err := r.db.SelectContext(ctx, &conversions, query, args...)

	logger.Log.Infow("conversions find",
		"query", query,
		"args", args,
		"rows", len(conversions),
		"error", err,
	)

	return conversions, err
}

// Get returns a single conversion by id, or ErrNotFound.
func (r *ConversionReadRepository) Get(ctx context.Context, id uuid.UUID) (*models.Conversion, error) {
	query := fmt.Sprintf("SELECT %s FROM conversions WHERE conversion_id = $1", conversionColumns)

	var conversion models.Conversion
	err := r.db.GetContext(ctx, &conversion, query, id)

	logger.Log.Infow("conversion get", "id", id, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversion, nil
}

// Stats aggregates conversions matching the filter in a single query.
func (r *ConversionReadRepository) Stats(ctx context.Context, filter models.ConversionFilter) (*models.ConversionStats, error) {
	conds, args := filterConds(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*) AS total_conversions,
		       COALESCE(SUM(original_amount), 0) AS total_original_amount,
		       COALESCE(SUM(converted_amount), 0) AS total_converted_amount,
		       COALESCE(AVG(rate), 0) AS average_rate,
		       COALESCE(MIN(rate), 0) AS min_rate,
		       COALESCE(MAX(rate), 0) AS max_rate,
		       COUNT(DISTINCT (from_currency, to_currency)) AS unique_currency_pairs
		FROM conversions%s`, whereClause(conds))

	var stats models.ConversionStats
	err := r.db.GetContext(ctx, &stats, query, args...)

	logger.Log.Infow("conversion stats",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// PopularPairs groups conversions by pair and ranks them by count descending.
// Ties keep the store's ordering.
func (r *ConversionReadRepository) PopularPairs(ctx context.Context, filter models.ConversionFilter, limit int) ([]models.PopularPair, error) {
	conds, args := filterConds(filter)
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT from_currency, to_currency,
		       COUNT(*) AS conversion_count,
		       COALESCE(SUM(original_amount), 0) AS total_amount
		FROM conversions%s
		GROUP BY from_currency, to_currency
		ORDER BY conversion_count DESC
		LIMIT $%d`, whereClause(conds), len(args))

	pairs := []models.PopularPair{}
	err := r.db.SelectContext(ctx, &pairs, query, args...)

	logger.Log.Infow("popular pairs",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(pairs),
		"error", err,
	)

	return pairs, err
}

// DailyBuckets returns per-day conversion counts and amounts inside [start, end].
func (r *ConversionReadRepository) DailyBuckets(ctx context.Context, start, end time.Time) ([]models.DailyBucket, error) {
	const query = `
		SELECT EXTRACT(DAY FROM conversion_date AT TIME ZONE 'UTC')::int AS day,
		       COUNT(*) AS conversions,
		       COALESCE(SUM(original_amount), 0) AS amount
		FROM conversions
		WHERE conversion_date >= $1 AND conversion_date <= $2
		GROUP BY day
		ORDER BY day`

	buckets := []models.DailyBucket{}
	err := r.db.SelectContext(ctx, &buckets, query, start, end)

	logger.Log.Infow("daily buckets",
		"start", start,
		"end", end,
		"rows", len(buckets),
		"error", err,
	)

	return buckets, err
}

// ConversionWriteRepository handles conversion log write operations.
type ConversionWriteRepository struct {
	db *sqlx.DB
}

func NewConversionWriteRepository(db *sqlx.DB) *ConversionWriteRepository {
	return &ConversionWriteRepository{db: db}
}

// Save appends a conversion to the log and returns the stored row.
func (r *ConversionWriteRepository) Save(ctx context.Context, conversion models.Conversion) (*models.Conversion, error) {
	query := fmt.Sprintf(`
		INSERT INTO conversions (conversion_id, from_currency, to_currency, original_amount, converted_amount,
		                         rate, rate_source, conversion_date, user_ip, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s`, conversionColumns)

	var saved models.Conversion
	err := r.db.GetContext(ctx, &saved, query,
		conversion.ConversionID, conversion.FromCurrency, conversion.ToCurrency,
		conversion.OriginalAmount, conversion.ConvertedAmount, conversion.Rate,
		conversion.RateSource, conversion.ConversionDate, conversion.UserIP, conversion.UserAgent)

	logger.Log.Infow("conversion save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversion.FromCurrency, conversion.ToCurrency, conversion.OriginalAmount},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete hard-deletes a conversion log entry.
func (r *ConversionWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = "DELETE FROM conversions WHERE conversion_id = $1 RETURNING conversion_id"

	var deleted uuid.UUID
	err := r.db.GetContext(ctx, &deleted, query, id)

	logger.Log.Infow("conversion delete", "id", id, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
