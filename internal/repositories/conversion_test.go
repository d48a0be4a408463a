package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambix/currency-conversion-api/internal/models"
)

func seedConversion(t *testing.T, writer *ConversionWriteRepository, from, to, amount, rate string, date time.Time) *models.Conversion {
	t.Helper()
	original := decimal.RequireFromString(amount)
	r := decimal.RequireFromString(rate)
	saved, err := writer.Save(context.Background(), models.Conversion{
		ConversionID:    uuid.New(),
		FromCurrency:    from,
		ToCurrency:      to,
		OriginalAmount:  original,
		ConvertedAmount: original.Mul(r).Round(2),
		Rate:            r,
		RateSource:      "manual",
		ConversionDate:  date,
		UserIP:          "203.0.113.9",
		UserAgent:       "test-agent",
	})
	assert.NoError(t, err)
	return saved
}

func TestConversionRepository_SaveGetDelete(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewConversionWriteRepository(db)
	reader := NewConversionReadRepository(db)

	saved := seedConversion(t, writer, "USD", "EUR", "100", "0.85", time.Now().UTC())

	t.Run("get returns the stored row", func(t *testing.T) {
		got, err := reader.Get(ctx, saved.ConversionID)
		assert.NoError(t, err)
		assert.Equal(t, "USD", got.FromCurrency)
		assert.True(t, got.ConvertedAmount.Equal(decimal.RequireFromString("85")))
		assert.Equal(t, "203.0.113.9", got.UserIP)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := reader.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		assert.NoError(t, writer.Delete(ctx, saved.ConversionID))

		_, err := reader.Get(ctx, saved.ConversionID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		assert.ErrorIs(t, writer.Delete(ctx, uuid.New()), ErrNotFound)
	})
}

func TestConversionRepository_FindStats(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewConversionWriteRepository(db)
	reader := NewConversionReadRepository(db)

	day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	seedConversion(t, writer, "USD", "EUR", "100", "0.85", day1)
	seedConversion(t, writer, "USD", "EUR", "200", "0.85", day1)
	seedConversion(t, writer, "USD", "JPY", "50", "150.25", day2)
	seedConversion(t, writer, "BTC", "USD", "0.50", "45000", day2)

	t.Run("find newest first", func(t *testing.T) {
		conversions, err := reader.Find(ctx, models.ConversionFilter{Limit: 50})
		assert.NoError(t, err)
		assert.Len(t, conversions, 4)
		assert.Equal(t, day2, conversions[0].ConversionDate.UTC())
	})

	t.Run("find by pair and date window", func(t *testing.T) {
		start := day1
		end := day1.Add(24 * time.Hour)
		conversions, err := reader.Find(ctx, models.ConversionFilter{
			FromCurrency: "USD",
			ToCurrency:   "EUR",
			StartDate:    &start,
			EndDate:      &end,
			Limit:        50,
		})
		assert.NoError(t, err)
		assert.Len(t, conversions, 2)
	})

	t.Run("stats aggregates in one query", func(t *testing.T) {
		stats, err := reader.Stats(ctx, models.ConversionFilter{})
		assert.NoError(t, err)
		assert.Equal(t, 4, stats.TotalConversions)
		assert.True(t, stats.TotalOriginalAmount.Equal(decimal.RequireFromString("350.50")))
		assert.Equal(t, 3, stats.UniqueCurrencyPairs)
		assert.True(t, stats.MaxRate.Equal(decimal.RequireFromString("45000")))
	})

	t.Run("stats over empty filter window", func(t *testing.T) {
		start := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		stats, err := reader.Stats(ctx, models.ConversionFilter{StartDate: &start})
		assert.NoError(t, err)
		assert.Zero(t, stats.TotalConversions)
		assert.True(t, stats.AverageRate.IsZero())
	})

	t.Run("popular pairs ranked by count", func(t *testing.T) {
		pairs, err := reader.PopularPairs(ctx, models.ConversionFilter{}, 10)
		assert.NoError(t, err)
		assert.Len(t, pairs, 3)
		assert.Equal(t, "USD", pairs[0].FromCurrency)
		assert.Equal(t, "EUR", pairs[0].ToCurrency)
		assert.Equal(t, 2, pairs[0].ConversionCount)
		assert.True(t, pairs[0].TotalAmount.Equal(decimal.RequireFromString("300")))
	})

	t.Run("popular pairs honors limit", func(t *testing.T) {
		pairs, err := reader.PopularPairs(ctx, models.ConversionFilter{}, 1)
		assert.NoError(t, err)
		assert.Len(t, pairs, 1)
	})

	t.Run("daily buckets", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

		buckets, err := reader.DailyBuckets(ctx, start, end)
		assert.NoError(t, err)
		assert.Len(t, buckets, 2)
		assert.Equal(t, 1, buckets[0].Day)
		assert.Equal(t, 2, buckets[0].Conversions)
		assert.True(t, buckets[0].Amount.Equal(decimal.RequireFromString("300")))
		assert.Equal(t, 2, buckets[1].Day)
	})
}

// The dynamic WHERE builder is checked against sqlmock so the placeholder
// numbering is pinned without a live store.
func TestConversionRepository_QueryShape(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	reader := NewConversionReadRepository(db)
	ctx := context.Background()

	t.Run("find without filters", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM conversions ORDER BY conversion_date DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(50, 0).
			WillReturnRows(sqlmock.NewRows([]string{"conversion_id"}))

		_, err := reader.Find(ctx, models.ConversionFilter{Limit: 50})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("find with every filter", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(24 * time.Hour)

		mock.ExpectQuery(`SELECT .+ FROM conversions WHERE from_currency = \$1 AND to_currency = \$2 AND conversion_date >= \$3 AND conversion_date <= \$4 ORDER BY conversion_date DESC LIMIT \$5 OFFSET \$6`).
			WithArgs("USD", "EUR", start, end, 20, 10).
			WillReturnRows(sqlmock.NewRows([]string{"conversion_id"}))

		_, err := reader.Find(ctx, models.ConversionFilter{
			FromCurrency: "USD",
			ToCurrency:   "EUR",
			StartDate:    &start,
			EndDate:      &end,
			Limit:        20,
			Skip:         10,
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stats propagates query errors", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_conversions`).
			WillReturnError(context.DeadlineExceeded)

		_, err := reader.Stats(ctx, models.ConversionFilter{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
