package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rates (
			rate_id       UUID PRIMARY KEY,
			from_currency TEXT           NOT NULL,
			to_currency   TEXT           NOT NULL,
			rate          NUMERIC(20, 8) NOT NULL CHECK (rate > 0),
			source        TEXT           NOT NULL,
			last_updated  TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			is_active     BOOLEAN        NOT NULL DEFAULT TRUE,
			created_at    TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ    NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_rates_pair ON rates (from_currency, to_currency);`,
		`CREATE TABLE IF NOT EXISTS conversions (
			conversion_id    UUID PRIMARY KEY,
			from_currency    TEXT           NOT NULL,
			to_currency      TEXT           NOT NULL,
			original_amount  NUMERIC(20, 2) NOT NULL CHECK (original_amount >= 0),
			converted_amount NUMERIC(20, 2) NOT NULL CHECK (converted_amount >= 0),
			rate             NUMERIC(20, 8) NOT NULL CHECK (rate > 0),
			rate_source      TEXT           NOT NULL,
			conversion_date  TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			user_ip          TEXT,
			user_agent       TEXT,
			created_at       TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ    NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func mustUpsert(t *testing.T, writer *RateWriteRepository, from, to, rate, source string) *models.Rate {
	t.Helper()
	saved, err := writer.Upsert(context.Background(), models.RateUpsert{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         decimal.RequireFromString(rate),
		Source:       source,
	})
	assert.NoError(t, err)
	return saved
}

func TestRateWriteRepository_Upsert(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewRateWriteRepository(db)
	reader := NewRateReadRepository(db)

	t.Run("insert creates an active rate", func(t *testing.T) {
		saved := mustUpsert(t, writer, "USD", "EUR", "0.85", "manual")
		assert.True(t, saved.IsActive)
		assert.True(t, saved.Rate.Equal(decimal.RequireFromString("0.85")))
	})

	t.Run("same pair replaces in place", func(t *testing.T) {
		first := mustUpsert(t, writer, "USD", "JPY", "150.00", "manual")
		second := mustUpsert(t, writer, "USD", "JPY", "151.25", "openexchangerates")

		assert.Equal(t, first.RateID, second.RateID)
		assert.True(t, second.Rate.Equal(decimal.RequireFromString("151.25")))
		assert.Equal(t, "openexchangerates", second.Source)
		assert.True(t, second.LastUpdated.After(first.LastUpdated) || second.LastUpdated.Equal(first.LastUpdated))

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM rates WHERE from_currency = 'USD' AND to_currency = 'JPY'"))
		assert.Equal(t, 1, count)
	})

	t.Run("upsert reactivates a deactivated pair slot", func(t *testing.T) {
		saved := mustUpsert(t, writer, "GBP", "USD", "1.27", "manual")

		_, err := writer.Deactivate(ctx, saved.RateID)
		assert.NoError(t, err)

		again := mustUpsert(t, writer, "GBP", "USD", "1.30", "manual")
		assert.Equal(t, saved.RateID, again.RateID)
		assert.True(t, again.IsActive)

		rate, err := reader.GetActiveByPair(ctx, "GBP", "USD")
		assert.NoError(t, err)
		assert.True(t, rate.Rate.Equal(decimal.RequireFromString("1.30")))
	})
}

func TestRateWriteRepository_UpdateDeactivate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewRateWriteRepository(db)
	saved := mustUpsert(t, writer, "USD", "EUR", "0.85", "manual")

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		newRate := decimal.RequireFromString("0.87")
		updated, err := writer.Update(ctx, saved.RateID, models.RatePatch{Rate: &newRate})
		assert.NoError(t, err)
		assert.True(t, updated.Rate.Equal(newRate))
		assert.Equal(t, "manual", updated.Source)
		assert.True(t, updated.IsActive)
	})

	t.Run("update of unknown id", func(t *testing.T) {
		_, err := writer.Update(ctx, uuid.New(), models.RatePatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deactivate keeps the row", func(t *testing.T) {
		deactivated, err := writer.Deactivate(ctx, saved.RateID)
		assert.NoError(t, err)
		assert.False(t, deactivated.IsActive)

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM rates WHERE rate_id = $1", saved.RateID))
		assert.Equal(t, 1, count)
	})

	t.Run("deactivate unknown id", func(t *testing.T) {
		_, err := writer.Deactivate(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRateReadRepository_Find(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewRateWriteRepository(db)
	reader := NewRateReadRepository(db)

	mustUpsert(t, writer, "USD", "EUR", "0.85", "manual")
	mustUpsert(t, writer, "USD", "JPY", "150.25", "openexchangerates")
	mustUpsert(t, writer, "BTC", "USD", "45000", "coingecko")
	inactive := mustUpsert(t, writer, "EUR", "USD", "1.18", "manual")
	_, err := writer.Deactivate(ctx, inactive.RateID)
	assert.NoError(t, err)

	t.Run("only active rates", func(t *testing.T) {
		rates, err := reader.Find(ctx, models.RateFilter{Limit: 50})
		assert.NoError(t, err)
		assert.Len(t, rates, 3)
	})

	t.Run("filter by from currency", func(t *testing.T) {
		rates, err := reader.Find(ctx, models.RateFilter{FromCurrency: "USD", Limit: 50})
		assert.NoError(t, err)
		assert.Len(t, rates, 2)
	})

	t.Run("filter by source", func(t *testing.T) {
		rates, err := reader.Find(ctx, models.RateFilter{Source: "coingecko", Limit: 50})
		assert.NoError(t, err)
		assert.Len(t, rates, 1)
		assert.Equal(t, "BTC", rates[0].FromCurrency)
	})

	t.Run("pagination", func(t *testing.T) {
		page1, err := reader.Find(ctx, models.RateFilter{Limit: 2})
		assert.NoError(t, err)
		assert.Len(t, page1, 2)

		page2, err := reader.Find(ctx, models.RateFilter{Limit: 2, Skip: 2})
		assert.NoError(t, err)
		assert.Len(t, page2, 1)
	})
}

func TestRateReadRepository_GetActiveByPair(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewRateWriteRepository(db)
	reader := NewRateReadRepository(db)

	mustUpsert(t, writer, "USD", "EUR", "0.85", "manual")

	t.Run("existing pair", func(t *testing.T) {
		rate, err := reader.GetActiveByPair(ctx, "USD", "EUR")
		assert.NoError(t, err)
		assert.True(t, rate.Rate.Equal(decimal.RequireFromString("0.85")))
	})

	t.Run("pairs are directional", func(t *testing.T) {
		_, err := reader.GetActiveByPair(ctx, "EUR", "USD")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
