package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambix/currency-conversion-api/internal/models"
	"github.com/cambix/currency-conversion-api/internal/repositories"
	"github.com/cambix/currency-conversion-api/internal/services"
)

type convertMocks struct {
	reader   *services.MockConversionReader
	writer   *services.MockConversionWriter
	rates    *services.MockRateResolver
	notifier *services.MockConversionNotifier
}

func newConvertService(ctrl *gomock.Controller) (*services.ConvertService, convertMocks) {
	m := convertMocks{
		reader:   services.NewMockConversionReader(ctrl),
		writer:   services.NewMockConversionWriter(ctrl),
		rates:    services.NewMockRateResolver(ctrl),
		notifier: services.NewMockConversionNotifier(ctrl),
	}
	svc := services.NewConvertService(m.reader, m.writer, m.rates, m.notifier)
	return svc, m
}

func usdEurRate(rate string) *models.Rate {
	return &models.Rate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         decimal.RequireFromString(rate),
		Source:       "manual",
		IsActive:     true,
	}
}

func TestConvertService_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConvertService(ctrl)
	ctx := context.Background()
	meta := models.RequesterMeta{IP: "203.0.113.9", UserAgent: "test-agent"}

	t.Run("rounds half away from zero", func(t *testing.T) {
		// 100 x 0.85 = 85.00
		m.rates.EXPECT().ResolveRateForPair(gomock.Any(), "USD", "EUR").Return(usdEurRate("0.85"), nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.Conversion) (*models.Conversion, error) {
				return &c, nil
			})
		m.notifier.EXPECT().PublishConversion(gomock.Any(), gomock.Any())

		result, err := svc.Convert(ctx, "usd", "eur", decimal.RequireFromString("100"), meta)
		assert.NoError(t, err)
		assert.Equal(t, "85.00", result.ConvertedAmount.String())
		assert.True(t, result.Persisted)

		// 100.75 x 0.85 = 85.6375 -> 85.64
		m.rates.EXPECT().ResolveRateForPair(gomock.Any(), "USD", "EUR").Return(usdEurRate("0.85"), nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.Conversion) (*models.Conversion, error) {
				return &c, nil
			})
		m.notifier.EXPECT().PublishConversion(gomock.Any(), gomock.Any())

		result, err = svc.Convert(ctx, "USD", "EUR", decimal.RequireFromString("100.75"), meta)
		assert.NoError(t, err)
		assert.Equal(t, "85.64", result.ConvertedAmount.String())
	})

	t.Run("collects every validation failure", func(t *testing.T) {
		_, err := svc.Convert(ctx, "usdollar", "e", decimal.RequireFromString("-5"), meta)

		verr, ok := services.AsValidationError(err)
		assert.True(t, ok)
		assert.Len(t, verr.Details, 3)
	})

	t.Run("rejects more than 2 decimal places", func(t *testing.T) {
		_, err := svc.Convert(ctx, "USD", "EUR", decimal.RequireFromString("10.005"), meta)

		verr, ok := services.AsValidationError(err)
		assert.True(t, ok)
		assert.Len(t, verr.Details, 1)
	})

	t.Run("unreachable store returns unpersisted result", func(t *testing.T) {
		m.rates.EXPECT().ResolveRateForPair(gomock.Any(), "USD", "EUR").Return(usdEurRate("0.85"), nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))
		m.notifier.EXPECT().BroadcastConversion(gomock.Any())

		result, err := svc.Convert(ctx, "USD", "EUR", decimal.RequireFromString("100"), meta)
		assert.NoError(t, err)
		assert.Equal(t, "demo", result.ID)
		assert.False(t, result.Persisted)
		assert.Equal(t, "85.00", result.ConvertedAmount.String())
	})

	t.Run("missing requester metadata defaults to unknown", func(t *testing.T) {
		m.rates.EXPECT().ResolveRateForPair(gomock.Any(), "USD", "EUR").Return(usdEurRate("0.85"), nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.Conversion) (*models.Conversion, error) {
				assert.Equal(t, "unknown", c.UserIP)
				assert.Equal(t, "unknown", c.UserAgent)
				return &c, nil
			})
		m.notifier.EXPECT().PublishConversion(gomock.Any(), gomock.Any())

		_, err := svc.Convert(ctx, "USD", "EUR", decimal.RequireFromString("1"), models.RequesterMeta{})
		assert.NoError(t, err)
	})

	t.Run("unresolvable rate propagates", func(t *testing.T) {
		m.rates.EXPECT().ResolveRateForPair(gomock.Any(), "USD", "XXX").
			Return(nil, services.ErrRateUnavailable)

		_, err := svc.Convert(ctx, "USD", "XXX", decimal.RequireFromString("100"), meta)
		assert.ErrorIs(t, err, services.ErrRateUnavailable)
	})
}

func TestConvertService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConvertService(ctrl)
	ctx := context.Background()

	t.Run("unreachable store serves demo page", func(t *testing.T) {
		m.reader.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		page, err := svc.Find(ctx, models.ConversionFilter{})
		assert.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, "store not connected - using demo data", page.Message)
	})

	t.Run("end date before start date fails validation", func(t *testing.T) {
		start := timeMustParse(t, "2026-08-10T00:00:00Z")
		end := timeMustParse(t, "2026-08-01T00:00:00Z")

		_, err := svc.Find(ctx, models.ConversionFilter{StartDate: &start, EndDate: &end})
		_, ok := services.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestConvertService_Patch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newConvertService(ctrl)

	err := svc.Patch(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrPatchNotAllowed)
}

func TestConvertService_GetRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConvertService(ctrl)
	ctx := context.Background()
	id := uuid.New()

	t.Run("unknown get maps to ErrConversionNotFound", func(t *testing.T) {
		m.reader.EXPECT().Get(gomock.Any(), id).Return(nil, repositories.ErrNotFound)

		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrConversionNotFound)
	})

	t.Run("unknown delete maps to ErrConversionNotFound", func(t *testing.T) {
		m.writer.EXPECT().Delete(gomock.Any(), id).Return(repositories.ErrNotFound)

		err := svc.Remove(ctx, id)
		assert.ErrorIs(t, err, services.ErrConversionNotFound)
	})

	t.Run("successful delete", func(t *testing.T) {
		m.writer.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.Remove(ctx, id))
	})
}

func TestConvertService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConvertService(ctrl)
	ctx := context.Background()

	t.Run("unreachable store serves zero stats", func(t *testing.T) {
		m.reader.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		stats, err := svc.Stats(ctx, models.ConversionFilter{})
		assert.NoError(t, err)
		assert.Zero(t, stats.TotalConversions)
	})

	t.Run("passes filter through", func(t *testing.T) {
		expected := &models.ConversionStats{TotalConversions: 3}

		m.reader.EXPECT().Ping(gomock.Any()).Return(nil)
		m.reader.EXPECT().
			Stats(gomock.Any(), models.ConversionFilter{FromCurrency: "USD"}).
			Return(expected, nil)

		stats, err := svc.Stats(ctx, models.ConversionFilter{FromCurrency: "usd"})
		assert.NoError(t, err)
		assert.Equal(t, expected, stats)
	})
}

func TestConvertService_PopularPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConvertService(ctrl)
	ctx := context.Background()

	t.Run("defaults limit to 10", func(t *testing.T) {
		m.reader.EXPECT().Ping(gomock.Any()).Return(nil)
		m.reader.EXPECT().
			PopularPairs(gomock.Any(), models.ConversionFilter{}, 10).
			Return([]models.PopularPair{}, nil)

		_, err := svc.PopularPairs(ctx, 0)
		assert.NoError(t, err)
	})

	t.Run("unreachable store serves empty ranking", func(t *testing.T) {
		m.reader.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		pairs, err := svc.PopularPairs(ctx, 5)
		assert.NoError(t, err)
		assert.Empty(t, pairs)
	})
}
