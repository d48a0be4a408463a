package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambix/currency-conversion-api/internal/models"
	"github.com/cambix/currency-conversion-api/internal/services"
)

func timeMustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts
}

func TestReportService_Daily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockReportReader(ctrl)
	svc := services.NewReportService(reader)
	ctx := context.Background()

	t.Run("aggregates one UTC day", func(t *testing.T) {
		date := timeMustParse(t, "2026-08-15T13:45:00Z")
		wantStart := timeMustParse(t, "2026-08-15T00:00:00Z")

		stats := &models.ConversionStats{
			TotalConversions:     4,
			TotalOriginalAmount:  decimal.RequireFromString("400"),
			TotalConvertedAmount: decimal.RequireFromString("340"),
			AverageRate:          decimal.RequireFromString("0.85"),
			UniqueCurrencyPairs:  2,
		}
		pairs := []models.PopularPair{
			{FromCurrency: "USD", ToCurrency: "EUR", ConversionCount: 3},
		}

		reader.EXPECT().Ping(gomock.Any()).Return(nil)
		reader.EXPECT().
			Stats(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f models.ConversionFilter) (*models.ConversionStats, error) {
				assert.Equal(t, wantStart, *f.StartDate)
				assert.True(t, f.EndDate.Before(wantStart.Add(24*time.Hour)))
				return stats, nil
			})
		reader.EXPECT().PopularPairs(gomock.Any(), gomock.Any(), 5).Return(pairs, nil)

		report, err := svc.Daily(ctx, date)
		assert.NoError(t, err)
		assert.Equal(t, "2026-08-15", report.Date)
		assert.Equal(t, 4, report.Conversions)
		assert.Equal(t, 2, report.Statistics.UniqueCurrencyPairs)
		assert.Len(t, report.PopularPairs, 1)
	})

	t.Run("unreachable store serves empty report", func(t *testing.T) {
		reader.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		report, err := svc.Daily(ctx, timeMustParse(t, "2026-08-15T00:00:00Z"))
		assert.NoError(t, err)
		assert.Zero(t, report.Statistics.TotalConversions)
		assert.Empty(t, report.PopularPairs)
	})
}

func TestReportService_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockReportReader(ctrl)
	svc := services.NewReportService(reader)
	ctx := context.Background()

	t.Run("month out of range fails validation", func(t *testing.T) {
		_, err := svc.Monthly(ctx, 2026, 13)
		_, ok := services.AsValidationError(err)
		assert.True(t, ok)
	})

	t.Run("aggregates buckets and top pairs", func(t *testing.T) {
		buckets := []models.DailyBucket{{Day: 1, Conversions: 2}}
		pairs := []models.PopularPair{{FromCurrency: "USD", ToCurrency: "EUR"}}

		reader.EXPECT().Ping(gomock.Any()).Return(nil)
		reader.EXPECT().
			DailyBuckets(gomock.Any(), timeMustParse(t, "2026-08-01T00:00:00Z"), gomock.Any()).
			Return(buckets, nil)
		reader.EXPECT().PopularPairs(gomock.Any(), gomock.Any(), 10).Return(pairs, nil)

		report, err := svc.Monthly(ctx, 2026, 8)
		assert.NoError(t, err)
		assert.Equal(t, "August", report.MonthName)
		assert.Len(t, report.DailyStats, 1)
		assert.Len(t, report.TopPairs, 1)
	})

	t.Run("unreachable store serves empty report", func(t *testing.T) {
		reader.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		report, err := svc.Monthly(ctx, 2026, 8)
		assert.NoError(t, err)
		assert.Empty(t, report.DailyStats)
		assert.Empty(t, report.TopPairs)
	})
}

func TestReportService_RenderPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewReportService(services.NewMockReportReader(ctrl))

	report := &models.DailyReport{
		Date:        "2026-08-15",
		Conversions: 2,
		Statistics: models.ReportStatistics{
			TotalConversions:     2,
			TotalOriginalAmount:  decimal.RequireFromString("200"),
			TotalConvertedAmount: decimal.RequireFromString("170"),
			AverageRate:          decimal.RequireFromString("0.85"),
			UniqueCurrencyPairs:  1,
		},
		PopularPairs: []models.PopularPair{
			{FromCurrency: "USD", ToCurrency: "EUR", ConversionCount: 2, TotalAmount: decimal.RequireFromString("200")},
		},
	}

	pdfBytes, err := svc.RenderPDF(report)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
	assert.Greater(t, len(pdfBytes), 1000)
}

func TestReportService_RenderPDF_EmptyDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewReportService(services.NewMockReportReader(ctrl))

	pdfBytes, err := svc.RenderPDF(&models.DailyReport{
		Date:         "2026-08-15",
		PopularPairs: []models.PopularPair{},
	})
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}
