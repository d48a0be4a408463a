package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/cambix/currency-conversion-api/internal/models"
	"github.com/cambix/currency-conversion-api/internal/services"
)

const mixedCSV = `fromCurrency,toCurrency,rate,source
USD,EUR,0.85,manual
EUR,USD,1.18,manual
USD,MXN,18.50,manual
BTC,USD,45000,coingecko
USD,JPY,150.25,openexchangerates
USD,EUR,not-a-number,manual
`

func TestCSVImportService_Template(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewCSVImportService(services.NewMockRateCreator(ctrl))

	template := svc.Template()
	assert.True(t, strings.HasPrefix(template, "fromCurrency,toCurrency,rate,source\n"))
	assert.Contains(t, template, "USD,EUR,0.85,manual")
}

func TestCSVImportService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := services.NewMockRateCreator(ctrl)
	svc := services.NewCSVImportService(creator)
	ctx := context.Background()

	t.Run("five valid rows and one invalid", func(t *testing.T) {
		creator.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.RateUpsert) (*models.Rate, error) {
				return &models.Rate{
					FromCurrency: u.FromCurrency, ToCurrency: u.ToCurrency,
					Rate: u.Rate, Source: u.Source, IsActive: true,
				}, nil
			}).Times(5)

		result, err := svc.Import(ctx, strings.NewReader(mixedCSV))
		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 6, result.TotalRows)
		assert.Equal(t, 5, result.ProcessedRows)
		assert.Equal(t, 5, result.SavedRates)
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, 6, result.Errors[0].Row)
		assert.Equal(t, 1, result.Summary.Errors)
	})

	t.Run("save failure is skipped, not fatal", func(t *testing.T) {
		csv := "fromCurrency,toCurrency,rate,source\nUSD,EUR,0.85,manual\nEUR,USD,1.18,manual\n"

		creator.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))
		creator.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&models.Rate{}, nil)

		result, err := svc.Import(ctx, strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Equal(t, 2, result.ProcessedRows)
		assert.Equal(t, 1, result.SavedRates)
	})

	t.Run("empty file", func(t *testing.T) {
		result, err := svc.Import(ctx, strings.NewReader(""))
		assert.NoError(t, err)
		assert.Zero(t, result.TotalRows)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing source defaults to manual", func(t *testing.T) {
		csv := "fromCurrency,toCurrency,rate,source\nUSD,EUR,0.85,\n"

		creator.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.RateUpsert) (*models.Rate, error) {
				assert.Equal(t, "manual", u.Source)
				return &models.Rate{}, nil
			})

		_, err := svc.Import(ctx, strings.NewReader(csv))
		assert.NoError(t, err)
	})
}

func TestCSVImportService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewCSVImportService(services.NewMockRateCreator(ctrl))

	t.Run("dry run never writes", func(t *testing.T) {
		result, err := svc.Validate(strings.NewReader(mixedCSV))
		assert.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, 6, result.TotalRows)
		assert.Equal(t, 5, result.ValidRows)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("all rows valid", func(t *testing.T) {
		csv := "fromCurrency,toCurrency,rate,source\nUSD,EUR,0.85,manual\n"

		result, err := svc.Validate(strings.NewReader(csv))
		assert.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 1, result.ValidRows)
	})

	t.Run("bad rows carry row data", func(t *testing.T) {
		csv := "fromCurrency,toCurrency,rate,source\n,EUR,0.85,manual\n"

		result, err := svc.Validate(strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Error, "missing required fields")
		assert.Equal(t, "EUR", result.Errors[0].Data["toCurrency"])
	})
}
