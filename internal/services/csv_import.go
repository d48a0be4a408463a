package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

// csvTemplate is the sample file served by the template endpoint.
const csvTemplate = `fromCurrency,toCurrency,rate,source
USD,EUR,0.85,manual
EUR,USD,1.18,manual
USD,MXN,18.50,manual
BTC,USD,45000,coingecko
ETH,USD,3000,coingecko
EUR,JPY,160.50,openexchangerates
USD,JPY,150.25,openexchangerates
`

// RateCreator upserts a rate per the rate service contract.
type RateCreator interface {
	Create(ctx context.Context, upsert models.RateUpsert) (*models.Rate, error)
}

// CSVImportService parses rate CSV files. Each row is validated exactly like
// a rate-creation request; invalid rows are collected as per-row errors
// without aborting the batch.
type CSVImportService struct {
	rates RateCreator
}

func NewCSVImportService(rates RateCreator) *CSVImportService {
	return &CSVImportService{rates: rates}
}

// Template returns the sample CSV with the expected header.
func (s *CSVImportService) Template() string {
	return csvTemplate
}

// parsedRow pairs a validated upsert with its source row number.
type parsedRow struct {
	row    int
	upsert models.RateUpsert
}

// parse reads the whole file, splitting rows into valid upserts and errors.
func (s *CSVImportService) parse(r io.Reader) (rows []parsedRow, rowErrs []models.CSVRowError, total int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, 0, nil
	}
	if err != nil {
		return nil, nil, 0, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rowNumber := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, rowNumber, err
		}
		rowNumber++

		data := make(map[string]string, len(header))
		for i, field := range record {
			if i < len(header) {
				data[header[i]] = strings.TrimSpace(field)
			}
		}

		upsert, rowErr := parseRateRow(data, rowNumber)
		if rowErr != nil {
			rowErrs = append(rowErrs, models.CSVRowError{Row: rowNumber, Error: rowErr.Error(), Data: data})
			continue
		}
		rows = append(rows, parsedRow{row: rowNumber, upsert: upsert})
	}

	return rows, rowErrs, rowNumber, nil
}

// parseRateRow validates one CSV row with the rate-creation rules.
func parseRateRow(data map[string]string, rowNumber int) (models.RateUpsert, error) {
	fromCurrency := models.NormalizeCurrency(data["fromCurrency"])
	toCurrency := models.NormalizeCurrency(data["toCurrency"])
	rateStr := data["rate"]

	if fromCurrency == "" || toCurrency == "" || rateStr == "" {
		return models.RateUpsert{}, fmt.Errorf("row %d: missing required fields (fromCurrency, toCurrency, rate)", rowNumber)
	}
	if !currencyCodeRe.MatchString(fromCurrency) {
		return models.RateUpsert{}, fmt.Errorf("row %d: invalid from currency code: %s", rowNumber, data["fromCurrency"])
	}
	if !currencyCodeRe.MatchString(toCurrency) {
		return models.RateUpsert{}, fmt.Errorf("row %d: invalid to currency code: %s", rowNumber, data["toCurrency"])
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil || !rate.IsPositive() {
		return models.RateUpsert{}, fmt.Errorf("row %d: invalid rate: %s", rowNumber, rateStr)
	}

	source := strings.ToLower(data["source"])
	if source == "" {
		source = models.SourceManual
	}
	if !models.IsValidRateSource(source) {
		return models.RateUpsert{}, fmt.Errorf("row %d: invalid source: %s. Must be: %s, %s, %s",
			rowNumber, data["source"], models.SourceCoinGecko, models.SourceOpenExchangeRates, models.SourceManual)
	}

	return models.RateUpsert{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         rate,
		Source:       source,
	}, nil
}

// Import parses the file and upserts every valid row. Rows that fail to save
// are logged and skipped; the batch never aborts.
func (s *CSVImportService) Import(ctx context.Context, r io.Reader) (*models.CSVImportResult, error) {
	rows, rowErrs, total, err := s.parse(r)
	if err != nil {
		return nil, err
	}

	saved := 0
	for _, row := range rows {
		if _, err := s.rates.Create(ctx, row.upsert); err != nil {
			logger.Log.Errorw("failed to save imported rate",
				"row", row.row,
				"from", row.upsert.FromCurrency,
				"to", row.upsert.ToCurrency,
				"error", err,
			)
			continue
		}
		saved++
	}

	if rowErrs == nil {
		rowErrs = []models.CSVRowError{}
	}

	return &models.CSVImportResult{
		Success:       true,
		TotalRows:     total,
		ProcessedRows: len(rows),
		SavedRates:    saved,
		Errors:        rowErrs,
		Summary: models.CSVImportSummary{
			Total:     total,
			Processed: len(rows),
			Saved:     saved,
			Errors:    len(rowErrs),
		},
	}, nil
}

// Validate dry-runs the file without touching the store.
func (s *CSVImportService) Validate(r io.Reader) (*models.CSVValidateResult, error) {
	rows, rowErrs, total, err := s.parse(r)
	if err != nil {
		return nil, err
	}

	if rowErrs == nil {
		rowErrs = []models.CSVRowError{}
	}

	return &models.CSVValidateResult{
		Valid:     len(rowErrs) == 0,
		TotalRows: total,
		ValidRows: len(rows),
		Errors:    rowErrs,
	}, nil
}
