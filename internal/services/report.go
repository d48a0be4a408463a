package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

// ReportReader defines the aggregation reads behind reports.
type ReportReader interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context, filter models.ConversionFilter) (*models.ConversionStats, error)
	PopularPairs(ctx context.Context, filter models.ConversionFilter, limit int) ([]models.PopularPair, error)
	DailyBuckets(ctx context.Context, start, end time.Time) ([]models.DailyBucket, error)
}

// ReportService aggregates the conversion log into daily and monthly reports
// and renders them as PDF documents. Reports are read-only snapshots: the
// queries behind one report are not atomic with respect to concurrent writes.
type ReportService struct {
	reader ReportReader
}

func NewReportService(reader ReportReader) *ReportService {
	return &ReportService{reader: reader}
}

// Daily aggregates the UTC calendar day containing date. An unreachable
// store yields an explicit empty report, never an error.
func (s *ReportService) Daily(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	report := &models.DailyReport{
		Date:         start.Format("2006-01-02"),
		PopularPairs: []models.PopularPair{},
	}

	if err := s.reader.Ping(ctx); err != nil {
		logger.Log.Warnw("store unreachable, serving empty daily report", "date", report.Date, "error", err)
		return report, nil
	}

	filter := models.ConversionFilter{StartDate: &start, EndDate: &end}

	stats, err := s.reader.Stats(ctx, filter)
	if err != nil {
		return nil, err
	}

	pairs, err := s.reader.PopularPairs(ctx, filter, 5)
	if err != nil {
		return nil, err
	}

	report.Conversions = stats.TotalConversions
	report.Statistics = models.ReportStatistics{
		TotalConversions:     stats.TotalConversions,
		TotalOriginalAmount:  stats.TotalOriginalAmount,
		TotalConvertedAmount: stats.TotalConvertedAmount,
		AverageRate:          stats.AverageRate,
		UniqueCurrencyPairs:  stats.UniqueCurrencyPairs,
	}
	report.PopularPairs = pairs
	return report, nil
}

// Monthly aggregates per-day buckets and the top pairs of a calendar month.
func (s *ReportService) Monthly(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, newValidationError(validationDetail("month", "must be between 1 and 12"))
	}

	report := &models.MonthlyReport{
		Year:       year,
		Month:      month,
		MonthName:  time.Month(month).String(),
		DailyStats: []models.DailyBucket{},
		TopPairs:   []models.PopularPair{},
	}

	if err := s.reader.Ping(ctx); err != nil {
		logger.Log.Warnw("store unreachable, serving empty monthly report",
			"year", year, "month", month, "error", err)
		return report, nil
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	buckets, err := s.reader.DailyBuckets(ctx, start, end)
	if err != nil {
		return nil, err
	}

	pairs, err := s.reader.PopularPairs(ctx, models.ConversionFilter{StartDate: &start, EndDate: &end}, 10)
	if err != nil {
		return nil, err
	}

	report.DailyStats = buckets
	report.TopPairs = pairs
	return report, nil
}

// RenderPDF lays the daily report out as a portable document: header, date,
// statistics table, top-pairs table and a generation timestamp. A notice is
// included when the day has no conversions.
func (s *ReportService) RenderPDF(report *models.DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 14, "Currency Conversion Daily Report", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(52, 73, 94)
	pdf.CellFormat(0, 10, "Date: "+report.Date, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 9, "Summary Statistics", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	statRow := func(metric, value string) {
		pdf.CellFormat(95, 8, metric, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 8, value, "1", 1, "L", false, 0, "")
	}
	statRow("Metric", "Value")
	statRow("Total Conversions", fmt.Sprintf("%d", report.Statistics.TotalConversions))
	statRow("Total Original Amount", "$"+report.Statistics.TotalOriginalAmount.StringFixed(2))
	statRow("Total Converted Amount", "$"+report.Statistics.TotalConvertedAmount.StringFixed(2))
	statRow("Average Rate", report.Statistics.AverageRate.StringFixed(4))
	statRow("Unique Currency Pairs", fmt.Sprintf("%d", report.Statistics.UniqueCurrencyPairs))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 9, "Most Popular Currency Pairs", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pairRow := func(from, to, count, amount string) {
		pdf.CellFormat(47.5, 8, from, "1", 0, "L", false, 0, "")
		pdf.CellFormat(47.5, 8, to, "1", 0, "L", false, 0, "")
		pdf.CellFormat(47.5, 8, count, "1", 0, "L", false, 0, "")
		pdf.CellFormat(47.5, 8, amount, "1", 1, "L", false, 0, "")
	}
	pairRow("From", "To", "Conversions", "Total Amount")
	for _, pair := range report.PopularPairs {
		pairRow(pair.FromCurrency, pair.ToCurrency,
			fmt.Sprintf("%d", pair.ConversionCount),
			"$"+pair.TotalAmount.StringFixed(2))
	}
	pdf.Ln(8)

	if report.Statistics.TotalConversions == 0 {
		pdf.SetFont("Arial", "I", 12)
		pdf.SetTextColor(231, 76, 60)
		pdf.CellFormat(0, 9, "Note: This is a demo report. No conversion data available.", "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(149, 165, 166)
	pdf.CellFormat(0, 8, "Report generated on "+time.Now().UTC().Format("2006-01-02 15:04:05 MST"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
