package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// DailyReporter defines the daily aggregation the service must implement.
type DailyReporter interface {
	Daily(ctx context.Context, date time.Time) (*models.DailyReport, error)
}

// ReportRenderer builds the daily report and renders it as a PDF.
type ReportRenderer interface {
	Daily(ctx context.Context, date time.Time) (*models.DailyReport, error)
	RenderPDF(report *models.DailyReport) ([]byte, error)
}

// MonthlyReporter defines the monthly aggregation the service must implement.
type MonthlyReporter interface {
	Monthly(ctx context.Context, year, month int) (*models.MonthlyReport, error)
}

// reportDate parses the optional date query parameter, defaulting to today.
func reportDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// NewDailyReportHandler returns an HTTP handler serving the daily report as
// JSON.
// @Summary Daily conversion report
// @Description Aggregates one UTC calendar day of conversions: statistics plus the top 5 currency pairs.
// @Tags report
// @Produce json
// @Param date query string false "Report day (YYYY-MM-DD), default today"
// @Success 200 {object} models.DailyReport "Daily report"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Router /report [get]
func NewDailyReportHandler(reporter DailyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := reportDate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}

		report, err := reporter.Daily(r.Context(), date)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewDailyReportPDFHandler returns an HTTP handler rendering the daily report
// as a PDF attachment.
// @Summary Generate the daily report PDF
// @Description Builds the daily report and returns it as an application/pdf attachment.
// @Tags report
// @Produce application/pdf
// @Param date query string false "Report day (YYYY-MM-DD), default today"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Router /report [post]
func NewDailyReportPDFHandler(renderer ReportRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := reportDate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}

		report, err := renderer.Daily(r.Context(), date)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		pdfBytes, err := renderer.RenderPDF(report)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=conversion_report_%s.pdf", report.Date))
		w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
		w.WriteHeader(http.StatusOK)
		w.Write(pdfBytes)
	}
}

// NewMonthlyReportHandler returns an HTTP handler serving the monthly report.
// @Summary Monthly conversion report
// @Description Aggregates a calendar month into per-day buckets plus the top 10 currency pairs.
// @Tags report
// @Produce json
// @Param year query int false "Report year, default current"
// @Param month query int false "Report month 1-12, default current"
// @Success 200 {object} models.MonthlyReport "Monthly report"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /report/monthly [get]
func NewMonthlyReportHandler(reporter MonthlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()

		year := now.Year()
		if raw := r.URL.Query().Get("year"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid year")
				return
			}
			year = n
		}

		month := int(now.Month())
		if raw := r.URL.Query().Get("month"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid month")
				return
			}
			month = n
		}

		report, err := reporter.Monthly(r.Context(), year, month)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}
