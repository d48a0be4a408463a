package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// maxCSVUploadBytes bounds the in-memory part of a multipart upload.
const maxCSVUploadBytes = 10 << 20

// CSVTemplater defines the sample file read the service must implement.
type CSVTemplater interface {
	Template() string
}

// CSVImporter defines the batch upsert the service must implement.
type CSVImporter interface {
	Import(ctx context.Context, r io.Reader) (*models.CSVImportResult, error)
}

// CSVValidator defines the dry-run the service must implement.
type CSVValidator interface {
	Validate(r io.Reader) (*models.CSVValidateResult, error)
}

// csvFile extracts the uploaded file from the multipart form.
func csvFile(r *http.Request) (io.ReadCloser, bool) {
	if err := r.ParseMultipartForm(maxCSVUploadBytes); err != nil {
		return nil, false
	}
	file, _, err := r.FormFile("csvFile")
	if err != nil {
		return nil, false
	}
	return file, true
}

// NewCSVTemplateHandler returns an HTTP handler serving the sample CSV.
// @Summary Download the CSV template
// @Description Returns a sample rates CSV with the expected header as a text/csv attachment.
// @Tags csv
// @Produce text/csv
// @Success 200 {string} string "CSV template"
// @Router /csv/template [get]
func NewCSVTemplateHandler(templater CSVTemplater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := templater.Template()
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=rates_template.csv")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	}
}

// NewCSVImportHandler returns an HTTP handler importing rates from a CSV.
// @Summary Import rates from CSV
// @Description Parses the uploaded file and upserts every valid row. Invalid rows are collected per-row without aborting the batch.
// @Tags csv
// @Accept multipart/form-data
// @Produce json
// @Param csvFile formData file true "Rates CSV"
// @Success 200 {object} models.CSVImportResult "Import result"
// @Failure 400 {object} handlers.ErrorResponse "Missing or unreadable file"
// @Router /csv/import [post]
func NewCSVImportHandler(importer CSVImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := csvFile(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "No CSV file uploaded, expected multipart field \"csvFile\"")
			return
		}
		defer file.Close()

		result, err := importer.Import(r.Context(), file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Failed to parse CSV file")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewCSVValidateHandler returns an HTTP handler dry-running a CSV import.
// @Summary Validate a rates CSV
// @Description Checks every row against the rate-creation rules without writing to the store.
// @Tags csv
// @Accept multipart/form-data
// @Produce json
// @Param csvFile formData file true "Rates CSV"
// @Success 200 {object} models.CSVValidateResult "Validation result"
// @Failure 400 {object} handlers.ErrorResponse "Missing or unreadable file"
// @Router /csv/validate [post]
func NewCSVValidateHandler(validator CSVValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := csvFile(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "No CSV file uploaded, expected multipart field \"csvFile\"")
			return
		}
		defer file.Close()

		result, err := validator.Validate(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Failed to parse CSV file")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
