package models

// CSVRowError records a single rejected CSV row. The batch keeps going.
// swagger:model CSVRowError
type CSVRowError struct {
	Row   int               `json:"row"`
	Error string            `json:"error"`
	Data  map[string]string `json:"data"`
}

// CSVImportSummary is the compact tail of an import response.
type CSVImportSummary struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Saved     int `json:"saved"`
	Errors    int `json:"errors"`
}

// CSVImportResult is the outcome of a rates CSV import.
// swagger:model CSVImportResult
type CSVImportResult struct {
	Success       bool             `json:"success"`
	TotalRows     int              `json:"totalRows"`
	ProcessedRows int              `json:"processedRows"`
	SavedRates    int              `json:"savedRates"`
	Errors        []CSVRowError    `json:"errors"`
	Summary       CSVImportSummary `json:"summary"`
}

// CSVValidateResult is the outcome of a dry-run CSV validation.
// swagger:model CSVValidateResult
type CSVValidateResult struct {
	Valid     bool          `json:"valid"`
	TotalRows int           `json:"totalRows"`
	ValidRows int           `json:"validRows"`
	Errors    []CSVRowError `json:"errors"`
}
