package models

import "github.com/shopspring/decimal"

// ReportStatistics is the summary block of a daily report.
// swagger:model ReportStatistics
type ReportStatistics struct {
	TotalConversions     int             `json:"totalConversions"`
	TotalOriginalAmount  decimal.Decimal `json:"totalOriginalAmount"`
	TotalConvertedAmount decimal.Decimal `json:"totalConvertedAmount"`
	AverageRate          decimal.Decimal `json:"averageRate"`
	UniqueCurrencyPairs  int             `json:"uniqueCurrencyPairs"`
}

// DailyReport aggregates one UTC calendar day of conversions.
// swagger:model DailyReport
type DailyReport struct {
	Date         string           `json:"date"`
	Conversions  int              `json:"conversions"`
	Statistics   ReportStatistics `json:"statistics"`
	PopularPairs []PopularPair    `json:"popularPairs"`
}

// DailyBucket is one day's totals inside a monthly report.
// swagger:model DailyBucket
type DailyBucket struct {
	Day         int             `db:"day" json:"day"`
	Conversions int             `db:"conversions" json:"conversions"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
}

// MonthlyReport aggregates a calendar month of conversions per day.
// swagger:model MonthlyReport
type MonthlyReport struct {
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	MonthName  string        `json:"monthName"`
	DailyStats []DailyBucket `json:"dailyStats"`
	TopPairs   []PopularPair `json:"topPairs"`
}
