package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Conversion is one logged currency conversion. The rate used is copied into
// the row so historical reports stay stable when the rate store changes.
// swagger:model Conversion
type Conversion struct {
	ConversionID    uuid.UUID       `db:"conversion_id" json:"id"`
	FromCurrency    string          `db:"from_currency" json:"fromCurrency" example:"USD"`
	ToCurrency      string          `db:"to_currency" json:"toCurrency" example:"EUR"`
	OriginalAmount  decimal.Decimal `db:"original_amount" json:"originalAmount" example:"100"`
	ConvertedAmount decimal.Decimal `db:"converted_amount" json:"convertedAmount" example:"85"`
	Rate            decimal.Decimal `db:"rate" json:"rate" example:"0.85"`
	RateSource      string          `db:"rate_source" json:"rateSource" example:"manual"`
	ConversionDate  time.Time       `db:"conversion_date" json:"conversionDate"`
	UserIP          string          `db:"user_ip" json:"userIp,omitempty"`
	UserAgent       string          `db:"user_agent" json:"userAgent,omitempty"`
}

// ConversionFilter narrows a conversion listing. Zero Limit means the default
// page size; EndDate must not precede StartDate.
type ConversionFilter struct {
	FromCurrency string `validate:"omitempty,currency"`
	ToCurrency   string `validate:"omitempty,currency"`
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int `validate:"min=0,max=100"`
	Skip         int `validate:"min=0"`
}

// RequesterMeta carries client metadata resolved from request headers.
type RequesterMeta struct {
	IP        string
	UserAgent string
}

// ConversionResult is what a conversion request returns. Persisted is false
// when the store was unreachable and the result is not durable.
// swagger:model ConversionResult
type ConversionResult struct {
	ID              string          `json:"id"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
	RateSource      string          `json:"rateSource"`
	ConversionDate  time.Time       `json:"conversionDate"`
	Persisted       bool            `json:"-"`
}

// ConversionPage is a paged conversion listing.
// swagger:model ConversionPage
type ConversionPage struct {
	Data    []Conversion `json:"data"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Skip    int          `json:"skip"`
	Message string       `json:"message,omitempty"`
}

// ConversionStats aggregates logged conversions.
// swagger:model ConversionStats
type ConversionStats struct {
	TotalConversions     int             `db:"total_conversions" json:"totalConversions"`
	TotalOriginalAmount  decimal.Decimal `db:"total_original_amount" json:"totalOriginalAmount"`
	TotalConvertedAmount decimal.Decimal `db:"total_converted_amount" json:"totalConvertedAmount"`
	AverageRate          decimal.Decimal `db:"average_rate" json:"averageRate"`
	MinRate              decimal.Decimal `db:"min_rate" json:"minRate"`
	MaxRate              decimal.Decimal `db:"max_rate" json:"maxRate"`
	UniqueCurrencyPairs  int             `db:"unique_currency_pairs" json:"-"`
}

// PopularPair is a currency pair ranked by conversion count.
// swagger:model PopularPair
type PopularPair struct {
	FromCurrency    string          `db:"from_currency" json:"fromCurrency"`
	ToCurrency      string          `db:"to_currency" json:"toCurrency"`
	ConversionCount int             `db:"conversion_count" json:"conversionCount"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"totalAmount"`
}
