package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rate sources.
const (
	SourceCoinGecko         = "coingecko"
	SourceOpenExchangeRates = "openexchangerates"
	SourceManual            = "manual"
	SourceExternal          = "external"
	SourceDemo              = "demo"
)

// IsValidRateSource reports whether s is an accepted source for stored rates.
func IsValidRateSource(s string) bool {
	switch s {
	case SourceCoinGecko, SourceOpenExchangeRates, SourceManual:
		return true
	}
	return false
}

// Rate is a stored exchange rate for a currency pair. At most one row exists
// per (FromCurrency, ToCurrency); deactivated rows keep the pair slot.
// swagger:model Rate
type Rate struct {
	RateID       uuid.UUID       `db:"rate_id" json:"id"`
	FromCurrency string          `db:"from_currency" json:"fromCurrency" example:"USD"`
	ToCurrency   string          `db:"to_currency" json:"toCurrency" example:"EUR"`
	Rate         decimal.Decimal `db:"rate" json:"rate" example:"0.85"`
	Source       string          `db:"source" json:"source" example:"manual"`
	LastUpdated  time.Time       `db:"last_updated" json:"lastUpdated"`
	IsActive     bool            `db:"is_active" json:"isActive"`
}

// RateFilter narrows a rate listing. Zero Limit means the default page size.
type RateFilter struct {
	FromCurrency string `validate:"omitempty,currency"`
	ToCurrency   string `validate:"omitempty,currency"`
	Source       string `validate:"omitempty,oneof=coingecko openexchangerates manual"`
	Limit        int    `validate:"min=0,max=100"`
	Skip         int    `validate:"min=0"`
}

// RateUpsert is the input of a rate create-or-update.
type RateUpsert struct {
	FromCurrency string `validate:"required,currency"`
	ToCurrency   string `validate:"required,currency"`
	Rate         decimal.Decimal
	Source       string `validate:"required,oneof=coingecko openexchangerates manual"`
}

// RatePatch is a partial rate update; nil fields are left untouched.
type RatePatch struct {
	Rate     *decimal.Decimal
	Source   *string `validate:"omitempty,oneof=coingecko openexchangerates manual"`
	IsActive *bool
}

// RatePage is a paged rate listing.
// swagger:model RatePage
type RatePage struct {
	Data    []Rate `json:"data"`
	Total   int    `json:"total"`
	Limit   int    `json:"limit"`
	Skip    int    `json:"skip"`
	Message string `json:"message,omitempty"`
}
