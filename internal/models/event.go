package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types published to the queue and broadcast to live subscribers.
const (
	EventTypeConversion = "conversion"
	EventTypeRateUpdate = "rate_update"
	EventTypeCustom     = "custom"
)

// Event is the envelope of every published notification.
type Event struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

// NewEvent stamps an event envelope with the current UTC time.
func NewEvent(eventType string, data any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}

// ConversionEvent is the payload of a conversion notification. ID is "demo"
// when the conversion was computed but not persisted.
type ConversionEvent struct {
	ID              string          `json:"id"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
	RateSource      string          `json:"rateSource"`
	ConversionDate  time.Time       `json:"conversionDate"`
	UserIP          string          `json:"userIp,omitempty"`
}

// RateEvent is the payload of a rate-change notification.
type RateEvent struct {
	Action       string          `json:"action"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
}
