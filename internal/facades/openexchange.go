package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/logger"
)

// OpenExchangeFacade prices fiat pairs through the OpenExchangeRates REST API.
type OpenExchangeFacade struct {
	baseURL string
	appID   string
	client  *http.Client
}

func NewOpenExchangeFacade(baseURL, appID string, timeout time.Duration) *OpenExchangeFacade {
	return &OpenExchangeFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   appID,
		client:  &http.Client{Timeout: timeout},
	}
}

type openExchangeLatest struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (f *OpenExchangeFacade) latest(ctx context.Context, base string) (*openExchangeLatest, error) {
	params := url.Values{}
	params.Set("app_id", f.appID)
	params.Set("base", base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/latest.json?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openexchangerates: unexpected status %d", resp.StatusCode)
	}

	var body openExchangeLatest
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

// GetRate prices one unit of fromCurrency in toCurrency.
func (f *OpenExchangeFacade) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	body, err := f.latest(ctx, strings.ToUpper(fromCurrency))
	if err != nil {
		logger.Log.Errorw("openexchangerates rate request failed", "from", fromCurrency, "to", toCurrency, "error", err)
		return decimal.Zero, err
	}

	rate, ok := body.Rates[strings.ToUpper(toCurrency)]
	if !ok {
		return decimal.Zero, fmt.Errorf("openexchangerates: no rate for %s->%s", fromCurrency, toCurrency)
	}
	return rate, nil
}

// GetAllRates pulls the USD-based snapshot, keyed "USD_TO".
func (f *OpenExchangeFacade) GetAllRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	body, err := f.latest(ctx, "USD")
	if err != nil {
		logger.Log.Errorw("openexchangerates bulk request failed", "error", err)
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(body.Rates))
	for currency, rate := range body.Rates {
		rates["USD_"+strings.ToUpper(currency)] = rate
	}
	return rates, nil
}
