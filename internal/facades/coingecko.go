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

// coinGeckoIDs maps currency codes to CoinGecko coin ids.
var coinGeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
	"BNB":  "binancecoin",
	"ADA":  "cardano",
	"XRP":  "ripple",
	"SOL":  "solana",
	"DOT":  "polkadot",
	"DOGE": "dogecoin",
	"AVAX": "avalanche-2",
}

var coinGeckoCodes = func() map[string]string {
	codes := make(map[string]string, len(coinGeckoIDs))
	for code, id := range coinGeckoIDs {
		codes[id] = code
	}
	return codes
}()

// bulkCryptoIDs are the coins fetched by GetAllRates.
var bulkCryptoIDs = []string{"bitcoin", "ethereum", "tether", "binancecoin", "cardano"}

// CoinGeckoFacade prices crypto pairs through the CoinGecko REST API.
type CoinGeckoFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCoinGeckoFacade(baseURL, apiKey string, timeout time.Duration) *CoinGeckoFacade {
	return &CoinGeckoFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *CoinGeckoFacade) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	if f.apiKey != "" {
		req.Header.Set("X-CG-API-KEY", f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetRate prices one unit of fromCurrency in toCurrency.
func (f *CoinGeckoFacade) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	coinID := mapCurrencyToCoinGeckoID(fromCurrency)
	vs := strings.ToLower(toCurrency)

	params := url.Values{}
	params.Set("ids", coinID)
	params.Set("vs_currencies", vs)

	var body map[string]map[string]decimal.Decimal
	if err := f.get(ctx, "/simple/price", params, &body); err != nil {
		logger.Log.Errorw("coingecko rate request failed", "from", fromCurrency, "to", toCurrency, "error", err)
		return decimal.Zero, err
	}

	rate, ok := body[coinID][vs]
	if !ok {
		return decimal.Zero, fmt.Errorf("coingecko: no rate for %s->%s", fromCurrency, toCurrency)
	}
	return rate, nil
}

// GetAllRates pulls a bulk snapshot of major crypto prices against every
// supported vs-currency, keyed "FROM_TO".
func (f *CoinGeckoFacade) GetAllRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	var supported []string
	if err := f.get(ctx, "/simple/supported_vs_currencies", url.Values{}, &supported); err != nil {
		logger.Log.Errorw("coingecko supported currencies request failed", "error", err)
		return nil, err
	}

	rates := make(map[string]decimal.Decimal)
	for _, coinID := range bulkCryptoIDs {
		params := url.Values{}
		params.Set("ids", coinID)
		params.Set("vs_currencies", strings.Join(supported, ","))

		var body map[string]map[string]decimal.Decimal
		if err := f.get(ctx, "/simple/price", params, &body); err != nil {
			logger.Log.Errorw("coingecko bulk price request failed", "coin", coinID, "error", err)
			continue
		}

		code := mapCoinGeckoIDToCurrency(coinID)
		for vs, rate := range body[coinID] {
			rates[code+"_"+strings.ToUpper(vs)] = rate
		}
	}

	return rates, nil
}

func mapCurrencyToCoinGeckoID(currency string) string {
	if id, ok := coinGeckoIDs[strings.ToUpper(currency)]; ok {
		return id
	}
	return strings.ToLower(currency)
}

func mapCoinGeckoIDToCurrency(coinID string) string {
	if code, ok := coinGeckoCodes[coinID]; ok {
		return code
	}
	return strings.ToUpper(coinID)
}
