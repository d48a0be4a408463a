package models

import "strings"

// cryptoCurrencies is the set of codes priced by the crypto provider; every
// other 3-letter code is treated as fiat.
var cryptoCurrencies = map[string]struct{}{
	"BTC": {}, "ETH": {}, "USDT": {}, "BNB": {}, "ADA": {},
	"XRP": {}, "SOL": {}, "DOT": {}, "DOGE": {}, "AVAX": {},
}

// IsCryptoCurrency reports whether code names a known cryptocurrency.
func IsCryptoCurrency(code string) bool {
	_, ok := cryptoCurrencies[strings.ToUpper(code)]
	return ok
}

// NormalizeCurrency trims and uppercases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
