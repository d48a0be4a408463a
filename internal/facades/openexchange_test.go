package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOpenExchangeFacade_GetRate(t *testing.T) {
	t.Run("prices a fiat pair", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest.json", r.URL.Path)
			assert.Equal(t, "test-app-id", r.URL.Query().Get("app_id"))
			assert.Equal(t, "USD", r.URL.Query().Get("base"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"base":"USD","rates":{"EUR":0.85,"JPY":150.25}}`))
		}))
		defer srv.Close()

		facade := NewOpenExchangeFacade(srv.URL, "test-app-id", 5*time.Second)

		rate, err := facade.GetRate(context.Background(), "usd", "eur")
		assert.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("0.85")))
	})

	t.Run("unknown target currency", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"USD","rates":{"EUR":0.85}}`))
		}))
		defer srv.Close()

		facade := NewOpenExchangeFacade(srv.URL, "test-app-id", 5*time.Second)

		_, err := facade.GetRate(context.Background(), "USD", "XXX")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no rate for USD->XXX")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		facade := NewOpenExchangeFacade(srv.URL, "bad-id", 5*time.Second)

		_, err := facade.GetRate(context.Background(), "USD", "EUR")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 401")
	})
}

func TestOpenExchangeFacade_GetAllRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.85,"JPY":150.25,"MXN":18.5}}`))
	}))
	defer srv.Close()

	facade := NewOpenExchangeFacade(srv.URL, "test-app-id", 5*time.Second)

	rates, err := facade.GetAllRates(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rates, 3)
	assert.True(t, rates["USD_EUR"].Equal(decimal.RequireFromString("0.85")))
	assert.True(t, rates["USD_JPY"].Equal(decimal.RequireFromString("150.25")))
}
