package erapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/adapters/providers/erapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLatest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": "success",
			"base_code": "USD",
			"rates": {"USD": 1, "EUR": 0.92, "GBP": 0.79},
			"time_last_update_unix": 1714521601
		}`))
	}))
	defer srv.Close()

	client, err := erapi.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	snap, err := client.FetchLatest(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, "USD", snap.Base)
	assert.Equal(t, 0.92, snap.Rates["EUR"])
	assert.Equal(t, time.Unix(1714521601, 0), snap.LastUpdate)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestFetchLatest_DropsUnusableRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"result": "success",
			"rates": {"EUR": 0.92, "BAD": -1, "ZERO": 0}
		}`))
	}))
	defer srv.Close()

	client, err := erapi.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	snap, err := client.FetchLatest(context.Background(), "USD")
	require.NoError(t, err)

	assert.Len(t, snap.Rates, 1)
	assert.Contains(t, snap.Rates, "EUR")
}

func TestFetchLatest_ProviderReportsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "error", "error-type": "unsupported-code"}`))
	}))
	defer srv.Close()

	client, err := erapi.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.FetchLatest(context.Background(), "ZZZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported-code")
}

func TestFetchLatest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := erapi.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.FetchLatest(context.Background(), "USD")
	require.Error(t, err)
}
