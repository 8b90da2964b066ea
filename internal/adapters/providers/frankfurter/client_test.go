package frankfurter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/adapters/providers/frankfurter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSeries_SortedAscending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2024-05-01..2024-05-31", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		// Map order is not date order; the client must sort.
		_, _ = w.Write([]byte(`{
			"base": "USD",
			"rates": {
				"2024-05-03": {"EUR": 0.93},
				"2024-05-01": {"EUR": 0.91},
				"2024-05-02": {"EUR": 0.92}
			}
		}`))
	}))
	defer srv.Close()

	client, err := frankfurter.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	series, err := client.FetchSeries(context.Background(), "USD", "EUR", start, end)
	require.NoError(t, err)

	require.Len(t, series, 3)
	assert.Equal(t, 0.91, series[0].Rate)
	assert.Equal(t, 0.92, series[1].Rate)
	assert.Equal(t, 0.93, series[2].Rate)
	assert.True(t, series[0].Date.Before(series[1].Date))
}

func TestFetchSeries_SkipsEntriesWithoutTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"rates": {
				"2024-05-01": {"EUR": 0.91},
				"2024-05-02": {"GBP": 0.79}
			}
		}`))
	}))
	defer srv.Close()

	client, err := frankfurter.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	series, err := client.FetchSeries(context.Background(), "USD", "EUR", time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)

	require.Len(t, series, 1)
	assert.Equal(t, 0.91, series[0].Rate)
}

func TestFetchSeries_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := frankfurter.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.FetchSeries(context.Background(), "USD", "EUR", time.Now().AddDate(0, -1, 0), time.Now())
	require.Error(t, err)
}
