// Package erapi is the open.er-api.com client used for live exchange rates.
package erapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsprov "github.com/ConversorDuo/currency_converter_app/internal/core/ports/providers"
	"golang.org/x/time/rate"
)

// latestResponse is the v6/latest payload.
type latestResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	Rates              map[string]float64 `json:"rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	ErrorType          string             `json:"error-type"`
}

type client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	now         func() time.Time
}

// New creates the er-api client. baseURL is the API root, e.g.
// "https://open.er-api.com".
func New(baseURL string, timeout time.Duration) (portsprov.RateProvider, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rates API URL %q: %w", baseURL, err)
	}

	return &client{
		baseURL:     base,
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		now:         time.Now,
	}, nil
}

func (c *client) do(ctx context.Context, req *http.Request, v interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to fetch rates due to code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// FetchLatest implements providers.RateProvider.
// GET /v6/latest/{BASE}
func (c *client) FetchLatest(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	u, err := c.baseURL.Parse("/v6/latest/" + base)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	r := &latestResponse{}
	if err := c.do(ctx, req, r); err != nil {
		return nil, err
	}

	if r.Result != "success" {
		return nil, fmt.Errorf("rates API reported %q for base %s", r.ErrorType, base)
	}

	// Drop unusable entries instead of failing the whole snapshot.
	rates := make(map[string]float64, len(r.Rates))
	for code, v := range r.Rates {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rates[code] = v
	}

	return &domain.RateSnapshot{
		Base:       base,
		Rates:      rates,
		LastUpdate: time.Unix(r.TimeLastUpdateUnix, 0),
		FetchedAt:  c.now(),
	}, nil
}
