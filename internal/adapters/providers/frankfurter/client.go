// Package frankfurter is the api.frankfurter.app client used for historical
// rate series.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsprov "github.com/ConversorDuo/currency_converter_app/internal/core/ports/providers"
	"golang.org/x/time/rate"
)

const dateLayout = "2006-01-02"

// seriesResponse is the {start}..{end} payload: rates keyed by date, then by
// target currency.
type seriesResponse struct {
	Base  string                        `json:"base"`
	Rates map[string]map[string]float64 `json:"rates"`
}

type client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// New creates the frankfurter client. baseURL is the API root, e.g.
// "https://api.frankfurter.app".
func New(baseURL string, timeout time.Duration) (portsprov.HistoryProvider, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid history API URL %q: %w", baseURL, err)
	}

	return &client{
		baseURL:     base,
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
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
		return fmt.Errorf("unable to fetch history due to code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// FetchSeries implements providers.HistoryProvider.
// GET /{start}..{end}?from=USD&to=EUR
func (c *client) FetchSeries(ctx context.Context, from, to string, start, end time.Time) ([]domain.HistoryPoint, error) {
	path := fmt.Sprintf("/%s..%s", start.Format(dateLayout), end.Format(dateLayout))
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("from", from)
	query.Add("to", to)
	req.URL.RawQuery = query.Encode()

	r := &seriesResponse{}
	if err := c.do(ctx, req, r); err != nil {
		return nil, err
	}

	series := make([]domain.HistoryPoint, 0, len(r.Rates))
	for dateStr, byCurrency := range r.Rates {
		value, ok := byCurrency[to]
		if !ok {
			continue
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}
		series = append(series, domain.HistoryPoint{Date: date, Rate: value})
	}

	// The API keys rates by date in a map, so order them explicitly.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}
