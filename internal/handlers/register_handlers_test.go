package handlers_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsrepo "github.com/ConversorDuo/currency_converter_app/internal/core/ports/repositories"
	"github.com/ConversorDuo/currency_converter_app/internal/core/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/ConversorDuo/currency_converter_app/internal/handlers"
	"github.com/ConversorDuo/currency_converter_app/internal/middleware"
	"github.com/ConversorDuo/currency_converter_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// fakeRateProvider serves a fixed snapshot without the network.
type fakeRateProvider struct {
	rates map[string]float64
}

func (f *fakeRateProvider) FetchLatest(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	return &domain.RateSnapshot{
		Base:       base,
		Rates:      f.rates,
		LastUpdate: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		FetchedAt:  time.Now(),
	}, nil
}

// fakeHistoryProvider serves a fixed series.
type fakeHistoryProvider struct {
	series []domain.HistoryPoint
}

func (f *fakeHistoryProvider) FetchSeries(ctx context.Context, from, to string, start, end time.Time) ([]domain.HistoryPoint, error) {
	return f.series, nil
}

// memFavoriteRepo keeps favorites in memory.
type memFavoriteRepo struct {
	favorites []domain.SavedConversion
}

func (m *memFavoriteRepo) LoadAll(ctx context.Context) ([]domain.SavedConversion, error) {
	return m.favorites, nil
}

func (m *memFavoriteRepo) ReplaceAll(ctx context.Context, favorites []domain.SavedConversion) error {
	m.favorites = favorites
	return nil
}

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:    true, // skip swagger wiring in tests
		NotificationTTL: time.Minute,
	}

	container := services.NewServiceContainer(
		context.Background(),
		cfg,
		portsrepo.RepositoryProvider{FavoriteRepo: &memFavoriteRepo{}},
		services.Providers{
			Rates: &fakeRateProvider{rates: map[string]float64{"USD": 1, "EUR": 0.92, "GBP": 0.79}},
			History: &fakeHistoryProvider{series: []domain.HistoryPoint{
				{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Rate: 0.91},
				{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Rate: 0.93},
				{Date: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), Rate: 0.92},
			}},
		},
		slog.Default(),
	)

	state := container.Session.State()
	suite.Require().NoError(container.Rates.Refresh(context.Background(), state.From))
	suite.Require().NoError(container.History.Refresh(context.Background(), state.From, state.To, state.Range))

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *APITestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) TestListCurrencies() {
	w := suite.do(http.MethodGet, "/api/v1/currencies", "")
	suite.Equal(http.StatusOK, w.Code)

	var currencies []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &currencies))
	suite.NotEmpty(currencies)
	suite.Equal("USD", currencies[0].Code)
}

func (suite *APITestSuite) TestGetUnknownCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/currencies/ZZZ", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestConvertUsesSnapshot() {
	w := suite.do(http.MethodGet, "/api/v1/convert?amount=10&to=EUR", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var res dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.RateKnown)
	suite.Equal("9.20", res.Converted)
}

func (suite *APITestSuite) TestHistoryIncludesGeometry() {
	w := suite.do(http.MethodGet, "/api/v1/history", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var res dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Drawable)
	suite.Len(res.Points, 3)
	suite.Len(res.Chart, 3)
	suite.Equal(0.91, res.Min)
	suite.Equal(0.93, res.Max)
}

func (suite *APITestSuite) TestHistoryHover() {
	// x at the left drawable edge focuses the first sample.
	w := suite.do(http.MethodGet, "/api/v1/history/hover?x=10", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var res dto.HoverResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(0, res.Index)
	suite.Equal("2024-05-01", res.Date)
}

func (suite *APITestSuite) TestHistoryHoverRejectsNonNumeric() {
	w := suite.do(http.MethodGet, "/api/v1/history/hover?x=abc", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestFavoriteLifecycle() {
	// Save the session's current conversion.
	w := suite.do(http.MethodPost, "/api/v1/favorites", "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var fav dto.FavoriteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fav))
	suite.Equal("USD", fav.From)
	suite.NotEmpty(fav.ID)

	// Saving the same conversion again conflicts.
	w = suite.do(http.MethodPost, "/api/v1/favorites", "")
	suite.Equal(http.StatusConflict, w.Code)

	// The warning notification from the duplicate is visible.
	w = suite.do(http.MethodGet, "/api/v1/notifications/current", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var n dto.NotificationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &n))
	suite.Equal("¡Ya está en favoritos!", n.Message)

	// Remove it and the list is empty again.
	w = suite.do(http.MethodDelete, "/api/v1/favorites/"+fav.ID, "")
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/favorites", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list []dto.FavoriteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Empty(list)
}

func (suite *APITestSuite) TestSessionSwap() {
	w := suite.do(http.MethodPost, "/api/v1/session/swap", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var state dto.SessionStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	suite.Equal("EUR", state.From)
	suite.Equal("USD", state.To)
}

func (suite *APITestSuite) TestSessionRejectsUnknownRange() {
	w := suite.do(http.MethodPut, "/api/v1/session/range", `{"range": "2W"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestSessionRejectsUnknownPair() {
	w := suite.do(http.MethodPut, "/api/v1/session/pair", `{"from": "USD", "to": "ZZZ"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestRefreshRejectsNonCatalogBase() {
	w := suite.do(http.MethodPost, "/api/v1/rates/refresh", `{"base": "XXX"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestInsightRejectsNonCatalogPair() {
	w := suite.do(http.MethodPost, "/api/v1/insights", `{"from": "USD", "to": "XXX", "amount": 10}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestInsightUnavailableWithoutProvider() {
	w := suite.do(http.MethodPost, "/api/v1/insights", "")
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *APITestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
