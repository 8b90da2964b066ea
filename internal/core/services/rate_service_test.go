package services_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
	notifier     *recordingNotifier
	service      portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.notifier = &recordingNotifier{}
	suite.service = services.NewRateService(suite.mockProvider, suite.notifier, slog.Default())
}

func (suite *RateServiceTestSuite) TestRefresh_ReplacesSnapshotWholesale() {
	ctx := context.Background()

	first := &domain.RateSnapshot{
		Base:      "USD",
		Rates:     map[string]float64{"EUR": 0.92, "GBP": 0.79},
		FetchedAt: time.Now(),
	}
	second := &domain.RateSnapshot{
		Base:      "USD",
		Rates:     map[string]float64{"EUR": 0.93},
		FetchedAt: time.Now(),
	}

	suite.mockProvider.On("FetchLatest", mock.Anything, "USD").Return(first, nil).Once()
	suite.Require().NoError(suite.service.Refresh(ctx, "USD"))

	suite.mockProvider.On("FetchLatest", mock.Anything, "USD").Return(second, nil).Once()
	suite.Require().NoError(suite.service.Refresh(ctx, "USD"))

	snap := suite.service.Snapshot()
	suite.Require().NotNil(snap)
	suite.Equal(0.93, snap.Rates["EUR"])
	// Wholesale replacement: codes absent from the new mapping are gone.
	_, ok := snap.Rate("GBP")
	suite.False(ok)

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestRefresh_FailureKeepsPreviousSnapshot() {
	ctx := context.Background()

	good := &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.92},
	}
	suite.mockProvider.On("FetchLatest", mock.Anything, "USD").Return(good, nil).Once()
	suite.Require().NoError(suite.service.Refresh(ctx, "USD"))

	// All retry attempts fail.
	suite.mockProvider.On("FetchLatest", mock.Anything, "USD").Return(nil, assert.AnError).Times(3)
	err := suite.service.Refresh(ctx, "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)

	snap := suite.service.Snapshot()
	suite.Require().NotNil(snap)
	suite.Equal(0.92, snap.Rates["EUR"])

	published := suite.notifier.all()
	suite.Require().Len(published, 1)
	suite.Equal("No se pudieron actualizar las tasas", published[0].Message)
	suite.Equal(domain.SeverityError, published[0].Severity)

	suite.mockProvider.AssertExpectations(suite.T())
}

// gatedRateProvider blocks its first fetch until the gate is closed, so a
// test can overlap two refreshes deterministically. Later fetches resolve
// immediately with the fresh snapshot.
type gatedRateProvider struct {
	stale   *domain.RateSnapshot
	fresh   *domain.RateSnapshot
	entered chan struct{}
	gate    chan struct{}

	mu    sync.Mutex
	calls int
}

func (p *gatedRateProvider) FetchLatest(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	p.mu.Lock()
	p.calls++
	call := p.calls
	p.mu.Unlock()

	if call == 1 {
		close(p.entered)
		<-p.gate
		return p.stale, nil
	}
	return p.fresh, nil
}

func (suite *RateServiceTestSuite) TestRefresh_SlowStaleResponseIsDiscarded() {
	provider := &gatedRateProvider{
		stale:   &domain.RateSnapshot{Base: "USD", Rates: map[string]float64{"EUR": 0.80}},
		fresh:   &domain.RateSnapshot{Base: "USD", Rates: map[string]float64{"EUR": 0.95}},
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	service := services.NewRateService(provider, suite.notifier, slog.Default())

	firstDone := make(chan error, 1)
	go func() { firstDone <- service.Refresh(context.Background(), "USD") }()
	<-provider.entered

	// The newer refresh completes while the older one is still waiting
	// on the upstream.
	suite.Require().NoError(service.Refresh(context.Background(), "USD"))
	suite.Equal(0.95, service.Snapshot().Rates["EUR"])

	// Releasing the older response must not roll the snapshot back.
	close(provider.gate)
	suite.Require().NoError(<-firstDone)

	snap := service.Snapshot()
	suite.Require().NotNil(snap)
	suite.Equal(0.95, snap.Rates["EUR"])
}

func (suite *RateServiceTestSuite) TestRefresh_NoSnapshotBeforeFirstFetch() {
	suite.Nil(suite.service.Snapshot())
	suite.False(suite.service.Loading())

	// A nil snapshot still answers rate lookups safely.
	_, ok := suite.service.Snapshot().Rate("EUR")
	suite.False(ok)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
