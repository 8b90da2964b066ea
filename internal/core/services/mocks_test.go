package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatest(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

// --- Mock HistoryProvider ---
type MockHistoryProvider struct {
	mock.Mock
}

func (m *MockHistoryProvider) FetchSeries(ctx context.Context, from, to string, start, end time.Time) ([]domain.HistoryPoint, error) {
	args := m.Called(ctx, from, to, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryPoint), args.Error(1)
}

// --- Mock InsightProvider ---
type MockInsightProvider struct {
	mock.Mock
}

func (m *MockInsightProvider) GenerateInsight(ctx context.Context, from, to string, amount float64) (*domain.Insight, error) {
	args := m.Called(ctx, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Insight), args.Error(1)
}

func (m *MockInsightProvider) TranslateInsight(ctx context.Context, insight domain.Insight, targetLang string) (*domain.Insight, error) {
	args := m.Called(ctx, insight, targetLang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Insight), args.Error(1)
}

// --- Mock FavoriteRepository ---
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) LoadAll(ctx context.Context) ([]domain.SavedConversion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedConversion), args.Error(1)
}

func (m *MockFavoriteRepository) ReplaceAll(ctx context.Context, favorites []domain.SavedConversion) error {
	args := m.Called(ctx, favorites)
	return args.Error(0)
}

// recordingNotifier captures everything published, for asserting on
// notification side effects without timers.
type recordingNotifier struct {
	mu        sync.Mutex
	published []domain.Notification
}

func (n *recordingNotifier) Publish(notification domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.published = append(n.published, notification)
}

func (n *recordingNotifier) Current() *domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.published) == 0 {
		return nil
	}
	last := n.published[len(n.published)-1]
	return &last
}

func (n *recordingNotifier) all() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.published))
	copy(out, n.published)
	return out
}

// stubRateReader serves a fixed snapshot to the conversion service.
type stubRateReader struct {
	snapshot *domain.RateSnapshot
	loading  bool
}

func (s *stubRateReader) Snapshot() *domain.RateSnapshot { return s.snapshot }
func (s *stubRateReader) Loading() bool                  { return s.loading }
