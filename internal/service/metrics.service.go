package service

import (
	"context"
	"cryptometrics/internal/calculator"
	"cryptometrics/internal/domain"
	"cryptometrics/internal/logger"
	"cryptometrics/internal/repository"
	"cryptometrics/internal/util"
	"database/sql"
	"fmt"
	"time"
)

const (
	DefaultAssetCount = 5
	DefaultLookback   = 30 * 24 * time.Hour
)

type MetricsService interface {
	ListAssets(ctx context.Context, tx *sql.Tx) ([]string, error)
	DefaultSelection(ctx context.Context, tx *sql.Tx) (*Selection, error)
	Compute(ctx context.Context, tx *sql.Tx, input MetricsInput) (*domain.MetricsResult, error)
}

type MetricsInput struct {
	Assets []string
	Start  time.Time
	End    time.Time
	// portfolio is only built with at least this many assets. values
	// below 2 are treated as 2
	PortfolioMinAssets int
}

// Selection is the starting asset set and window for a fresh dashboard
type Selection struct {
	Assets    []string
	AllAssets []string
	Start     time.Time
	End       time.Time
	// bounds of the data available
	MinDate time.Time
	MaxDate time.Time
}

func NewMetricsService(cryptoFeaturesRepository repository.CryptoFeaturesRepository) MetricsService {
	return metricsServiceHandler{
		CryptoFeaturesRepository: cryptoFeaturesRepository,
	}
}

type metricsServiceHandler struct {
	CryptoFeaturesRepository repository.CryptoFeaturesRepository
}

func (h metricsServiceHandler) ListAssets(ctx context.Context, tx *sql.Tx) ([]string, error) {
	assets, err := h.CryptoFeaturesRepository.ListAssets(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// DefaultSelection picks the first few assets and the last 30 days of
// available data
func (h metricsServiceHandler) DefaultSelection(ctx context.Context, tx *sql.Tx) (*Selection, error) {
	assets, err := h.ListAssets(ctx, tx)
	if err != nil {
		return nil, err
	}

	dateRange, err := h.CryptoFeaturesRepository.GetDateRange(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}
	if dateRange == nil {
		return nil, fmt.Errorf("no observations found")
	}

	selected := assets
	if len(selected) > DefaultAssetCount {
		selected = selected[:DefaultAssetCount]
	}

	start := dateRange.End.Add(-DefaultLookback)
	if start.Before(dateRange.Start) {
		start = dateRange.Start
	}

	return &Selection{
		Assets:    selected,
		AllAssets: assets,
		Start:     start,
		End:       dateRange.End,
		MinDate:   dateRange.Start,
		MaxDate:   dateRange.End,
	}, nil
}

func (h metricsServiceHandler) Compute(ctx context.Context, tx *sql.Tx, input MetricsInput) (*domain.MetricsResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	if !util.DateLte(input.Start, input.End) {
		return nil, fmt.Errorf("start date %s is after end date %s", util.FormatDate(input.Start), util.FormatDate(input.End))
	}

	_, endSpan := profile.StartNewSpan("list observations")
	observations, err := h.CryptoFeaturesRepository.List(tx, input.Assets, input.Start, input.End)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}

	_, endSpan = profile.StartNewSpan("derive features")
	rows := calculator.DeriveAssetFeatures(observations)
	portfolio := calculator.BuildPortfolio(observations, input.PortfolioMinAssets)
	correlation := calculator.CorrelationMatrix(observations)
	summary := calculator.Summarize(observations)
	endSpan()

	log.Infow(
		"computed metrics",
		"assets", len(input.Assets),
		"rows", len(rows),
		"portfolio", portfolio != nil,
		"start", util.FormatDate(input.Start),
		"end", util.FormatDate(input.End),
	)

	return &domain.MetricsResult{
		Rows:        rows,
		Portfolio:   portfolio,
		Correlation: correlation,
		Summary:     summary,
		Profile:     profile,
	}, nil
}
