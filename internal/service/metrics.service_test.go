package service

import (
	"context"
	"cryptometrics/internal/domain"
	mock_repository "cryptometrics/internal/repository/mocks"
	"cryptometrics/internal/util"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newObservations(asset string, returns ...float64) []domain.Observation {
	out := []domain.Observation{}
	for i, r := range returns {
		out = append(out, domain.Observation{
			Date:        util.NewDate(2024, 3, 1).AddDate(0, 0, i),
			Asset:       asset,
			ClosePrice:  util.FloatPointer(10),
			DailyReturn: util.FloatPointer(r),
		})
	}
	return out
}

func Test_metricsServiceHandler_Compute(t *testing.T) {
	start := util.NewDate(2024, 3, 1)
	end := util.NewDate(2024, 3, 31)

	t.Run("two assets include a portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		observations := append(
			newObservations("BTC", 0.01, 0.02, -0.01),
			newObservations("ETH", 0.03, 0.00, 0.01)...,
		)
		repo.EXPECT().
			List(tx, []string{"BTC", "ETH"}, start, end).
			Return(observations, nil)

		h := NewMetricsService(repo)
		result, err := h.Compute(context.Background(), tx, MetricsInput{
			Assets:             []string{"BTC", "ETH"},
			Start:              start,
			End:                end,
			PortfolioMinAssets: 2,
		})
		require.NoError(t, err)

		require.Len(t, result.Rows, 6)
		require.NotNil(t, result.Portfolio)
		require.Len(t, result.Portfolio.Points, 3)
		require.InDelta(t, 0.02, result.Portfolio.Points[0].PortfolioReturn, 1e-12)
		require.Equal(t, 6, result.Summary.TotalRecords)
		require.Equal(t, []string{"BTC", "ETH"}, result.Correlation.Assets)

		require.Len(t, result.Profile.Spans, 2)
		require.Equal(t, "list observations", result.Profile.Spans[0].Name)
	})

	t.Run("single asset has no portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().
			List(tx, []string{"BTC"}, start, end).
			Return(newObservations("BTC", 0.01, 0.02), nil)

		h := NewMetricsService(repo)
		result, err := h.Compute(context.Background(), tx, MetricsInput{
			Assets: []string{"BTC"},
			Start:  start,
			End:    end,
		})
		require.NoError(t, err)
		require.Len(t, result.Rows, 2)
		require.Nil(t, result.Portfolio)
	})

	t.Run("no rows in range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().
			List(tx, []string{"BTC", "ETH"}, start, end).
			Return([]domain.Observation{}, nil)

		h := NewMetricsService(repo)
		result, err := h.Compute(context.Background(), tx, MetricsInput{
			Assets: []string{"BTC", "ETH"},
			Start:  start,
			End:    end,
		})
		require.NoError(t, err)
		require.Empty(t, result.Rows)
		require.Nil(t, result.Portfolio)
		require.Nil(t, result.Summary.AverageDailyReturn)
	})

	t.Run("start after end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)

		h := NewMetricsService(repo)
		_, err := h.Compute(context.Background(), &sql.Tx{}, MetricsInput{
			Assets: []string{"BTC"},
			Start:  end,
			End:    start,
		})
		require.ErrorContains(t, err, "is after end date")
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().
			List(tx, []string{"BTC"}, start, start).
			Return(nil, fmt.Errorf("boom"))

		profile, _ := domain.NewProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)

		h := NewMetricsService(repo)
		_, err := h.Compute(ctx, tx, MetricsInput{
			Assets: []string{"BTC"},
			Start:  start,
			End:    start,
		})
		require.ErrorContains(t, err, "failed to list observations: boom")

		require.Len(t, profile.Spans, 1)
		require.NotNil(t, profile.Spans[0].Elapsed)
	})

	t.Run("uses profile from context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().
			List(tx, []string{"BTC"}, start, end).
			Return(newObservations("BTC", 0.01), nil)

		profile, endProfile := domain.NewProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)

		h := NewMetricsService(repo)
		result, err := h.Compute(ctx, tx, MetricsInput{
			Assets: []string{"BTC"},
			Start:  start,
			End:    end,
		})
		require.NoError(t, err)
		endProfile()
		require.Same(t, profile, result.Profile)
		require.NotNil(t, profile.TotalMs)
	})
}

func Test_metricsServiceHandler_DefaultSelection(t *testing.T) {
	t.Run("last 30 days and first five assets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().ListAssets(tx).Return([]string{"ADA", "BTC", "DOGE", "ETH", "SOL", "XRP"}, nil)
		repo.EXPECT().GetDateRange(tx).Return(&domain.DateRange{
			Start: util.NewDate(2023, 1, 1),
			End:   util.NewDate(2024, 3, 31),
		}, nil)

		h := NewMetricsService(repo)
		selection, err := h.DefaultSelection(context.Background(), tx)
		require.NoError(t, err)
		require.Equal(t, []string{"ADA", "BTC", "DOGE", "ETH", "SOL"}, selection.Assets)
		require.Len(t, selection.AllAssets, 6)
		require.True(t, selection.Start.Equal(util.NewDate(2024, 3, 1)))
		require.True(t, selection.End.Equal(util.NewDate(2024, 3, 31)))
	})

	t.Run("short history starts at the first date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().ListAssets(tx).Return([]string{"BTC"}, nil)
		repo.EXPECT().GetDateRange(tx).Return(&domain.DateRange{
			Start: util.NewDate(2024, 3, 20),
			End:   util.NewDate(2024, 3, 31),
		}, nil)

		h := NewMetricsService(repo)
		selection, err := h.DefaultSelection(context.Background(), tx)
		require.NoError(t, err)
		require.Equal(t, []string{"BTC"}, selection.Assets)
		require.True(t, selection.Start.Equal(util.NewDate(2024, 3, 20)))
	})

	t.Run("empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockCryptoFeaturesRepository(ctrl)
		tx := &sql.Tx{}

		repo.EXPECT().ListAssets(tx).Return([]string{}, nil)
		repo.EXPECT().GetDateRange(tx).Return(nil, nil)

		h := NewMetricsService(repo)
		_, err := h.DefaultSelection(context.Background(), tx)
		require.ErrorContains(t, err, "no observations found")
	})
}
