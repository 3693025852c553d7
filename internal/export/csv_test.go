package export

import (
	"bytes"
	"cryptometrics/internal/domain"
	"cryptometrics/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFeatureRows(t *testing.T) {
	t.Run("missing values are empty", func(t *testing.T) {
		rows := []domain.FeatureRow{
			{
				Observation: domain.Observation{
					Date:        util.NewDate(2024, 1, 1),
					Asset:       "BTC",
					ClosePrice:  util.FloatPointer(101),
					OpenPrice:   util.FloatPointer(100),
					HighPrice:   util.FloatPointer(102),
					LowPrice:    util.FloatPointer(99),
					Volume:      util.FloatPointer(5000),
					DailyReturn: util.FloatPointer(0.01),
					LogReturn:   util.FloatPointer(0.00995),
				},
				DerivedSeries: domain.DerivedSeries{
					DailyReturn7dMa:  util.FloatPointer(0.01),
					CumulativeReturn: util.FloatPointer(1.01),
				},
			},
			{
				Observation: domain.Observation{
					Date:       util.NewDate(2023, 12, 31),
					Asset:      "ETH",
					ClosePrice: util.FloatPointer(2000),
				},
			},
		}

		buf := &bytes.Buffer{}
		err := WriteFeatureRows(buf, rows)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		require.Equal(
			t,
			"date,asset,close_price,open_price,high,low,volume,daily_return,log_return,daily_return_7d_ma,cumulative_return,volatility_30d,rolling_mean_30d,rolling_sharpe_30d",
			lines[0],
		)
		require.True(t, strings.HasPrefix(lines[1], "2024-01-01,BTC,"))
		require.True(t, strings.HasSuffix(lines[1], ",,,"))
		// a NULL return is an empty cell, not 0
		require.Equal(t, "2023-12-31,ETH,2000,,,,,,,,,,,", lines[2])
	})

	t.Run("no rows writes a header", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := WriteFeatureRows(buf, nil)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(buf.String(), "date,asset,"))
	})
}

func TestWritePortfolio(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WritePortfolio(buf, &domain.Portfolio{
		Points: []domain.PortfolioPoint{
			{
				Date:               util.NewDate(2024, 1, 1),
				PortfolioReturn:    -0.1,
				PortfolioCumReturn: 0.9,
				RollingMax:         0.9,
			},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "date,portfolio_return,portfolio_cum_return,rolling_max,drawdown,rolling_sharpe_30d", lines[0])
	require.Equal(t, "2024-01-01,-0.1,0.9,0.9,0,", lines[1])
}
