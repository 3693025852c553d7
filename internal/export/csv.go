package export

import (
	"cryptometrics/internal/domain"
	"cryptometrics/internal/util"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

const FeatureRowsFileName = "crypto_filtered_data.csv"

// column names follow the source table so the file round-trips into the
// same warehouse schema
type featureRowCsv struct {
	Date             string   `csv:"date"`
	Asset            string   `csv:"asset"`
	ClosePrice       *float64 `csv:"close_price"`
	OpenPrice        *float64 `csv:"open_price"`
	High             *float64 `csv:"high"`
	Low              *float64 `csv:"low"`
	Volume           *float64 `csv:"volume"`
	DailyReturn      *float64 `csv:"daily_return"`
	LogReturn        *float64 `csv:"log_return"`
	DailyReturn7dMa  *float64 `csv:"daily_return_7d_ma"`
	CumulativeReturn *float64 `csv:"cumulative_return"`
	Volatility30d    *float64 `csv:"volatility_30d"`
	RollingMean30d   *float64 `csv:"rolling_mean_30d"`
	RollingSharpe30d *float64 `csv:"rolling_sharpe_30d"`
}

type portfolioPointCsv struct {
	Date               string   `csv:"date"`
	PortfolioReturn    float64  `csv:"portfolio_return"`
	PortfolioCumReturn float64  `csv:"portfolio_cum_return"`
	RollingMax         float64  `csv:"rolling_max"`
	Drawdown           float64  `csv:"drawdown"`
	RollingSharpe30d   *float64 `csv:"rolling_sharpe_30d"`
}

// WriteFeatureRows writes the derived table as csv. Missing values are
// empty cells.
func WriteFeatureRows(w io.Writer, rows []domain.FeatureRow) error {
	out := make([]*featureRowCsv, 0, len(rows))
	for _, r := range rows {
		out = append(out, &featureRowCsv{
			Date:             util.FormatDate(r.Date),
			Asset:            r.Asset,
			ClosePrice:       r.ClosePrice,
			OpenPrice:        r.OpenPrice,
			High:             r.HighPrice,
			Low:              r.LowPrice,
			Volume:           r.Volume,
			DailyReturn:      r.DailyReturn,
			LogReturn:        r.LogReturn,
			DailyReturn7dMa:  r.DailyReturn7dMa,
			CumulativeReturn: r.CumulativeReturn,
			Volatility30d:    r.Volatility30d,
			RollingMean30d:   r.RollingMean30d,
			RollingSharpe30d: r.RollingSharpe30d,
		})
	}

	if err := gocsv.Marshal(&out, w); err != nil {
		return fmt.Errorf("failed to write feature rows: %w", err)
	}
	return nil
}

func WritePortfolio(w io.Writer, portfolio *domain.Portfolio) error {
	out := []*portfolioPointCsv{}
	if portfolio != nil {
		for _, p := range portfolio.Points {
			out = append(out, &portfolioPointCsv{
				Date:               util.FormatDate(p.Date),
				PortfolioReturn:    p.PortfolioReturn,
				PortfolioCumReturn: p.PortfolioCumReturn,
				RollingMax:         p.RollingMax,
				Drawdown:           p.Drawdown,
				RollingSharpe30d:   p.RollingSharpe30d,
			})
		}
	}

	if err := gocsv.Marshal(&out, w); err != nil {
		return fmt.Errorf("failed to write portfolio: %w", err)
	}
	return nil
}
