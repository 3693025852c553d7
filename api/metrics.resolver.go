package api

import (
	"cryptometrics/internal/domain"
	"cryptometrics/internal/service"
	"cryptometrics/internal/util"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type metricsRequest struct {
	Assets             []string `json:"assets"`
	Start              string   `json:"start"`
	End                string   `json:"end"`
	PortfolioMinAssets *int     `json:"portfolioMinAssets"`
}

type featureRowResponse struct {
	Date             string   `json:"date"`
	Asset            string   `json:"asset"`
	OpenPrice        *float64 `json:"openPrice"`
	HighPrice        *float64 `json:"highPrice"`
	LowPrice         *float64 `json:"lowPrice"`
	ClosePrice       *float64 `json:"closePrice"`
	Volume           *float64 `json:"volume"`
	DailyReturn      *float64 `json:"dailyReturn"`
	LogReturn        *float64 `json:"logReturn"`
	DailyReturn7dMa  *float64 `json:"dailyReturn7dMa"`
	CumulativeReturn *float64 `json:"cumulativeReturn"`
	Volatility30d    *float64 `json:"volatility30d"`
	RollingMean30d   *float64 `json:"rollingMean30d"`
	RollingSharpe30d *float64 `json:"rollingSharpe30d"`
}

type portfolioPointResponse struct {
	Date               string   `json:"date"`
	PortfolioReturn    float64  `json:"portfolioReturn"`
	PortfolioCumReturn float64  `json:"portfolioCumReturn"`
	RollingMax         float64  `json:"rollingMax"`
	Drawdown           float64  `json:"drawdown"`
	RollingSharpe30d   *float64 `json:"rollingSharpe30d"`
	NumAssets          int      `json:"numAssets"`
}

type portfolioResponse struct {
	Assets      []string                 `json:"assets"`
	Points      []portfolioPointResponse `json:"points"`
	Sharpe      float64                  `json:"portfolioSharpe"`
	AnnualVol   float64                  `json:"portfolioAnnVol"`
	MaxDrawdown float64                  `json:"portfolioMaxDd"`
}

type summaryResponse struct {
	TotalRecords              int      `json:"totalRecords"`
	AverageDailyReturn        *float64 `json:"averageDailyReturn"`
	AverageDailyReturnDisplay string   `json:"averageDailyReturnDisplay"`
}

type MetricsResponse struct {
	Rows        []featureRowResponse           `json:"rows"`
	Portfolio   *portfolioResponse             `json:"portfolio,omitempty"`
	Correlation map[string]map[string]*float64 `json:"correlation"`
	Summary     summaryResponse                `json:"summary"`
	Profile     *domain.Profile                `json:"profile,omitempty"`
}

func (r metricsRequest) toInput() (*service.MetricsInput, error) {
	if len(r.Assets) == 0 {
		return nil, fmt.Errorf("at least one asset is required")
	}
	start, err := util.ParseDate(r.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start: %w", err)
	}
	end, err := util.ParseDate(r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end: %w", err)
	}
	if !util.DateLte(start, end) {
		return nil, fmt.Errorf("start %s is after end %s", r.Start, r.End)
	}

	minAssets := 2
	if r.PortfolioMinAssets != nil {
		minAssets = *r.PortfolioMinAssets
	}

	return &service.MetricsInput{
		Assets:             r.Assets,
		Start:              start,
		End:                end,
		PortfolioMinAssets: minAssets,
	}, nil
}

func (m *ApiHandler) computeMetrics(c *gin.Context) {
	var requestBody metricsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	result, ok := m.runMetrics(c, requestBody)
	if !ok {
		return
	}

	c.JSON(200, NewMetricsResponse(result))
}

// runMetrics validates the request and computes metrics inside a read
// transaction. It writes the error response itself and returns false on
// failure.
func (m *ApiHandler) runMetrics(c *gin.Context, requestBody metricsRequest) (*domain.MetricsResult, bool) {
	input, err := requestBody.toInput()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return nil, false
	}

	ctx, tx, err := m.beginReadTx(c)
	if err != nil {
		returnErrorJson(err, c)
		return nil, false
	}
	defer tx.Rollback()

	result, err := m.MetricsService.Compute(ctx, tx, *input)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute metrics: %w", err), c)
		return nil, false
	}
	if result.Profile != nil {
		result.Profile.End()
	}

	return result, true
}

// NewMetricsResponse converts a result to its JSON shape. Missing values
// serialize as null and an absent portfolio is omitted.
func NewMetricsResponse(result *domain.MetricsResult) MetricsResponse {
	out := MetricsResponse{
		Rows:        []featureRowResponse{},
		Correlation: result.Correlation.Values,
		Summary: summaryResponse{
			TotalRecords:       result.Summary.TotalRecords,
			AverageDailyReturn: result.Summary.AverageDailyReturn,
		},
		Profile: result.Profile,
	}
	if out.Correlation == nil {
		out.Correlation = map[string]map[string]*float64{}
	}
	if avg := result.Summary.AverageDailyReturn; avg != nil {
		out.Summary.AverageDailyReturnDisplay = decimal.NewFromFloat(*avg).StringFixed(6)
	}

	for _, r := range result.Rows {
		out.Rows = append(out.Rows, featureRowResponse{
			Date:             util.FormatDate(r.Date),
			Asset:            r.Asset,
			OpenPrice:        r.OpenPrice,
			HighPrice:        r.HighPrice,
			LowPrice:         r.LowPrice,
			ClosePrice:       r.ClosePrice,
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

	if p := result.Portfolio; p != nil {
		points := make([]portfolioPointResponse, 0, len(p.Points))
		for _, point := range p.Points {
			points = append(points, portfolioPointResponse{
				Date:               util.FormatDate(point.Date),
				PortfolioReturn:    point.PortfolioReturn,
				PortfolioCumReturn: point.PortfolioCumReturn,
				RollingMax:         point.RollingMax,
				Drawdown:           point.Drawdown,
				RollingSharpe30d:   point.RollingSharpe30d,
				NumAssets:          point.NumAssets,
			})
		}
		out.Portfolio = &portfolioResponse{
			Assets:      p.Assets,
			Points:      points,
			Sharpe:      p.Summary.Sharpe,
			AnnualVol:   p.Summary.AnnualVol,
			MaxDrawdown: p.Summary.MaxDrawdown,
		}
	}

	return out
}
