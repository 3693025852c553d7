package api

import (
	"cryptometrics/internal/util"

	"github.com/gin-gonic/gin"
)

type listAssetsResponse struct {
	Assets []string `json:"assets"`
}

func (m *ApiHandler) listAssets(c *gin.Context) {
	ctx, tx, err := m.beginReadTx(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	assets, err := m.MetricsService.ListAssets(ctx, tx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, listAssetsResponse{
		Assets: assets,
	})
}

type defaultsResponse struct {
	Assets    []string `json:"assets"`
	AllAssets []string `json:"allAssets"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	MinDate   string   `json:"minDate"`
	MaxDate   string   `json:"maxDate"`
}

func (m *ApiHandler) defaults(c *gin.Context) {
	ctx, tx, err := m.beginReadTx(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	selection, err := m.MetricsService.DefaultSelection(ctx, tx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, defaultsResponse{
		Assets:    selection.Assets,
		AllAssets: selection.AllAssets,
		Start:     util.FormatDate(selection.Start),
		End:       util.FormatDate(selection.End),
		MinDate:   util.FormatDate(selection.MinDate),
		MaxDate:   util.FormatDate(selection.MaxDate),
	})
}
