package api

import (
	"bytes"
	"cryptometrics/internal/export"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m *ApiHandler) exportMetrics(c *gin.Context) {
	var requestBody metricsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	result, ok := m.runMetrics(c, requestBody)
	if !ok {
		return
	}

	buf := &bytes.Buffer{}
	if err := export.WriteFeatureRows(buf, result.Rows); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.FeatureRowsFileName))
	c.Data(200, "text/csv", buf.Bytes())
}
