package api

import (
	"context"
	"cryptometrics/internal/domain"
	"cryptometrics/internal/logger"
	"cryptometrics/internal/service"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ApiHandler struct {
	Db             *sql.DB
	MetricsService service.MetricsService

	metrics *apiMetrics
}

func (m *ApiHandler) InitializeRouterEngine() *gin.Engine {
	if m.metrics == nil {
		m.metrics = newApiMetrics()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.requestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to cryptometrics"})
	})
	router.GET("/assets", m.listAssets)
	router.GET("/defaults", m.defaults)
	router.POST("/metrics", m.computeMetrics)
	router.POST("/export", m.exportMetrics)
	router.GET("/metrics/prometheus", gin.WrapH(promhttp.HandlerFor(m.metrics.registry, promhttp.HandlerOpts{})))

	return router
}

func (m *ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw("request failed", "error", err.Error(), "status", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestMiddleware attaches a request-scoped logger and records latency
func (m *ApiHandler) requestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	log := logger.FromContext(ctx.Request.Context()).With(
		"requestID", requestID.String(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Request = ctx.Request.WithContext(logger.WithLogger(ctx.Request.Context(), log))
	ctx.Header("X-Request-ID", requestID.String())

	start := time.Now()
	ctx.Next()
	elapsed := time.Since(start)

	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}
	m.metrics.observe(ctx.Request.Method, route, ctx.Writer.Status(), elapsed)

	log.Infow(
		"handled request",
		"status", ctx.Writer.Status(),
		"elapsedMs", elapsed.Milliseconds(),
	)
}

// beginReadTx opens a read-only transaction and a profile for the request
func (m *ApiHandler) beginReadTx(c *gin.Context) (context.Context, *sql.Tx, error) {
	profile, _ := domain.NewProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	tx, err := m.Db.BeginTx(
		ctx,
		&sql.TxOptions{
			Isolation: sql.LevelReadCommitted,
			ReadOnly:  true,
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return ctx, tx, nil
}
