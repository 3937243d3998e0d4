package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/config"
	"github.com/jengzang/cricketsense-backend-go/internal/handler"
	"github.com/jengzang/cricketsense-backend-go/internal/middleware"
)

// SetupRouter 设置路由
//
// limiter guards the endpoints that run an analysis. The caller owns it and
// stops it on shutdown.
func SetupRouter(cfg *config.Config, h *handler.CoachingHandler, limiter *middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "CricketSense API is running",
		})
	})

	api := r.Group("/api/v1")
	if cfg.Auth.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.Auth.JWTSecret))
	}

	attempts := api.Group("/attempts")
	{
		attempts.POST("", limiter.Handler(), h.CreateAttempt)
		attempts.GET("", h.ListAttempts)
		attempts.GET("/:id", h.GetAttempt)
		attempts.DELETE("/:id", h.DeleteAttempt)
		attempts.GET("/:id/advice", h.GetAdvice)
		attempts.GET("/:id/summary", h.GetSummary)
		attempts.GET("/:id/narrative", limiter.Handler(), h.GetNarrative)
	}

	comparisons := api.Group("/comparisons")
	{
		comparisons.POST("", h.CreateComparison)
		comparisons.GET("/summary", h.GetComparisonSummary)
	}

	return r
}
