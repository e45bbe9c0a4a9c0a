package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/shapist-backend-go/internal/config"
	"github.com/jengzang/shapist-backend-go/internal/handler"
	"github.com/jengzang/shapist-backend-go/internal/middleware"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Auth     *handler.AuthHandler
	Analysis *handler.AnalysisHandler
	Result   *handler.ResultHandler
	Game     *handler.GameHandler
	Fitness  *handler.FitnessHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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
			"message": "Shapist Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 设备令牌
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(10, time.Minute))
		{
			auth.POST("/token", h.Auth.IssueToken)
		}

		// 体态分析接口
		api.POST("/analysis", middleware.RateLimit(30, time.Minute), h.Analysis.Analyze)

		// 健身环境识别接口
		api.POST("/fitness/environment", middleware.RateLimit(30, time.Minute), h.Fitness.AnalyzeEnvironment)

		// 历史记录接口（写操作需要令牌）
		results := api.Group("/results")
		{
			results.GET("/trend", h.Result.Trend)
			results.GET("/trend/chart", h.Result.TrendChart)
			results.GET("", middleware.Auth(cfg.JWTSecret), h.Result.List)
			results.GET("/:id", middleware.Auth(cfg.JWTSecret), h.Result.Get)
			results.POST("", middleware.Auth(cfg.JWTSecret), h.Result.Save)
			results.DELETE("/:id", middleware.Auth(cfg.JWTSecret), h.Result.Delete)
		}

		// 节奏游戏接口
		game := api.Group("/game")
		{
			game.GET("/levels", h.Game.Levels)
			game.POST("/sessions", h.Game.CreateSession)
			game.GET("/sessions/:id", h.Game.GetSession)
			game.POST("/sessions/:id/ready", h.Game.Ack)
			game.POST("/sessions/:id/ack", h.Game.Ack)
			game.POST("/sessions/:id/start", h.Game.Start)
			game.POST("/sessions/:id/frame", h.Game.Frame)
			game.POST("/sessions/:id/exit", h.Game.Exit)
			game.DELETE("/sessions/:id", h.Game.Close)
		}
	}

	return r
}
