package main

import (
	"log"
	"time"

	"github.com/jengzang/shapist-backend-go/internal/api"
	"github.com/jengzang/shapist-backend-go/internal/config"
	"github.com/jengzang/shapist-backend-go/internal/database"
	"github.com/jengzang/shapist-backend-go/internal/handler"
	"github.com/jengzang/shapist-backend-go/internal/locale"
	"github.com/jengzang/shapist-backend-go/internal/pose"
	"github.com/jengzang/shapist-backend-go/internal/repository"
	"github.com/jengzang/shapist-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// 姿势检测客户端
	detectorFactory := func() (pose.Detector, error) {
		return pose.NewHTTPDetector(pose.ClientConfig{
			BaseURL:       cfg.DetectorURL,
			MinConfidence: cfg.DetectorMinConfidence,
			Timeout:       30 * time.Second,
		}), nil
	}

	// 组装服务与处理器
	db := database.GetDB()
	resultService := service.NewResultService(repository.NewResultRepository(db))
	analysisService := service.NewAnalysisService(detectorFactory)
	gameService := service.NewGameService(detectorFactory, repository.NewGameRepository(db))
	fitnessService := service.NewFitnessService(cfg.FitnessAPIURL)

	handlers := api.Handlers{
		Auth:     handler.NewAuthHandler(cfg.JWTSecret),
		Analysis: handler.NewAnalysisHandler(analysisService, resultService, locale.Language(cfg.DefaultLang)),
		Result:   handler.NewResultHandler(resultService),
		Game:     handler.NewGameHandler(gameService),
		Fitness:  handler.NewFitnessHandler(fitnessService),
	}

	// 初始化路由
	router := api.SetupRouter(cfg, handlers)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
