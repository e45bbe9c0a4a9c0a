package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port                  string
	DBPath                string
	JWTSecret             string
	DetectorURL           string  // 姿勢檢測服務地址
	DetectorMinConfidence float64 // 低於此置信度的檢測結果會被丟棄
	FitnessAPIURL         string  // 健身環境識別服務地址
	DefaultLang           string
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/shapist.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	detectorURL := os.Getenv("DETECTOR_URL")
	if detectorURL == "" {
		detectorURL = "http://localhost:9090"
	}

	minConfidence := 0.5
	if raw := os.Getenv("DETECTOR_MIN_CONFIDENCE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			minConfidence = v
		}
	}

	fitnessURL := os.Getenv("FITNESS_API_URL")
	if fitnessURL == "" {
		fitnessURL = "http://localhost:9091"
	}

	lang := os.Getenv("DEFAULT_LANG")
	if lang == "" {
		lang = "en"
	}

	return &Config{
		Port:                  port,
		DBPath:                dbPath,
		JWTSecret:             jwtSecret,
		DetectorURL:           detectorURL,
		DetectorMinConfidence: minConfidence,
		FitnessAPIURL:         fitnessURL,
		DefaultLang:           lang,
	}
}
