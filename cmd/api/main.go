package main

import (
	"log"
	"net/http"
	"time"

	"credit-score/internal/config"
	apihttp "credit-score/internal/http"
	"credit-score/internal/repository"
	"credit-score/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	history := repository.NewMemoryHistoryRepository()
	engine := service.ScoreEngine{}

	scoreHandler := apihttp.NewScoreHandler(logger, engine, history)
	healthHandler := apihttp.NewHealthHandler(logger, history)
	router := apihttp.NewRouter(logger, scoreHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
