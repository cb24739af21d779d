package main

import (
	"cctv_estimator/config"
	"cctv_estimator/internal/adapter/http/routes"
	"cctv_estimator/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           CCTV Estimator API
// @version         1.0
// @description     Installation estimates, contact inquiries and the admin price table for a CCTV shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  bharatmultiservicesnagpur@gmail.com

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminSession
// @in cookie
// @name bms_admin

func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer func() { _ = log.Sync() }()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}
