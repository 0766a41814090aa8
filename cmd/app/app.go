package main

import (
	"os"

	"github.com/ecobazaar/ml-backend/internal/app"
	config "github.com/ecobazaar/ml-backend/internal/cfg"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			EcoBazaar ML Recommender API
//	@version		1.0
//	@description	Рекомендации эко-товаров: похожие товары, подборка для главной и чат-бот
//	@BasePath		/api/v1

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
