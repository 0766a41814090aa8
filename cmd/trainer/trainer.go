package main

import (
	"context"
	"os"
	"time"

	config "github.com/ecobazaar/ml-backend/internal/cfg"
	kafkaInfra "github.com/ecobazaar/ml-backend/internal/infrastructure/kafka"
	csvRepo "github.com/ecobazaar/ml-backend/internal/repository/csv"
	s3Repo "github.com/ecobazaar/ml-backend/internal/repository/minio"
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/clients"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/joho/godotenv"
)

const trainTimeout = 5 * time.Minute

// Тренер — разовый процесс: читает CSV-выгрузку каталога, обучает модель,
// кладёт артефакт в MinIO и публикует сигнал о завершении обучения.
func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), trainTimeout)
	defer cancel()

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}
	if err := clients.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
		log.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}

	producer, err := kafkaInfra.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	defer producer.Close()

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	trainUC := usecase.NewTrainUC(
		csvRepo.NewCatalogRepo(cfg.Catalog),
		s3Repo.NewArtifactRepo(minioClient, cfg.Minio, cfg.Model),
		producer,
		log,
		cfg.Model.MaxFeatures,
	)

	res, err := trainUC.Train(ctx)
	if err != nil {
		log.Errorf(err, "training failed")
		os.Exit(1)
	}

	log.Infof("Training complete: version=%s key=%s products=%d", res.Version, res.ObjectKey, res.Products)
}
