package usecase

import (
	"context"

	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/internal/recommender"
)

// ModelProvider отдаёт текущий неизменяемый снимок обученной модели.
// Перечитывание артефакта происходит по сигналу о завершении обучения,
// а не на каждый запрос.
type ModelProvider interface {
	Current() (*recommender.Model, error)
	Reload(ctx context.Context) error
}

type MessageProducer interface {
	WriteModelTrained(ctx context.Context, event *domain.ModelTrainedEvent) error
}
