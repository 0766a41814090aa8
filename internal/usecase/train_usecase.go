package usecase

import (
	"context"
	"time"

	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/internal/recommender"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/google/uuid"
)

// TrainUseCase выполняет офлайн-обучение модели. Не участвует в пути запроса:
// запускается вручную или по расписанию, когда каталог существенно изменился.
type TrainUseCase struct {
	catalogRepo  CatalogRepository
	artifactRepo ArtifactRepository
	producer     MessageProducer
	logger       logger.Logger
	maxFeatures  int
}

func NewTrainUC(
	catalogRepo CatalogRepository,
	artifactRepo ArtifactRepository,
	producer MessageProducer,
	logger logger.Logger,
	maxFeatures int,
) *TrainUseCase {
	return &TrainUseCase{
		catalogRepo:  catalogRepo,
		artifactRepo: artifactRepo,
		producer:     producer,
		logger:       logger,
		maxFeatures:  maxFeatures,
	}
}

// Train загружает каталог, обучает модель, сохраняет артефакт одним блобом
// и публикует сигнал о завершении обучения.
func (u *TrainUseCase) Train(ctx context.Context) (*TrainRes, error) {
	const op = "TrainUseCase.Train"

	products, err := u.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	model, err := recommender.Train(products, u.maxFeatures)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	model.Version = uuid.NewString()
	model.TrainedAt = time.Now().UTC()

	key, err := u.artifactRepo.Save(ctx, model)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.logger.Infof("Model trained: version %s, %d products, %d terms", model.Version, len(products), model.Vectorizer.Dim)

	// Артефакт уже сохранён: неудачная публикация сигнала не отменяет обучение,
	// сервер подхватит артефакт при следующем перезапуске
	event := domain.NewModelTrainedEvent(uuid.NewString(), model.Version, key, model.TrainedAt, len(products))
	if err := u.producer.WriteModelTrained(ctx, event); err != nil {
		u.logger.Warnf("Failed to publish model trained event: %v", e.Wrap(op, err))
	}

	return NewTrainRes(model.Version, key, len(products), model.TrainedAt), nil
}
