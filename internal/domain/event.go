package domain

import "time"

// ModelTrainedEvent — событие о завершении обучения модели.
// Публикуется тренером в Kafka; сервер по нему перечитывает артефакт.
type ModelTrainedEvent struct {
	EventID   string    `json:"event_id"`
	Version   string    `json:"version"`
	ObjectKey string    `json:"object_key"`
	TrainedAt time.Time `json:"trained_at"`
	Products  int       `json:"products"`
}

func NewModelTrainedEvent(eventID, version, objectKey string, trainedAt time.Time, products int) *ModelTrainedEvent {
	return &ModelTrainedEvent{
		EventID:   eventID,
		Version:   version,
		ObjectKey: objectKey,
		TrainedAt: trainedAt,
		Products:  products,
	}
}
