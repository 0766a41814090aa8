package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ecobazaar/ml-backend/internal/cfg"
	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/jitter"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	reloadBackoffBase = 1 * time.Second
	reloadBackoffMax  = 30 * time.Second
)

// ReloadListener слушает события о завершении обучения и перечитывает
// артефакт модели. Текущие запросы продолжают обслуживаться прежним
// снимком до успешной подмены.
type ReloadListener struct {
	reader   *kafka.Reader
	provider usecase.ModelProvider
	logger   logger.Logger
	wg       sync.WaitGroup
}

func NewReloadListener(cfg *cfg.KafkaCfg, provider usecase.ModelProvider, logger logger.Logger) *ReloadListener {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})

	return &ReloadListener{
		reader:   reader,
		provider: provider,
		logger:   logger,
	}
}

// Start запускает цикл чтения в отдельной горутине. Останавливается отменой контекста.
func (l *ReloadListener) Start(ctx context.Context) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
}

func (l *ReloadListener) run(ctx context.Context) {
	attempt := 0
	for {
		msg, err := l.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}

			backoff := jitter.ExponentialBackoff(reloadBackoffBase, reloadBackoffMax, attempt, jitter.DefaultJitter)
			l.logger.Warnf("Kafka read failed, retrying in %v: %v", backoff, e.Wrap(whereami.WhereAmI(), err))
			attempt++

			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			continue
		}
		attempt = 0

		var event domain.ModelTrainedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			l.logger.Warnf("Skipping malformed model event at offset %d: %v", msg.Offset, err)
			continue
		}

		l.logger.Infof("Model trained event received: version=%s products=%d", event.Version, event.Products)

		if err := l.provider.Reload(ctx); err != nil {
			// Старый снимок остаётся активным, следующее событие повторит попытку
			l.logger.Errorf(err, "Model reload failed, keeping previous snapshot")
			continue
		}

		l.logger.Infof("Model snapshot swapped to version %s", event.Version)
	}
}

// Close останавливает чтение и дожидается завершения цикла.
func (l *ReloadListener) Close() error {
	err := l.reader.Close()
	l.wg.Wait()

	return err
}
