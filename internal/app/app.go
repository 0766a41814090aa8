package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/ecobazaar/ml-backend/internal/cfg"
	v1Http "github.com/ecobazaar/ml-backend/internal/delivery/v1/http"
	kafkaInfra "github.com/ecobazaar/ml-backend/internal/infrastructure/kafka"
	modelInfra "github.com/ecobazaar/ml-backend/internal/infrastructure/model"
	csvRepo "github.com/ecobazaar/ml-backend/internal/repository/csv"
	s3Repo "github.com/ecobazaar/ml-backend/internal/repository/minio"
	"github.com/ecobazaar/ml-backend/internal/repository/redis"
	redisConv "github.com/ecobazaar/ml-backend/internal/repository/redis/converter/generated"
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/clients"
	"github.com/ecobazaar/ml-backend/pkg/closer"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// App собирает зависимости сервера рекомендаций.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	closer   *closer.Closer
	httpSrv  *v1Http.Server
	listener *kafkaInfra.ReloadListener
	provider *modelInfra.Provider
}

// NewApp инициализирует клиентов, репозитории и usecase-слой.
// Отсутствие артефакта на старте не фатально: сервер поднимается
// в деградированном режиме и ждёт события о завершении обучения.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	artifactRepo := s3Repo.NewArtifactRepo(minioClient, cfg.Minio, cfg.Model)
	catalogRepo := csvRepo.NewCatalogRepo(cfg.Catalog)
	cacheRepo := redis.NewCacheRepo(redisClient, &redisConv.RecommendationConverterImpl{}, cfg.Redis, log)

	provider := modelInfra.NewProvider(artifactRepo, log)
	if err := provider.Reload(context.Background()); err != nil {
		log.Warnf("Initial model load failed, serving in degraded mode: %v", err)
	}

	recommendUC := usecase.NewRecommendUC(provider, catalogRepo, cacheRepo, log,
		cfg.Model.DefaultTopN, cfg.Model.HomepageQuery)
	chatbotUC := usecase.NewChatbotUC(recommendUC, catalogRepo, log, cfg.Model.DefaultTopN)

	listener := kafkaInfra.NewReloadListener(cfg.Kafka, provider, log)
	cl.Add(func(ctx context.Context) error {
		return listener.Close()
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(recommendUC, chatbotUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:      cfg,
		logger:   log,
		closer:   cl,
		httpSrv:  httpSrv,
		listener: listener,
		provider: provider,
	}, nil
}

// Run запускает слушатель Kafka и HTTP-сервер и блокируется до
// сигнала завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.listener.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}
