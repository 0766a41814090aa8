package model

import (
	"context"
	"sync/atomic"

	"github.com/ecobazaar/ml-backend/internal/recommender"
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Provider держит в памяти текущий снимок обученной модели и атомарно
// подменяет его при перезагрузке. Снимок после публикации не мутируется,
// поэтому читатели работают без блокировок.
type Provider struct {
	repo    usecase.ArtifactRepository
	logger  logger.Logger
	current atomic.Pointer[recommender.Model]
}

func NewProvider(repo usecase.ArtifactRepository, logger logger.Logger) *Provider {
	return &Provider{
		repo:   repo,
		logger: logger,
	}
}

// Current возвращает активный снимок модели.
// Пока ни одна загрузка не удалась, возвращает ErrModelNotReady.
func (p *Provider) Current() (*recommender.Model, error) {
	m := p.current.Load()
	if m == nil {
		return nil, e.ErrModelNotReady
	}

	return m, nil
}

// Reload перечитывает артефакт из хранилища и подменяет снимок.
// При ошибке прежний снимок остаётся активным.
func (p *Provider) Reload(ctx context.Context) error {
	m, err := p.repo.Load(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.current.Store(m)
	p.logger.Infof("Model artifact loaded: version=%s products=%d vocabulary=%d",
		m.Version, len(m.Products), m.Vectorizer.Dim)

	return nil
}
