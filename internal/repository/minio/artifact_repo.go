package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/ecobazaar/ml-backend/internal/cfg"
	"github.com/ecobazaar/ml-backend/internal/recommender"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const artifactContentType = "application/json"

// ArtifactRepo хранит артефакт обученной модели одним JSON-объектом в MinIO.
type ArtifactRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
	key string
}

func NewArtifactRepo(mc *minio.Client, minioCfg *cfg.MinIOCfg, modelCfg *cfg.ModelCfg) *ArtifactRepo {
	return &ArtifactRepo{
		mc:  mc,
		cfg: minioCfg,
		key: modelCfg.ArtifactKey,
	}
}

// Save сериализует модель и атомарно перезаписывает объект артефакта.
// Возвращает ключ записанного объекта.
func (r *ArtifactRepo) Save(ctx context.Context, model *recommender.Model) (string, error) {
	if err := model.Validate(); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := json.Marshal(model)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, r.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: artifactContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Load читает и валидирует артефакт. Отсутствующий объект — ErrArtifactNotFound,
// нечитаемый или внутренне несогласованный — ErrArtifactCorrupt.
func (r *ArtifactRepo) Load(ctx context.Context) (*recommender.Model, error) {
	obj, err := r.mc.GetObject(ctx, r.cfg.BucketName, r.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject ленивый: отсутствие объекта проявляется при первом чтении
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrArtifactNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model recommender.Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrArtifactCorrupt))
	}

	if err := model.Validate(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &model, nil
}
