package model

import (
	"context"
	"errors"
	"testing"

	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/internal/recommender"
	"github.com/ecobazaar/ml-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type stubArtifactRepo struct {
	model *recommender.Model
	err   error
}

func (s *stubArtifactRepo) Save(ctx context.Context, model *recommender.Model) (string, error) {
	return "", nil
}

func (s *stubArtifactRepo) Load(ctx context.Context) (*recommender.Model, error) {
	return s.model, s.err
}

func trainedModel(t *testing.T, version string) *recommender.Model {
	t.Helper()

	m, err := recommender.Train([]domain.Product{
		{ProductID: "1", Name: "Bamboo Toothbrush", Category: "Home", Description: "Biodegradable toothbrush"},
		{ProductID: "2", Name: "Solar Power Bank", Category: "Electronics", Description: "Portable solar charger"},
	}, 0)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	m.Version = version

	return m
}

func TestCurrent_NotReadyBeforeFirstLoad(t *testing.T) {
	p := NewProvider(&stubArtifactRepo{}, nopLogger{})

	if _, err := p.Current(); !errors.Is(err, e.ErrModelNotReady) {
		t.Fatalf("Current() error = %v, want ErrModelNotReady", err)
	}
}

func TestReload_SwapsSnapshot(t *testing.T) {
	repo := &stubArtifactRepo{model: trainedModel(t, "v1")}
	p := NewProvider(repo, nopLogger{})

	if err := p.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	m, err := p.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if m.Version != "v1" {
		t.Errorf("Version = %q, want %q", m.Version, "v1")
	}

	repo.model = trainedModel(t, "v2")
	if err := p.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	m, _ = p.Current()
	if m.Version != "v2" {
		t.Errorf("Version after reload = %q, want %q", m.Version, "v2")
	}
}

func TestReload_FailureKeepsPreviousSnapshot(t *testing.T) {
	repo := &stubArtifactRepo{model: trainedModel(t, "v1")}
	p := NewProvider(repo, nopLogger{})

	if err := p.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	repo.model = nil
	repo.err = e.ErrArtifactCorrupt
	if err := p.Reload(context.Background()); !errors.Is(err, e.ErrArtifactCorrupt) {
		t.Fatalf("Reload() error = %v, want ErrArtifactCorrupt", err)
	}

	m, err := p.Current()
	if err != nil {
		t.Fatalf("Current() error = %v, want previous snapshot", err)
	}
	if m.Version != "v1" {
		t.Errorf("Version = %q, want previous %q", m.Version, "v1")
	}
}
