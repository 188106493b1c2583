// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sync/atomic"
	"time"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/pkg/utils"
)

// DatasetStore guarda o único dataset atualmente carregado
type DatasetStore interface {
	// Set publica um novo dataset no lugar do anterior e devolve o dataset publicado
	Set(table *domain.Table, filename string, fingerprint string) *domain.Dataset
	// Current devolve o dataset atual, ou false se nenhum foi carregado
	Current() (*domain.Dataset, bool)
}

type memoryDatasetStore struct {
	current atomic.Pointer[domain.Dataset]
	now     func() time.Time
}

func NewMemoryDatasetStore() DatasetStore {
	return &memoryDatasetStore{now: time.Now}
}

func (s *memoryDatasetStore) Set(table *domain.Table, filename string, fingerprint string) *domain.Dataset {
	dataset := &domain.Dataset{
		ID:               utils.MustGenerateID(),
		Table:            table,
		OriginalFilename: filename,
		UploadedAt:       s.now().UTC(),
		Fingerprint:      fingerprint,
	}

	s.current.Store(dataset)
	return dataset
}

func (s *memoryDatasetStore) Current() (*domain.Dataset, bool) {
	dataset := s.current.Load()
	return dataset, dataset != nil
}
