package ingesting

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/semaphore"

	"github.com/GomesTenorio/Hanami2025/infrastructure/repository"
	"github.com/GomesTenorio/Hanami2025/infrastructure/storage"
	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
	"github.com/GomesTenorio/Hanami2025/pkg/utils"
)

const (
	StatusSuccess = "sucesso"

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Uploader recebe arquivos enviados e publica o dataset resultante
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadResult, error)
	History(ctx context.Context, limit int) ([]domain.UploadRecord, error)
}

type UploadOptions struct {
	MaxConcurrent int64
	ParseTimeout  time.Duration
}

type Service struct {
	loader       DatasetLoader
	store        repository.DatasetStore
	files        storage.ArtifactStore
	history      repository.HistoryRepository
	sem          *semaphore.Weighted
	parseTimeout time.Duration
}

func NewService(
	loader DatasetLoader,
	store repository.DatasetStore,
	files storage.ArtifactStore,
	history repository.HistoryRepository,
	opts UploadOptions,
) *Service {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}

	return &Service{
		loader:       loader,
		store:        store,
		files:        files,
		history:      history,
		sem:          semaphore.NewWeighted(opts.MaxConcurrent),
		parseTimeout: opts.ParseTimeout,
	}
}

// Upload grava o arquivo original, valida o conteúdo e publica o novo dataset.
// Em qualquer falha o dataset anterior continua publicado.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadResult, error) {
	logger := log.ForContext(ctx).WithField("file", filename)

	if !s.loader.Supports(filename) {
		return nil, domain.NewUnsupportedFormatError(Extension(filename))
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao ler o arquivo enviado")
	}

	storedName := utils.UniqueFileName(Extension(filename))
	if _, err := s.files.Save(ctx, storedName, content, ""); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao salvar o arquivo enviado")
	}

	table, err := s.load(ctx, filename, content)
	if err != nil {
		logger.WithError(err).Warn("upload: arquivo rejeitado")
		return nil, err
	}

	fingerprint := Fingerprint(content)
	dataset := s.store.Set(table, filename, fingerprint)

	record := domain.UploadRecord{
		ID:               utils.MustGenerateID(),
		DatasetID:        dataset.ID,
		OriginalFilename: filename,
		StoredName:       storedName,
		Fingerprint:      fingerprint,
		RowCount:         table.Len(),
		ColumnCount:      len(table.Columns()),
		UploadedAt:       dataset.UploadedAt,
	}
	if err := s.history.SaveUpload(ctx, record); err != nil {
		logger.WithError(err).Warn("upload: falha ao registrar upload no histórico")
	}

	logger.WithFields(log.Fields{
		"dataset_id": dataset.ID,
		"rows":       table.Len(),
		"stored_as":  storedName,
	}).Info("upload: dataset publicado")

	return &domain.UploadResult{
		Status:           StatusSuccess,
		RowCount:         table.Len(),
		OriginalFilename: filename,
		DatasetID:        dataset.ID,
	}, nil
}

func (s *Service) load(ctx context.Context, filename string, content []byte) (*domain.Table, error) {
	if s.parseTimeout <= 0 {
		return s.loader.Load(ctx, filename, bytes.NewReader(content))
	}

	parseCtx, cancel := context.WithTimeout(ctx, s.parseTimeout)
	defer cancel()

	table, err := s.loader.Load(parseCtx, filename, bytes.NewReader(content))
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, domain.NewParseError(fmt.Errorf("tempo limite de leitura excedido (%s)", s.parseTimeout))
	}
	return table, err
}

func (s *Service) History(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	records, err := s.history.ListUploads(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar histórico de uploads")
	}
	return records, nil
}

// Fingerprint é o hash BLAKE2b-256 do conteúdo, em hexadecimal
func Fingerprint(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}
