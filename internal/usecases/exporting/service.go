package exporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/GomesTenorio/Hanami2025/infrastructure/repository"
	"github.com/GomesTenorio/Hanami2025/infrastructure/storage"
	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
	"github.com/GomesTenorio/Hanami2025/pkg/utils"
)

// Artifact é um relatório exportado pronto para download
type Artifact struct {
	Format       string
	ContentType  string
	DownloadName string
	Location     string
	Content      []byte
}

type Exporter interface {
	Export(ctx context.Context, format string) (*Artifact, error)
}

type Service struct {
	reporter  reporting.Reporter
	store     storage.ArtifactStore
	history   repository.HistoryRepository
	renderers map[string]Renderer
	now       func() time.Time
}

func NewService(
	reporter reporting.Reporter,
	store storage.ArtifactStore,
	history repository.HistoryRepository,
	renderers ...Renderer,
) *Service {
	if len(renderers) == 0 {
		renderers = []Renderer{JSONRenderer{}, PDFRenderer{}}
	}

	byFormat := make(map[string]Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}

	return &Service{
		reporter:  reporter,
		store:     store,
		history:   history,
		renderers: byFormat,
		now:       time.Now,
	}
}

// NormalizeFormat aplica trim e minúsculas; vazio equivale a json
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return FormatJSON
	}
	return format
}

func (s *Service) Export(ctx context.Context, format string) (*Artifact, error) {
	format = NormalizeFormat(format)

	renderer, ok := s.renderers[format]
	if !ok {
		return nil, domain.NewInvalidParameterError("Formato inválido. Use format=json ou format=pdf.")
	}

	report, err := s.reporter.BuildReport(ctx)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(report)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao renderizar relatório")
	}

	createdAt := s.now().UTC()
	name := fmt.Sprintf("report_%s.%s", utils.ExportTimestamp(createdAt), renderer.Format())

	location, err := s.store.Save(ctx, name, content, renderer.ContentType())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar relatório exportado")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id": report.DatasetID,
		"format":     format,
		"location":   location,
		"bytes":      len(content),
	})

	record := domain.ExportRecord{
		ID:        utils.MustGenerateID(),
		DatasetID: report.DatasetID,
		Format:    format,
		Location:  location,
		SizeBytes: int64(len(content)),
		CreatedAt: createdAt,
	}
	if err := s.history.SaveExport(ctx, record); err != nil {
		logger.WithError(err).Warn("exporting: falha ao registrar exportação no histórico")
	}

	logger.Info("exporting: relatório exportado")

	return &Artifact{
		Format:       format,
		ContentType:  renderer.ContentType(),
		DownloadName: "report." + renderer.Format(),
		Location:     location,
		Content:      content,
	}, nil
}
