package exporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GomesTenorio/Hanami2025/infrastructure/repository/mocks"
	storagemocks "github.com/GomesTenorio/Hanami2025/infrastructure/storage/mocks"
	"github.com/GomesTenorio/Hanami2025/internal/domain"
	reportingmocks "github.com/GomesTenorio/Hanami2025/internal/usecases/reporting/mocks"
)

func TestService_Export(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		format   string
		setup    func(reporter *reportingmocks.MockReporter, store *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository)
		validate func(t *testing.T, artifact *Artifact, err error)
	}{
		{
			name:   "Exporta JSON por padrão",
			format: "",
			setup: func(reporter *reportingmocks.MockReporter, store *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				reporter.EXPECT().BuildReport(gomock.Any()).Return(sampleReport(), nil)
				store.EXPECT().
					Save(gomock.Any(), "report_20240501_123045.json", gomock.Any(), "application/json; charset=utf-8").
					Return("exports/report_20240501_123045.json", nil)
				history.EXPECT().
					SaveExport(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record domain.ExportRecord) error {
						assert.Equal(t, "ds-1", record.DatasetID)
						assert.Equal(t, FormatJSON, record.Format)
						assert.Equal(t, now, record.CreatedAt)
						assert.Positive(t, record.SizeBytes)
						return nil
					})
			},
			validate: func(t *testing.T, artifact *Artifact, err error) {
				require.NoError(t, err)
				assert.Equal(t, FormatJSON, artifact.Format)
				assert.Equal(t, "report.json", artifact.DownloadName)
				assert.Equal(t, "exports/report_20240501_123045.json", artifact.Location)
				assert.True(t, strings.HasPrefix(string(artifact.Content), "{"))
			},
		},
		{
			name:   "Exporta PDF e ignora falha do histórico",
			format: " PDF",
			setup: func(reporter *reportingmocks.MockReporter, store *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				reporter.EXPECT().BuildReport(gomock.Any()).Return(sampleReport(), nil)
				store.EXPECT().
					Save(gomock.Any(), "report_20240501_123045.pdf", gomock.Any(), "application/pdf").
					Return("s3://relatorios/report_20240501_123045.pdf", nil)
				history.EXPECT().SaveExport(gomock.Any(), gomock.Any()).Return(errors.New("sem conexão"))
			},
			validate: func(t *testing.T, artifact *Artifact, err error) {
				require.NoError(t, err)
				assert.Equal(t, "application/pdf", artifact.ContentType)
				assert.Equal(t, "report.pdf", artifact.DownloadName)
			},
		},
		{
			name:   "Formato inválido",
			format: "xml",
			setup:  func(*reportingmocks.MockReporter, *storagemocks.MockArtifactStore, *mocks.MockHistoryRepository) {},
			validate: func(t *testing.T, artifact *Artifact, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidParameter)
				assert.Nil(t, artifact)
			},
		},
		{
			name:   "Sem dataset carregado",
			format: "json",
			setup: func(reporter *reportingmocks.MockReporter, store *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				reporter.EXPECT().BuildReport(gomock.Any()).Return(nil, domain.ErrNoDataset)
			},
			validate: func(t *testing.T, artifact *Artifact, err error) {
				assert.ErrorIs(t, err, domain.ErrNoDataset)
				assert.Nil(t, artifact)
			},
		},
		{
			name:   "Falha ao salvar o artefato",
			format: "json",
			setup: func(reporter *reportingmocks.MockReporter, store *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				reporter.EXPECT().BuildReport(gomock.Any()).Return(sampleReport(), nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("permissão negada"))
			},
			validate: func(t *testing.T, artifact *Artifact, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao salvar relatório exportado")
				assert.Nil(t, artifact)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := reportingmocks.NewMockReporter(ctrl)
			store := storagemocks.NewMockArtifactStore(ctrl)
			history := mocks.NewMockHistoryRepository(ctrl)
			tt.setup(reporter, store, history)

			service := NewService(reporter, store, history)
			service.now = func() time.Time { return now }

			artifact, err := service.Export(context.Background(), tt.format)
			tt.validate(t, artifact, err)
		})
	}
}
