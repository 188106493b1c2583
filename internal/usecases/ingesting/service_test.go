package ingesting

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GomesTenorio/Hanami2025/infrastructure/repository/mocks"
	storagemocks "github.com/GomesTenorio/Hanami2025/infrastructure/storage/mocks"
	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

func TestService_Upload(t *testing.T) {
	uploadedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filename string
		content  string
		loader   DatasetLoader
		setup    func(store *mocks.MockDatasetStore, files *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository)
		validate func(t *testing.T, result *domain.UploadResult, err error)
	}{
		{
			name:     "Upload válido publica o dataset e registra o histórico",
			filename: "vendas.csv",
			content:  validCSV,
			setup: func(store *mocks.MockDatasetStore, files *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				files.EXPECT().
					Save(gomock.Any(), gomock.Any(), []byte(validCSV), "").
					DoAndReturn(func(_ context.Context, name string, _ []byte, _ string) (string, error) {
						assert.True(t, strings.HasSuffix(name, ".csv"))
						assert.NotEqual(t, "vendas.csv", name)
						return "/tmp/uploads/" + name, nil
					})

				store.EXPECT().
					Set(gomock.Any(), "vendas.csv", Fingerprint([]byte(validCSV))).
					DoAndReturn(func(table *domain.Table, filename, fingerprint string) *domain.Dataset {
						return &domain.Dataset{ID: "ds-1", Table: table, OriginalFilename: filename, UploadedAt: uploadedAt}
					})

				history.EXPECT().
					SaveUpload(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record domain.UploadRecord) error {
						assert.Equal(t, "ds-1", record.DatasetID)
						assert.Equal(t, 2, record.RowCount)
						assert.Equal(t, 4, record.ColumnCount)
						assert.Equal(t, uploadedAt, record.UploadedAt)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.UploadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, StatusSuccess, result.Status)
				assert.Equal(t, 2, result.RowCount)
				assert.Equal(t, "vendas.csv", result.OriginalFilename)
				assert.Equal(t, "ds-1", result.DatasetID)
			},
		},
		{
			name:     "Falha no histórico não impede a publicação",
			filename: "vendas.csv",
			content:  validCSV,
			setup: func(store *mocks.MockDatasetStore, files *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "").Return("ok", nil)
				store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Dataset{ID: "ds-2"})
				history.EXPECT().SaveUpload(gomock.Any(), gomock.Any()).Return(errors.New("banco fora do ar"))
			},
			validate: func(t *testing.T, result *domain.UploadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ds-2", result.DatasetID)
			},
		},
		{
			name:     "Extensão não suportada é rejeitada antes de salvar",
			filename: "vendas.txt",
			content:  validCSV,
			setup:    func(*mocks.MockDatasetStore, *storagemocks.MockArtifactStore, *mocks.MockHistoryRepository) {},
			validate: func(t *testing.T, result *domain.UploadResult, err error) {
				assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
				assert.Nil(t, result)
			},
		},
		{
			name:     "Colunas ausentes mantêm o dataset anterior",
			filename: "vendas.csv",
			content:  "valor_final\n10\n",
			setup: func(store *mocks.MockDatasetStore, files *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "").Return("ok", nil)
			},
			validate: func(t *testing.T, result *domain.UploadResult, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingColumns)
				assert.Nil(t, result)
			},
		},
		{
			name:     "Falha ao salvar o arquivo",
			filename: "vendas.csv",
			content:  validCSV,
			setup: func(store *mocks.MockDatasetStore, files *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "").Return("", errors.New("disco cheio"))
			},
			validate: func(t *testing.T, result *domain.UploadResult, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "disco cheio")
				assert.Nil(t, result)
			},
		},
		{
			name:     "Leitura que excede o tempo limite vira falha de leitura",
			filename: "vendas.csv",
			content:  validCSV,
			loader: NewLoader(DefaultSchema(), WithReader(".csv", TableReaderFunc(
				func(ctx context.Context, _ io.Reader) (*domain.Table, error) {
					<-ctx.Done()
					return nil, ctx.Err()
				},
			))),
			setup: func(store *mocks.MockDatasetStore, files *storagemocks.MockArtifactStore, history *mocks.MockHistoryRepository) {
				files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "").Return("ok", nil)
			},
			validate: func(t *testing.T, result *domain.UploadResult, err error) {
				assert.ErrorIs(t, err, domain.ErrParseFailure)
				assert.Contains(t, err.Error(), "tempo limite")
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockDatasetStore(ctrl)
			files := storagemocks.NewMockArtifactStore(ctrl)
			history := mocks.NewMockHistoryRepository(ctrl)
			tt.setup(store, files, history)

			loader := tt.loader
			if loader == nil {
				loader = NewLoader(DefaultSchema())
			}

			service := NewService(loader, store, files, history, UploadOptions{
				MaxConcurrent: 2,
				ParseTimeout:  50 * time.Millisecond,
			})

			result, err := service.Upload(context.Background(), tt.filename, strings.NewReader(tt.content))
			tt.validate(t, result, err)
		})
	}
}

func TestService_History(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
		repoErr       error
	}{
		{name: "Limite zero usa o padrão", limit: 0, expectedLimit: DefaultHistoryLimit},
		{name: "Limite acima do máximo é reduzido", limit: 500, expectedLimit: MaxHistoryLimit},
		{name: "Limite válido é mantido", limit: 5, expectedLimit: 5},
		{name: "Erro do repositório é propagado", limit: 5, expectedLimit: 5, repoErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			history := mocks.NewMockHistoryRepository(ctrl)
			records := []domain.UploadRecord{{ID: "u1"}}
			history.EXPECT().ListUploads(gomock.Any(), tt.expectedLimit).Return(records, tt.repoErr)

			service := NewService(NewLoader(DefaultSchema()), mocks.NewMockDatasetStore(ctrl), storagemocks.NewMockArtifactStore(ctrl), history, UploadOptions{})

			result, err := service.History(context.Background(), tt.limit)
			if tt.repoErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "histórico de uploads")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, records, result)
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("conteúdo"))
	b := Fingerprint([]byte("conteúdo"))
	c := Fingerprint([]byte("outro"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
