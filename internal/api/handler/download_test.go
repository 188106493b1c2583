package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting/mocks"
	"github.com/GomesTenorio/Hanami2025/pkg/apiErrors"
)

func TestDownloadReport(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(exporter *mocks.MockExporter)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:  "Download em PDF",
			query: "?format=PDF",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(gomock.Any(), "pdf").Return(&exporting.Artifact{
					Format:       "pdf",
					ContentType:  "application/pdf",
					DownloadName: "report.pdf",
					Content:      []byte("%PDF-1.3"),
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
				assert.Equal(t, "attachment; filename=report.pdf", rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "8", rec.Header().Get("Content-Length"))
				assert.Equal(t, "%PDF-1.3", rec.Body.String())
			},
		},
		{
			name:  "JSON é o formato padrão",
			query: "",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(gomock.Any(), "json").Return(&exporting.Artifact{
					Format:       "json",
					ContentType:  "application/json; charset=utf-8",
					DownloadName: "report.json",
					Content:      []byte("{}"),
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "attachment; filename=report.json", rec.Header().Get("Content-Disposition"))
			},
		},
		{
			name:       "Formato inválido",
			query:      "?format=xml",
			setup:      func(*mocks.MockExporter) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name:  "Sem dataset carregado",
			query: "?format=json",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(gomock.Any(), "json").Return(nil, domain.ErrNoDataset)
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrNoDataset, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			exporter := mocks.NewMockExporter(ctrl)
			tt.setup(exporter)

			rec := serve(Reports(nil, exporter), httptest.NewRequest(http.MethodGet, "/reports/download"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			tt.validate(t, rec)
		})
	}
}
