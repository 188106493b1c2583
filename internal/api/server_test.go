package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GomesTenorio/Hanami2025/infrastructure/repository"
	"github.com/GomesTenorio/Hanami2025/infrastructure/storage"
	"github.com/GomesTenorio/Hanami2025/internal/config"
	"github.com/GomesTenorio/Hanami2025/internal/scheduler"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
)

func newTestServer(t *testing.T, secret string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Upload.MaxSizeMB = 1
	cfg.Report.TopProducts = 20
	cfg.Auth.Secret = secret
	cfg.Cors.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.RetentionSweep.CronSchedule = "0 3 * * *"

	uploads := storage.NewFileStore(t.TempDir())
	exports := storage.NewFileStore(t.TempDir())
	history := repository.NewNopHistoryRepository()
	store := repository.NewMemoryDatasetStore()

	uploader := ingesting.NewService(ingesting.NewLoader(ingesting.DefaultSchema()), store, uploads, history, ingesting.UploadOptions{MaxConcurrent: 1})
	reporter := reporting.NewService(store, cfg.Report.TopProducts)
	exporter := exporting.NewService(reporter, exports, history)

	srv, err := New(cfg, uploader, reporter, exporter, scheduler.NewRetentionSweepService(cfg, uploads, exports))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Routes(t *testing.T) {
	ts := newTestServer(t, "")

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Raiz", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "Healthcheck", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "Status do dataset", method: http.MethodGet, path: "/dataset/status", wantStatus: http.StatusOK},
		{name: "Histórico", method: http.MethodGet, path: "/dataset/history", wantStatus: http.StatusOK},
		{name: "Relatório sem dataset", method: http.MethodGet, path: "/reports/sales-summary", wantStatus: http.StatusBadRequest},
		{name: "Download sem dataset", method: http.MethodGet, path: "/reports/download", wantStatus: http.StatusBadRequest},
		{name: "Status das rotinas", method: http.MethodGet, path: "/cron/status", wantStatus: http.StatusOK},
		{name: "OpenAPI", method: http.MethodGet, path: "/docs/doc.json", wantStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, path: "/nada", wantStatus: http.StatusNotFound},
		{name: "Método não permitido", method: http.MethodDelete, path: "/dataset/status", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.Background(), tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestServer_UploadThenReport(t *testing.T) {
	ts := newTestServer(t, "")

	body, contentType := csvUpload(t, "vendas.csv", strings.Join([]string{
		"valor_final,idade_cliente,data_venda,canal_venda,regiao",
		"100,30,2024-01-01,online,sudeste",
		"200,40,2024-01-02,loja,sudeste",
		"350,25,2024-01-03,loja,nordeste",
	}, "\n"))

	resp, err := http.Post(ts.URL+"/upload", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/reports/sales-summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 650.0, summary["total_vendas"])
	assert.Equal(t, 3.0, summary["numero_transacoes"])

	resp, err = http.Get(ts.URL + "/reports/regional-performance")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), `{"nordeste":`), string(raw))
}

func TestServer_UploadRequiresTokenWhenSecretIsSet(t *testing.T) {
	ts := newTestServer(t, "segredo")

	body, contentType := csvUpload(t, "vendas.csv", "valor_final\n1\n")
	resp, err := http.Post(ts.URL+"/upload", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	reports, err := http.Get(ts.URL + "/dataset/status")
	require.NoError(t, err)
	defer reports.Body.Close()
	assert.Equal(t, http.StatusOK, reports.StatusCode, "leitura continua pública")
}

func TestServer_CorsPreflight(t *testing.T) {
	ts := newTestServer(t, "")

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/upload", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
