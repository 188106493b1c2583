package handler

import (
	"net/http"
	"strconv"

	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

type downloadQuery struct {
	Format string `query:"format" validate:"oneof=json pdf"`
}

// DownloadReport gera o relatório consolidado como anexo report.json ou report.pdf
func DownloadReport(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := downloadQuery{
			Format: exporting.NormalizeFormat(r.URL.Query().Get("format")),
		}

		if err := validate.Struct(query); err != nil {
			writeValidationFailure(w, r, err)
			return
		}

		artifact, err := service.Export(r.Context(), query.Format)
		if err != nil {
			writeFailure(w, r, "download", err)
			return
		}

		w.Header().Set("Content-Type", artifact.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+artifact.DownloadName)
		w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(artifact.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("download: falha ao enviar relatório")
		}
	})
}
