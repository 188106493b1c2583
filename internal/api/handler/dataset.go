package handler

import (
	"net/http"

	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
)

// DatasetStatus informa se há dataset carregado e seus metadados
func DatasetStatus(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status(r.Context()))
	})
}
