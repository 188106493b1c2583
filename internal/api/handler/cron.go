package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/GomesTenorio/Hanami2025/internal/scheduler"
	"github.com/GomesTenorio/Hanami2025/pkg/apiErrors"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRetention = "retention"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	RetentionSweepService *scheduler.RetentionSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRetention, CronJobTypeAll:
			if services.RetentionSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de arquivos não disponível", nil)
				return
			}
			services.RetentionSweepService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: retention, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RetentionSweepService != nil {
			status[CronJobTypeRetention] = services.RetentionSweepService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
