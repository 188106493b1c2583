package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
	"github.com/GomesTenorio/Hanami2025/pkg/apiErrors"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

const uploadFormField = "file"

// UploadDataset recebe um arquivo multipart no campo "file" e publica o novo dataset
func UploadDataset(service ingesting.Uploader, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				logger.WithField("limit_bytes", tooLarge.Limit).Warn("upload: arquivo excede o limite")
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge,
					fmt.Sprintf("Arquivo excede o limite de %d MB.", tooLarge.Limit>>20), nil)
			case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
				writeFailure(w, r, "upload", domain.ErrNoFile)
			default:
				logger.WithError(err).Warn("upload: corpo multipart inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida", nil)
			}
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"file": header.Filename,
			"size": header.Size,
		}).Info("upload: arquivo recebido")

		result, err := service.Upload(r.Context(), header.Filename, file)
		if err != nil {
			writeFailure(w, r, "upload", err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

type historyQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// UploadHistory lista os uploads mais recentes
func UploadHistory(service ingesting.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var query historyQuery

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				writeFailure(w, r, "history", domain.NewInvalidParameterError("limit deve ser um número inteiro"))
				return
			}
			query.Limit = limit
		}

		if err := validate.Struct(query); err != nil {
			writeValidationFailure(w, r, err)
			return
		}

		records, err := service.History(r.Context(), query.Limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("history: falha ao consultar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de uploads", nil)
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}
