package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/GomesTenorio/Hanami2025/pkg/apiErrors"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Erros usam o nome do parâmetro de query
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type validationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validationDetails(err error) []validationDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]validationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, validationDetail{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}
	return details
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return "Valores aceitos: " + e.Param()
	case "len":
		return "Deve ter exatamente " + e.Param() + " caracteres"
	case "alpha":
		return "Deve conter apenas letras"
	case "min":
		return "Deve ser maior ou igual a " + e.Param()
	case "max":
		return "Deve ser menor ou igual a " + e.Param()
	default:
		return "Valor inválido"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("Erro ao serializar resposta")
	}
}

// writeFailure responde com o erro padronizado e registra a falha no nível adequado
func writeFailure(w http.ResponseWriter, r *http.Request, operation string, err error) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("operation", operation)

	code := apiErrors.WriteFromError(w, err)
	if apiErrors.StatusOf(code) >= http.StatusInternalServerError {
		logger.Error("Falha ao processar requisição")
		return
	}
	logger.WithField("code", code).Warn("Requisição rejeitada")
}

func writeValidationFailure(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Parâmetros inválidos")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro inválido", validationDetails(err))
}
