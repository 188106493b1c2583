package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de dados
	ErrNoDataset         = "DATA_001" // Nenhum dataset carregado
	ErrUnsupportedFormat = "DATA_002" // Extensão de arquivo não suportada
	ErrParseFailure      = "DATA_003" // Arquivo ilegível
	ErrMissingColumns    = "DATA_004" // Colunas obrigatórias ausentes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Arquivo maior que o permitido

	// Erros de roteamento
	ErrRouteNotFound    = "HTTP_001" // Rota inexistente
	ErrMethodNotAllowed = "HTTP_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrNoDataset:             http.StatusBadRequest,
	ErrUnsupportedFormat:     http.StatusUnprocessableEntity,
	ErrParseFailure:          http.StatusUnprocessableEntity,
	ErrMissingColumns:        http.StatusUnprocessableEntity,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrPayloadTooLarge:       http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusOf devolve o status HTTP associado ao código
func StatusOf(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError converte um erro de domínio no erro de API correspondente.
// Erros desconhecidos viram SRV_001 com mensagem genérica.
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var details any
	var dataErr *domain.DataError
	if errors.As(err, &dataErr) && dataErr.Details != "" {
		details = dataErr.Details
	}

	var missing *domain.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		return APIError{
			Code:    ErrMissingColumns,
			Message: missing.Error(),
			Details: map[string]any{"missing_columns": missing.Columns},
		}
	case errors.Is(err, domain.ErrNoDataset):
		return APIError{Code: ErrNoDataset, Message: domain.ErrNoDataset.Error()}
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return APIError{Code: ErrUnsupportedFormat, Message: domain.ErrUnsupportedFormat.Error(), Details: details}
	case errors.Is(err, domain.ErrParseFailure):
		return APIError{Code: ErrParseFailure, Message: domain.ErrParseFailure.Error(), Details: details}
	case errors.Is(err, domain.ErrInvalidParameter):
		return APIError{Code: ErrInvalidRequest, Message: domain.ErrInvalidParameter.Error(), Details: details}
	case errors.Is(err, domain.ErrNoFile):
		return APIError{Code: ErrMissingRequiredData, Message: domain.ErrNoFile.Error()}
	default:
		return APIError{Code: ErrInternalServer, Message: "Erro interno do servidor"}
	}
}

// WriteFromError escreve a resposta correspondente ao erro e devolve o código usado
func WriteFromError(w http.ResponseWriter, err error) string {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
	return apiErr.Code
}
