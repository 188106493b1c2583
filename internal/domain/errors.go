package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de dados e validação
var (
	ErrNoDataset         = errors.New("Nenhum dataset carregado. Faça upload em /upload.")
	ErrUnsupportedFormat = errors.New("Formato inválido. Envie um arquivo CSV, XLSX ou XLS.")
	ErrParseFailure      = errors.New("Falha ao ler o arquivo")
	ErrMissingColumns    = errors.New("Arquivo inválido. Colunas ausentes")
	ErrInvalidParameter  = errors.New("Parâmetro inválido")
	ErrNoFile            = errors.New("Nenhum arquivo foi enviado.")
)

// MissingColumnsError lista todas as colunas obrigatórias ausentes
type MissingColumnsError struct {
	Columns []string
}

func NewMissingColumnsError(columns []string) *MissingColumnsError {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &MissingColumnsError{Columns: cols}
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: [%s]", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
}

// Is permite errors.Is(err, ErrMissingColumns)
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// DataError é um erro com contexto adicional sobre a falha
type DataError struct {
	Err     error  // Erro base
	Details string // Detalhes adicionais
}

func (e *DataError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func NewDataError(err error, details string) *DataError {
	return &DataError{Err: err, Details: details}
}

// NewParseError envolve a causa de uma falha de leitura do arquivo
func NewParseError(cause error) *DataError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &DataError{Err: ErrParseFailure, Details: details}
}

func NewInvalidParameterError(details string) *DataError {
	return &DataError{Err: ErrInvalidParameter, Details: details}
}

func NewUnsupportedFormatError(extension string) *DataError {
	if extension == "" {
		extension = "sem extensão"
	}
	return &DataError{Err: ErrUnsupportedFormat, Details: "Recebido: " + extension}
}
