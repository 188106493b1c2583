// Package ingesting lê planilhas de vendas e as transforma em tabelas validadas
package ingesting

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

// DatasetLoader valida e normaliza o conteúdo de um arquivo enviado
type DatasetLoader interface {
	Supports(filename string) bool
	Load(ctx context.Context, filename string, r io.Reader) (*domain.Table, error)
}

type Loader struct {
	schema  Schema
	readers map[string]TableReader
}

type LoaderOption func(*Loader)

// WithReader registra (ou substitui) o leitor de uma extensão
func WithReader(extension string, reader TableReader) LoaderOption {
	return func(l *Loader) {
		l.readers[strings.ToLower(extension)] = reader
	}
}

func NewLoader(schema Schema, opts ...LoaderOption) *Loader {
	l := &Loader{
		schema: schema,
		readers: map[string]TableReader{
			".csv":  TableReaderFunc(ReadCSV),
			".xlsx": TableReaderFunc(ReadXLSX),
			".xls":  TableReaderFunc(ReadXLS),
		},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Extension devolve a extensão do arquivo em minúsculas
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func (l *Loader) Supports(filename string) bool {
	_, ok := l.readers[Extension(filename)]
	return ok
}

// Load lê o arquivo conforme a extensão e aplica o pipeline de validação:
// cabeçalhos sem espaços, colunas obrigatórias, descarte de críticas nulas,
// conversão numérica e de datas, novo descarte e normalização de texto.
func (l *Loader) Load(ctx context.Context, filename string, r io.Reader) (*domain.Table, error) {
	logger := log.ForContext(ctx)

	ext := Extension(filename)
	reader, ok := l.readers[ext]
	if !ok {
		return nil, domain.NewUnsupportedFormatError(ext)
	}

	raw, err := reader.Read(ctx, r)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		logger.WithError(err).WithField("file", filename).Warn("loader: falha ao ler o arquivo")
		return nil, domain.NewParseError(err)
	}

	table, err := l.Validate(raw)
	if err != nil {
		logger.WithError(err).WithField("file", filename).Warn("loader: arquivo rejeitado na validação")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"file":         filename,
		"raw_rows":     raw.Len(),
		"valid_rows":   table.Len(),
		"column_count": len(table.Columns()),
	}).Info("loader: arquivo carregado")

	return table, nil
}

// Validate aplica o pipeline de validação a uma tabela bruta
func (l *Loader) Validate(raw *domain.Table) (*domain.Table, error) {
	table := raw.RenameColumns(strings.TrimSpace)

	if err := RequireColumns(table, l.schema.Expected); err != nil {
		return nil, err
	}

	if len(l.schema.FillDefaults) > 0 {
		table = FillDefaults(table, l.schema.FillDefaults)
	}
	table = CleanNulls(table, l.schema.Critical)

	for _, column := range l.schema.Numeric {
		table = CoerceNumeric(table, column)
	}
	for _, column := range l.schema.Date {
		table = CoerceDate(table, column)
	}

	table = CleanNulls(table, l.schema.Critical)

	for _, column := range l.schema.Text {
		table = NormalizeText(table, column)
	}

	return table, nil
}
