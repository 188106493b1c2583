// Package exporting gera os arquivos JSON e PDF do relatório consolidado
package exporting

import (
	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/pkg/utils"
)

const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Renderer converte o relatório no conteúdo de um formato de exportação
type Renderer interface {
	Format() string
	ContentType() string
	Render(report *domain.Report) ([]byte, error)
}

type JSONRenderer struct{}

func (JSONRenderer) Format() string { return FormatJSON }

func (JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

func (JSONRenderer) Render(report *domain.Report) ([]byte, error) {
	return utils.PrettyJSON(report)
}
