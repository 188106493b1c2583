package exporting

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/pkg/utils"
)

const (
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginBottom = 15.0
	contentWidth = 180.0
	chartHeight  = 70.0
)

var regionalColumns = []struct {
	title string
	width float64
	align string
}{
	{"Região", 60, "L"},
	{"Total de vendas", 45, "R"},
	{"Transações", 30, "R"},
	{"Média por transação", 45, "R"},
}

type PDFRenderer struct{}

func (PDFRenderer) Format() string { return FormatPDF }

func (PDFRenderer) ContentType() string { return "application/pdf" }

func (PDFRenderer) Render(report *domain.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Relatório Analítico", true)
	pdf.SetCreationDate(report.GeneratedAt)

	// fontes padrão usam cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Relatório Analítico"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	writeMetadata(pdf, tr, report)
	writeMainMetrics(pdf, tr, report)
	writeRegional(pdf, tr, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func keyValue(pdf *fpdf.Fpdf, tr func(string) string, key, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 6, tr(key), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func writeMetadata(pdf *fpdf.Fpdf, tr func(string) string, report *domain.Report) {
	keyValue(pdf, tr, "Gerado em:", report.GeneratedAt.UTC().Format("02/01/2006 15:04:05 UTC"))
	keyValue(pdf, tr, "Arquivo original:", report.OriginalFilename)
	keyValue(pdf, tr, "Linhas processadas:", fmt.Sprintf("%d", report.RowCount))
}

func writeMainMetrics(pdf *fpdf.Fpdf, tr func(string) string, report *domain.Report) {
	sectionTitle(pdf, tr, "Métricas principais")

	sales := report.SalesSummary
	financial := report.FinancialMetrics

	keyValue(pdf, tr, "Total de vendas:", "R$ "+utils.FormatMoney(sales.TotalSales))
	keyValue(pdf, tr, "Número de transações:", fmt.Sprintf("%d", sales.TransactionCount))
	keyValue(pdf, tr, "Média por transação:", "R$ "+utils.FormatMoney(sales.AveragePerTransaction))
	keyValue(pdf, tr, "Receita líquida:", "R$ "+utils.FormatMoney(financial.NetRevenue))
	keyValue(pdf, tr, "Lucro bruto:", "R$ "+utils.FormatMoney(financial.GrossProfit))
	keyValue(pdf, tr, "Custo total:", "R$ "+utils.FormatMoney(financial.TotalCost))
}

func writeRegional(pdf *fpdf.Fpdf, tr func(string) string, report *domain.Report) {
	sectionTitle(pdf, tr, "Performance por região")

	regions := report.RegionalPerformance.Keys()
	if len(regions) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, tr("Sem dados regionais para exibir."), "", 1, "L", false, 0, "")
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for _, col := range regionalColumns {
		pdf.CellFormat(col.width, 7, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, region := range regions {
		stats, _ := report.RegionalPerformance.Get(region)
		values := []string{
			region,
			utils.FormatMoney(stats.TotalSales),
			fmt.Sprintf("%d", stats.TransactionCount),
			utils.FormatMoney(stats.AveragePerTransaction),
		}
		for i, col := range regionalColumns {
			pdf.CellFormat(col.width, 6, tr(values[i]), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	writeRegionalChart(pdf, tr, report.RegionalPerformance)
}

// writeRegionalChart desenha um gráfico de barras com o total de vendas por região
func writeRegionalChart(pdf *fpdf.Fpdf, tr func(string) string, performance domain.RegionalPerformance) {
	if pdf.GetY()+chartHeight+30 > pageHeight-marginBottom {
		pdf.AddPage()
	}

	sectionTitle(pdf, tr, "Vendas por Região")

	regions := performance.Keys()
	maxTotal := 0.0
	for _, region := range regions {
		stats, _ := performance.Get(region)
		maxTotal = math.Max(maxTotal, stats.TotalSales)
	}

	top := pdf.GetY() + 6
	base := top + chartHeight
	slot := contentWidth / float64(len(regions))
	barWidth := math.Min(slot*0.6, 30)

	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(marginLeft, base, marginLeft+contentWidth, base)

	pdf.SetFillColor(70, 130, 180)
	for i, region := range regions {
		stats, _ := performance.Get(region)

		height := 0.0
		if maxTotal > 0 && stats.TotalSales > 0 {
			height = stats.TotalSales / maxTotal * chartHeight
		}

		x := marginLeft + float64(i)*slot + (slot-barWidth)/2
		if height > 0 {
			pdf.Rect(x, base-height, barWidth, height, "F")
		}

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(x-(slot-barWidth)/2, base-height-5)
		pdf.CellFormat(slot, 4, utils.FormatMoney(stats.TotalSales), "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(x-(slot-barWidth)/2, base+1)
		pdf.CellFormat(slot, 5, tr(region), "", 0, "C", false, 0, "")
	}

	pdf.SetXY(marginLeft, base+8)
}
