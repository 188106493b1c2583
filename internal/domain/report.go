package domain

import "time"

// Campos de ordenação aceitos pela análise de produtos
const (
	SortByQuantity = "quantidade"
	SortByTotal    = "total_arrecadado"
	SortByName     = "nome"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Faixas etárias na ordem em que são reportadas
var AgeRangeLabels = []string{"0-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

type SalesSummary struct {
	TotalSales            float64 `json:"total_vendas"`
	TransactionCount      int     `json:"numero_transacoes"`
	AveragePerTransaction float64 `json:"media_por_transacao"`
}

type FinancialMetrics struct {
	NetRevenue  float64 `json:"receita_liquida"`
	GrossProfit float64 `json:"lucro_bruto"`
	TotalCost   float64 `json:"custo_total"`
}

type ProductSales struct {
	ProductName    string  `json:"nome_produto"`
	QuantitySold   int64   `json:"quantidade_vendida"`
	TotalCollected float64 `json:"total_arrecadado"`
}

type RegionStats struct {
	TotalSales            float64 `json:"total_vendas"`
	TransactionCount      int     `json:"numero_transacoes"`
	AveragePerTransaction float64 `json:"media_por_transacao"`
}

type RegionalMetric struct {
	Region string `json:"regiao"`
	RegionStats
}

// RegionalPerformance agrupa as métricas por região, na ordem do ranking
type RegionalPerformance = Keyed[RegionStats]

type Share struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type DistributionEntry struct {
	Key string `json:"key"`
	Share
}

type CustomerDistribution struct {
	Gender   []DistributionEntry `json:"genero"`
	AgeRange []DistributionEntry `json:"faixa_etaria"`
	City     []DistributionEntry `json:"cidade"`
}

type CustomerProfile struct {
	Gender   Keyed[Share] `json:"genero"`
	AgeRange Keyed[Share] `json:"faixa_etaria"`
	City     Keyed[Share] `json:"cidade"`
}

// Report é o relatório consolidado, base das exportações JSON e PDF
type Report struct {
	GeneratedAt         time.Time           `json:"generated_at"`
	DatasetID           string              `json:"dataset_id"`
	OriginalFilename    string              `json:"arquivo_original"`
	RowCount            int                 `json:"linhas_processadas"`
	SalesSummary        SalesSummary        `json:"sales_summary"`
	FinancialMetrics    FinancialMetrics    `json:"financial_metrics"`
	RegionalPerformance RegionalPerformance `json:"regional_performance"`
	TopProducts         []ProductSales      `json:"product_analysis_top20"`
	CustomerProfile     CustomerProfile     `json:"customer_profile"`
}
