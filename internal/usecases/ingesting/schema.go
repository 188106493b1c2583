package ingesting

// Schema define as colunas esperadas de uma planilha de vendas e como cada uma é tratada
type Schema struct {
	Expected []string // precisam existir no arquivo
	Critical []string // linhas com valor ausente são descartadas
	Numeric  []string
	Date     []string
	Text     []string // normalizadas (trim + minúsculas)
	// FillDefaults preenche valores ausentes antes do descarte por colunas críticas
	FillDefaults map[string]string
}

func DefaultSchema() Schema {
	return Schema{
		Expected: []string{"valor_final", "idade_cliente", "data_venda", "canal_venda"},
		Critical: []string{"valor_final"},
		Numeric: []string{
			"valor_final",
			"idade_cliente",
			"subtotal",
			"desconto_percent",
			"preco_unitario",
			"quantidade",
			"margem_lucro",
			"renda_estimada",
			"tempo_entrega_dias",
		},
		Date: []string{"data_venda"},
		Text: []string{"canal_venda"},
	}
}
