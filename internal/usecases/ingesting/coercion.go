package ingesting

import (
	"strconv"
	"strings"
	"time"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

// Textos tratados como valor ausente ao ler o arquivo
var nullTokens = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"NULL":     {},
	"null":     {},
	"None":     {},
	"<NA>":     {},
	"#N/A":     {},
	"#NA":      {},
	"#N/A N/A": {},
	"-1.#IND":  {},
	"1.#IND":   {},
	"-1.#QNAN": {},
	"1.#QNAN":  {},
}

// Formatos de data aceitos, na ordem em que são tentados.
// Datas com barra são lidas como mês/dia/ano.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"1-2-06",
	"02.01.2006",
}

// RawCell converte o texto lido do arquivo em célula. Tokens nulos viram ausência de valor.
func RawCell(s string) domain.Value {
	if _, isNull := nullTokens[s]; isNull {
		return domain.NullValue()
	}
	return domain.TextValue(s)
}

// RequireColumns falha com *domain.MissingColumnsError listando todas as colunas ausentes
func RequireColumns(t *domain.Table, columns []string) error {
	missing := make([]string, 0)
	for _, c := range columns {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}

	if len(missing) > 0 {
		return domain.NewMissingColumnsError(missing)
	}
	return nil
}

// CoerceNumeric converte a coluna para número. Valores inválidos viram ausência de valor.
func CoerceNumeric(t *domain.Table, column string) *domain.Table {
	return t.MapColumn(column, ToNumber)
}

func ToNumber(v domain.Value) domain.Value {
	switch v.Kind() {
	case domain.KindNumber:
		return v
	case domain.KindText:
		s, _ := v.Text()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return domain.NullValue()
		}
		return domain.NumberValue(f)
	default:
		return domain.NullValue()
	}
}

// CoerceDate converte a coluna para data. Valores inválidos viram ausência de valor.
func CoerceDate(t *domain.Table, column string) *domain.Table {
	return t.MapColumn(column, ToDate)
}

func ToDate(v domain.Value) domain.Value {
	switch v.Kind() {
	case domain.KindDate:
		return v
	case domain.KindText:
		s, _ := v.Text()
		s = strings.TrimSpace(s)
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, s); err == nil {
				return domain.DateValue(d)
			}
		}
		return domain.NullValue()
	default:
		return domain.NullValue()
	}
}

// NormalizeText aplica trim e minúsculas. Valores ausentes viram domain.MissingLabel.
func NormalizeText(t *domain.Table, column string) *domain.Table {
	return t.MapColumn(column, func(v domain.Value) domain.Value {
		return domain.TextValue(strings.ToLower(strings.TrimSpace(v.String())))
	})
}

// CleanNulls descarta as linhas com valor ausente em alguma coluna crítica presente na tabela
func CleanNulls(t *domain.Table, critical []string) *domain.Table {
	indexes := make([]int, 0, len(critical))
	for _, c := range critical {
		if idx, ok := t.ColumnIndex(c); ok {
			indexes = append(indexes, idx)
		}
	}

	if len(indexes) == 0 {
		return t
	}

	return t.Filter(func(row int) bool {
		for _, idx := range indexes {
			if t.Value(row, idx).IsNull() {
				return false
			}
		}
		return true
	})
}

// FillDefaults preenche valores ausentes das colunas informadas
func FillDefaults(t *domain.Table, defaults map[string]string) *domain.Table {
	for column, value := range defaults {
		fill := domain.TextValue(value)
		t = t.MapColumn(column, func(v domain.Value) domain.Value {
			if v.IsNull() {
				return fill
			}
			return v
		})
	}
	return t
}
