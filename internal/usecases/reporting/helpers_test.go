package reporting

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// newTable monta uma tabela a partir de valores Go: float64, int, string, time.Time ou nil
func newTable(columns []string, rows ...[]any) *domain.Table {
	values := make([][]domain.Value, len(rows))
	for i, row := range rows {
		values[i] = make([]domain.Value, len(row))
		for j, cell := range row {
			values[i][j] = toValue(cell)
		}
	}
	return domain.NewTable(columns, values)
}

func toValue(cell any) domain.Value {
	switch v := cell.(type) {
	case nil:
		return domain.NullValue()
	case float64:
		return domain.NumberValue(v)
	case int:
		return domain.NumberValue(float64(v))
	case string:
		return domain.TextValue(v)
	case time.Time:
		return domain.DateValue(v)
	default:
		panic("tipo de célula não suportado")
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
