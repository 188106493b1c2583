package reporting

import (
	"strings"
	"time"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
	"github.com/GomesTenorio/Hanami2025/pkg/utils"
)

// DateRange é um intervalo inclusivo de datas. Limites nil não restringem.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Validate rejeita intervalos com início posterior ao fim
func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && dayOf(*r.Start).After(dayOf(*r.End)) {
		return domain.NewInvalidParameterError("start_date não pode ser maior que end_date")
	}
	return nil
}

// ParseDateRange converte start_date e end_date no formato YYYY-MM-DD
func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return DateRange{}, domain.NewInvalidParameterError("Data inválida: '" + start + "'. Use o formato YYYY-MM-DD.")
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return DateRange{}, domain.NewInvalidParameterError("Data inválida: '" + end + "'. Use o formato YYYY-MM-DD.")
	}

	r := DateRange{Start: startDate, End: endDate}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// FilterByDateRange mantém as linhas cuja data (por dia) está dentro do intervalo.
// Linhas sem data são descartadas quando há algum limite. Sem a coluna, nada é filtrado.
func FilterByDateRange(t *domain.Table, column string, r DateRange) *domain.Table {
	if r.IsZero() {
		return t
	}

	idx, ok := t.ColumnIndex(column)
	if !ok {
		return t
	}

	var start, end time.Time
	if r.Start != nil {
		start = dayOf(*r.Start)
	}
	if r.End != nil {
		end = dayOf(*r.End)
	}

	return t.Filter(func(row int) bool {
		date, ok := ingesting.ToDate(t.Value(row, idx)).Date()
		if !ok {
			return false
		}

		day := dayOf(date)
		if r.Start != nil && day.Before(start) {
			return false
		}
		if r.End != nil && day.After(end) {
			return false
		}
		return true
	})
}

// dayOf descarta horário e fuso, mantendo o dia do calendário
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeState aplica trim e maiúsculas na sigla do estado
func NormalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

// FilterByState mantém as linhas de estado_cliente igual à sigla informada,
// sem diferenciar maiúsculas nem espaços. Sem filtro ou sem a coluna, nada é filtrado.
func FilterByState(t *domain.Table, state string) *domain.Table {
	uf := NormalizeState(state)
	if uf == "" {
		return t
	}

	idx, ok := t.ColumnIndex(ColumnState)
	if !ok {
		return t
	}

	return t.Filter(func(row int) bool {
		return NormalizeState(t.Value(row, idx).String()) == uf
	})
}
