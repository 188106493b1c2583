package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate converte uma data no formato YYYY-MM-DD. Uma string vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ExportTimestamp formata o instante usado no nome dos artefatos exportados
func ExportTimestamp(t time.Time) string {
	return t.UTC().Format("20060102_150405")
}
