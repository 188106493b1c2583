package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney formata um valor com duas casas decimais
func FormatMoney(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}
