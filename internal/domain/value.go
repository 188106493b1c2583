package domain

import (
	"math"
	"strconv"
	"time"
)

// MissingLabel é o texto usado quando um valor ausente precisa virar texto
// (normalização de colunas textuais e chaves de agrupamento).
const MissingLabel = "nan"

// Kind identifica o tipo de uma célula da tabela
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "null"
	}
}

// Value é uma célula tipada. O valor zero representa ausência de valor.
type Value struct {
	kind Kind
	text string
	num  float64
	date time.Time
}

func NullValue() Value {
	return Value{}
}

func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NumberValue cria uma célula numérica. NaN e infinitos viram ausência de valor.
func NumberValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

func DateValue(t time.Time) Value {
	if t.IsZero() {
		return Value{}
	}
	return Value{kind: KindDate, date: t}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// NumberOrZero devolve o número da célula ou 0 quando ela não é numérica
func (v Value) NumberOrZero() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

func (v Value) Date() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

// String devolve a representação textual da célula. Ausência vira MissingLabel.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		if v.date.Hour() == 0 && v.date.Minute() == 0 && v.date.Second() == 0 && v.date.Nanosecond() == 0 {
			return v.date.Format(time.DateOnly)
		}
		return v.date.Format(time.DateTime)
	default:
		return MissingLabel
	}
}

// Equal compara duas células pelo tipo e conteúdo
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindNumber:
		return v.num == other.num
	case KindDate:
		return v.date.Equal(other.date)
	default:
		return true
	}
}
