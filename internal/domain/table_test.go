package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table := NewTable(
		[]string{"a", "b", "a"},
		[][]Value{
			{TextValue("x")},
			{TextValue("y"), NumberValue(2), TextValue("z"), TextValue("excedente")},
		},
	)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"a", "b", "a"}, table.Columns())

	idx, ok := table.ColumnIndex("a")
	require.True(t, ok)
	assert.Equal(t, 0, idx, "coluna duplicada aponta para a primeira ocorrência")

	assert.True(t, table.Value(0, 1).IsNull(), "linha curta completada com ausente")
	assert.Equal(t, "z", table.Value(1, 2).String())
}

func TestTable_Transformations(t *testing.T) {
	base := NewTable(
		[]string{"nome", "valor"},
		[][]Value{
			{TextValue(" A "), NumberValue(10)},
			{TextValue("b"), NumberValue(20)},
			{NullValue(), NumberValue(30)},
		},
	)

	tests := []struct {
		name     string
		run      func() *Table
		validate func(t *testing.T, result *Table)
	}{
		{
			name: "MapColumn não altera a tabela original",
			run: func() *Table {
				return base.MapColumn("valor", func(v Value) Value {
					return NumberValue(v.NumberOrZero() * 2)
				})
			},
			validate: func(t *testing.T, result *Table) {
				assert.Equal(t, "20", result.Value(0, 1).String())
				assert.Equal(t, "10", base.Value(0, 1).String())
			},
		},
		{
			name: "MapColumn com coluna inexistente devolve a mesma tabela",
			run: func() *Table {
				return base.MapColumn("inexistente", func(v Value) Value { return v })
			},
			validate: func(t *testing.T, result *Table) {
				assert.Same(t, base, result)
			},
		},
		{
			name: "Filter mantém apenas as linhas selecionadas",
			run: func() *Table {
				return base.Filter(func(row int) bool {
					return !base.Value(row, 0).IsNull()
				})
			},
			validate: func(t *testing.T, result *Table) {
				assert.Equal(t, 2, result.Len())
				assert.Equal(t, 3, base.Len())
			},
		},
		{
			name: "RenameColumns reconstrói o índice",
			run: func() *Table {
				return base.RenameColumns(func(s string) string { return s + "_x" })
			},
			validate: func(t *testing.T, result *Table) {
				assert.True(t, result.HasColumn("nome_x"))
				assert.False(t, result.HasColumn("nome"))
				assert.True(t, base.HasColumn("nome"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.run())
		})
	}
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Columns())
	assert.False(t, table.HasColumn("x"))
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "Ausente vira nan", value: NullValue(), expected: "nan"},
		{name: "Número inteiro sem casas", value: NumberValue(3), expected: "3"},
		{name: "Número decimal", value: NumberValue(2.5), expected: "2.5"},
		{name: "Data sem horário", value: DateValue(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), expected: "2024-03-01"},
		{name: "Data com horário", value: DateValue(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)), expected: "2024-03-01 10:30:00"},
		{name: "Texto", value: TextValue("sul"), expected: "sul"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}
