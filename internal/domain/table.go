package domain

// Table é uma tabela imutável de linhas e colunas. Toda transformação devolve
// uma nova tabela; as linhas da tabela original nunca são alteradas.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// NewTable monta uma tabela. Linhas mais curtas que o cabeçalho são completadas
// com valores ausentes e células excedentes são descartadas.
func NewTable(columns []string, rows [][]Value) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)

	normalized := make([][]Value, len(rows))
	for i, row := range rows {
		if len(row) == len(cols) {
			normalized[i] = row
			continue
		}
		fixed := make([]Value, len(cols))
		copy(fixed, row)
		normalized[i] = fixed
	}

	return &Table{
		columns: cols,
		index:   buildIndex(cols),
		rows:    normalized,
	}
}

func buildIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := index[c]; !exists {
			index[c] = i
		}
	}
	return index
}

// Columns devolve uma cópia dos nomes das colunas, na ordem original
func (t *Table) Columns() []string {
	if t == nil {
		return []string{}
	}
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len devolve o número de linhas
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

func (t *Table) ColumnIndex(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[name]
	return i, ok
}

// Value devolve a célula da linha row na coluna de índice col
func (t *Table) Value(row, col int) Value {
	return t.rows[row][col]
}

// Column devolve os valores de uma coluna
func (t *Table) Column(name string) ([]Value, bool) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, false
	}
	values := make([]Value, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	return values, true
}

// RenameColumns aplica fn a cada nome de coluna, compartilhando as linhas
func (t *Table) RenameColumns(fn func(string) string) *Table {
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = fn(c)
	}
	return &Table{columns: cols, index: buildIndex(cols), rows: t.rows}
}

// MapColumn devolve uma nova tabela com fn aplicada a cada célula da coluna.
// Se a coluna não existe, a própria tabela é devolvida.
func (t *Table) MapColumn(name string, fn func(Value) Value) *Table {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return t
	}

	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		copied := make([]Value, len(row))
		copy(copied, row)
		copied[idx] = fn(row[idx])
		rows[i] = copied
	}

	return &Table{columns: t.columns, index: t.index, rows: rows}
}

// Filter devolve uma nova tabela apenas com as linhas em que keep retorna true
func (t *Table) Filter(keep func(row int) bool) *Table {
	rows := make([][]Value, 0, len(t.rows))
	for i, row := range t.rows {
		if keep(i) {
			rows = append(rows, row)
		}
	}
	return &Table{columns: t.columns, index: t.index, rows: rows}
}
