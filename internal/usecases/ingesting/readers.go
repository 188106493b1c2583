package ingesting

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

// TableReader converte o conteúdo de um arquivo em uma tabela bruta (células de texto)
type TableReader interface {
	Read(ctx context.Context, r io.Reader) (*domain.Table, error)
}

type TableReaderFunc func(ctx context.Context, r io.Reader) (*domain.Table, error)

func (f TableReaderFunc) Read(ctx context.Context, r io.Reader) (*domain.Table, error) {
	return f(ctx, r)
}

// intervalo de linhas entre verificações de cancelamento
const ctxCheckInterval = 1024

var errEmptyFile = errors.New("arquivo vazio: nenhuma coluna encontrada")

// ReadCSV lê um CSV separado por vírgula. A primeira linha é o cabeçalho.
func ReadCSV(ctx context.Context, r io.Reader) (*domain.Table, error) {
	br := bufio.NewReader(r)

	// Remove BOM UTF-8
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errEmptyFile
	}
	if err != nil {
		return nil, err
	}

	columns := headerNames(header)
	rows := make([][]domain.Value, 0)

	for line := 2; ; line++ {
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) > len(columns) {
			recordLine, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("esperado %d campos na linha %d, encontrado %d", len(columns), recordLine, len(record))
		}

		rows = append(rows, rawRow(record, len(columns)))
	}

	return domain.NewTable(columns, rows), nil
}

// ReadXLSX lê a primeira planilha de um arquivo .xlsx. As células são lidas pelo valor
// armazenado, sem a formatação de exibição; números com formato de data viram datas.
func ReadXLSX(ctx context.Context, r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("arquivo sem planilhas")
	}
	sheet := sheets[0]

	rowsIter, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0)
	for i := 1; rowsIter.Next(); i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				rowsIter.Close()
				return nil, err
			}
		}

		values, err := rowsIter.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			rowsIter.Close()
			return nil, err
		}
		records = append(records, values)
	}
	if err := rowsIter.Error(); err != nil {
		rowsIter.Close()
		return nil, err
	}
	if err := rowsIter.Close(); err != nil {
		return nil, err
	}

	dates := newXLSXDates(f, sheet)
	return sheetTable(records, dates.value), nil
}

// xlsxDates identifica células numéricas formatadas como data
type xlsxDates struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	byStyle  map[int]bool
}

func newXLSXDates(f *excelize.File, sheet string) *xlsxDates {
	d := &xlsxDates{f: f, sheet: sheet, byStyle: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// value converte a célula bruta da linha/coluna (base zero) em valor de tabela
func (d *xlsxDates) value(row, col int, raw string) domain.Value {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !d.isDateCell(row, col) {
		return RawCell(raw)
	}

	date, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return RawCell(raw)
	}
	return domain.DateValue(date)
}

func (d *xlsxDates) isDateCell(row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}

	cellType, err := d.f.GetCellType(d.sheet, cell)
	if err != nil || (cellType != excelize.CellTypeUnset && cellType != excelize.CellTypeNumber) {
		return false
	}

	styleID, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil {
		return false
	}

	isDate, ok := d.byStyle[styleID]
	if !ok {
		style, err := d.f.GetStyle(styleID)
		isDate = err == nil && isDateFormat(style)
		d.byStyle[styleID] = isDate
	}
	return isDate
}

// formatos embutidos de data e hora (inclui os formatos regionais de data)
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

func isDateFormat(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return hasDateTokens(*style.CustomNumFmt)
	}
	return builtInDateFormats[style.NumFmt]
}

// hasDateTokens indica se o código de formato tem partes de data/hora. Durações ([h]:mm) não contam.
func hasDateTokens(code string) bool {
	parser := nfp.NumberFormatParser()
	for _, section := range parser.Parse(code) {
		for _, token := range section.Items {
			if token.TType == nfp.TokenTypeDateTimes {
				return true
			}
		}
	}
	return false
}

// ReadXLS lê a primeira planilha de um arquivo .xls (formato binário legado)
func ReadXLS(ctx context.Context, r io.Reader) (*domain.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, errors.New("arquivo sem planilhas")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("planilha ilegível")
	}

	width := 0
	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row := xlsRow(sheet, i)
		if row == nil {
			records = append(records, nil)
			continue
		}

		// linhas sem registro ROW informam LastCol zero
		n := max(row.LastCol(), width)
		values := make([]string, 0, n)
		for j := 0; j < n; j++ {
			values = append(values, row.Col(j))
		}
		if width == 0 && !isBlank(values) {
			width = len(values)
		}
		records = append(records, values)
	}

	return sheetTable(records, nil), nil
}

// xlsRow devolve nil para linhas ausentes da planilha (WorkSheet.Row não verifica a existência)
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// cellFunc converte a célula bruta da linha/coluna (base zero em records) em valor
type cellFunc func(row, col int, raw string) domain.Value

// sheetTable monta a tabela de uma planilha. Linhas totalmente vazias são ignoradas
// e colunas além do cabeçalho recebem nomes gerados. Com cell nil as células passam por RawCell.
func sheetTable(records [][]string, cell cellFunc) *domain.Table {
	if cell == nil {
		cell = func(_, _ int, raw string) domain.Value { return RawCell(raw) }
	}

	header := -1
	body := make([]int, 0, len(records))
	width := 0

	for i, record := range records {
		if isBlank(record) {
			continue
		}
		if header < 0 {
			header = i
			width = len(record)
			continue
		}
		body = append(body, i)
		if len(record) > width {
			width = len(record)
		}
	}

	if header < 0 {
		return domain.NewTable([]string{}, nil)
	}

	padded := make([]string, width)
	copy(padded, records[header])
	columns := headerNames(padded)

	rows := make([][]domain.Value, len(body))
	for k, i := range body {
		row := make([]domain.Value, width)
		for j, raw := range records[i] {
			row[j] = cell(i, j, raw)
		}
		rows[k] = row
	}

	return domain.NewTable(columns, rows)
}

func isBlank(record []string) bool {
	for _, v := range record {
		if v != "" {
			return false
		}
	}
	return true
}

// headerNames nomeia colunas sem título e diferencia nomes repetidos (nome, nome.1, ...)
func headerNames(header []string) []string {
	columns := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	suffix := make(map[string]int, len(header))

	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		candidate := name
		n := suffix[name]
		for taken[candidate] {
			n++
			candidate = name + "." + strconv.Itoa(n)
		}
		suffix[name] = n
		taken[candidate] = true
		columns[i] = candidate
	}

	return columns
}

func rawRow(record []string, width int) []domain.Value {
	row := make([]domain.Value, width)
	for i := 0; i < width && i < len(record); i++ {
		row[i] = RawCell(record[i])
	}
	return row
}
