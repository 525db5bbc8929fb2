package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyWorkbook = errors.New("workbook has no sheets")

const utf8BOM = "\uFEFF"

// SheetReader reads one named column from the first worksheet of an uploaded
// xlsx workbook, or from a csv file when the name ends in .csv.
type SheetReader struct{}

func NewSheetReader() *SheetReader {
	return &SheetReader{}
}

// ReadColumn treats the first non-blank row as the header. Blank rows are
// skipped; rows lacking the column (or a header without it) yield "" for that row.
func (s *SheetReader) ReadColumn(ctx context.Context, filename string, r io.Reader, column string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = readCSV(r)
	} else {
		rows, err = readFirstSheet(r)
	}
	if err != nil {
		return nil, err
	}

	return columnValues(rows, column), nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	// Excel's "CSV UTF-8" export starts with a byte order mark.
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

func columnValues(rows [][]string, column string) []string {
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return []string{}
	}

	index := -1
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == column {
			index = i
			break
		}
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		if index < 0 || index >= len(row) {
			values = append(values, "")
			continue
		}
		values = append(values, row[index])
	}
	return values
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
