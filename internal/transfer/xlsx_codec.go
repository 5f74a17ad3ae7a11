package transfer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Employees"

// DecodeXLSX reads the first sheet of a workbook. The first row supplies
// the column labels; unknown labels are carried through and ignored by the
// importer.
func DecodeXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return cellsToRows(raw), nil
}

// EncodeXLSX writes rows to a single-sheet workbook with a header row.
func EncodeXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := make([]any, len(Columns))
	for i, label := range Columns {
		header[i] = label
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := make([]any, len(Columns))
		for j, label := range Columns {
			cells[j] = row[label]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	if err := f.Write(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// cellsToRows pairs each data row with the header labels. Short rows leave
// trailing columns absent rather than erroring.
func cellsToRows(raw [][]string) []Row {
	if len(raw) < 2 {
		return nil
	}
	header := raw[0]
	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(Row, len(header))
		for i, label := range header {
			if i < len(cells) {
				row[label] = cells[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
