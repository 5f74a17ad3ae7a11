package transfer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// DecodeCSV reads a comma-separated file with the same header contract as
// the workbook codec.
func DecodeCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return cellsToRows(raw), nil
}

func EncodeCSV(rows []Row) ([]byte, error) {
	var out bytes.Buffer
	writer := csv.NewWriter(&out)

	if err := writer.Write(Columns); err != nil {
		return nil, err
	}
	record := make([]string, len(Columns))
	for _, row := range rows {
		for i, label := range Columns {
			record[i] = row[label]
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
