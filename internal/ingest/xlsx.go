package ingest

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of a spreadsheet calendar export, treating
// the first row as the header. Outlook offers .xlsx next to .csv for the
// same data, so the record shape is identical to ReadCSV's.
func ReadXLSX(path string) ([]domain.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []domain.RawRecord
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		rec := make(domain.RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
