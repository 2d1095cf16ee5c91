package reference

import (
	"encoding/csv"
	"os"
)

//csvTable holds a parsed delimited file with a header row
type csvTable struct {
	columns map[string]int
	rows    [][]string
}

//field returns the named column of a row, or "" when the column is
//missing from the header or the row is short
func (t *csvTable) field(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

//fieldOr returns the first named column present in the header
func (t *csvTable) fieldOr(row []string, names ...string) string {
	for _, name := range names {
		if _, ok := t.columns[name]; ok {
			return t.field(row, name)
		}
	}
	return ""
}

func readCSVTable(path string, delimiter rune) (*csvTable, error) {
	fileHandle, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fileHandle.Close()

	reader := csv.NewReader(fileHandle)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &csvTable{columns: map[string]int{}}, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	return &csvTable{columns: columns, rows: records[1:]}, nil
}
