package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

//TurnOnFormat is the timestamp layout used in result files
const TurnOnFormat = "2006-01-02 15:04:05"

var csvHeader = []string{"Id", "UID", "Type", "IdPlan", "Enabled", "TurnOn", "Hacked", "Traffic"}

//WriteCSV writes report rows to the given writer
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Id,
			row.UID,
			row.Type,
			row.IdPlan,
			strconv.FormatBool(row.Enabled),
			row.TurnOn.UTC().Format(TurnOnFormat),
			strconv.FormatBool(row.Hacked),
			strconv.FormatFloat(row.Traffic, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

//WriteCSVFile writes report rows to a file at the given path
func WriteCSVFile(path string, rows []Row) error {
	fileHandle, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fileHandle.Close()
	return WriteCSV(fileHandle, rows)
}

//ReadCSVFile reads report rows back from a result file
func ReadCSVFile(path string) ([]Row, error) {
	fileHandle, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fileHandle.Close()

	reader := csv.NewReader(fileHandle)
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, nil
	}

	columns := make(map[string]int, len(lines[0]))
	for i, name := range lines[0] {
		columns[name] = i
	}
	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		enabled, _ := strconv.ParseBool(field(line, "Enabled"))
		hacked, _ := strconv.ParseBool(field(line, "Hacked"))
		traffic, _ := strconv.ParseFloat(field(line, "Traffic"), 64)
		turnOn, _ := time.Parse(TurnOnFormat, field(line, "TurnOn"))

		rows = append(rows, Row{
			Id:      field(line, "Id"),
			UID:     field(line, "UID"),
			Type:    field(line, "Type"),
			IdPlan:  field(line, "IdPlan"),
			Enabled: enabled,
			TurnOn:  turnOn,
			Hacked:  hacked,
			Traffic: traffic,
		})
	}
	return rows, nil
}
