package files

import (
	"encoding/csv"
	"os"

	"github.com/arenalabs/psxguard/pkg/data"
	log "github.com/sirupsen/logrus"
)

//ReadSessionFile parses an indexed session log into raw records using
//the file's resolved delimiter. The header row maps column names to
//fields; columns absent from the header leave the matching record
//fields empty for the normalizer to coerce. A file that cannot be read
//or tokenized under its declared delimiter fails as a whole.
func ReadSessionFile(file *IndexedFile, logger *log.Logger) ([]data.RawRecord, error) {
	fileHandle, err := os.Open(file.Path)
	if err != nil {
		return nil, err
	}
	defer fileHandle.Close()

	reader := csv.NewReader(fileHandle)
	reader.Comma = file.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		// header only or nothing at all
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

	records := make([]data.RawRecord, 0, len(lines)-1)
	for _, row := range lines[1:] {
		records = append(records, data.RawRecord{
			IdSession:    field(row, "IdSession"),
			IdSubscriber: field(row, "IdSubscriber"),
			StartSession: field(row, "StartSession"),
			UpTx:         field(row, "UpTx"),
			DownTx:       field(row, "DownTx"),
		})
	}

	logger.WithFields(log.Fields{
		"file":    file.Path,
		"records": len(records),
	}).Debug("Read session log")

	return records, nil
}
