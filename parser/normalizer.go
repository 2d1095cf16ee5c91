package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/arenalabs/psxguard/parser/files"
	"github.com/arenalabs/psxguard/pkg/data"
	strftime "github.com/ncruces/go-strftime"
)

//NormalizeRecord converts a raw session record into its canonical form
//using the parsing attributes of the file it came from. Normalization
//is a pure per-record transform: a timestamp that fails the gateway's
//declared format leaves TurnOnValid false, and counters that fail
//numeric parsing (or come out negative) coerce to zero. The record is
//never dropped here.
func NormalizeRecord(raw data.RawRecord, file *files.IndexedFile) data.CanonicalRecord {
	record := data.CanonicalRecord{
		IdSession:    raw.IdSession,
		IdSubscriber: raw.IdSubscriber,
		IdPSX:        file.IdPSX,
		PSXValid:     file.PSXValid,
		UpTx:         coerceCounter(raw.UpTx),
		DownTx:       coerceCounter(raw.DownTx),
	}

	turnOn, err := strftime.Parse(file.DateFormat, strings.TrimSpace(raw.StartSession))
	if err == nil {
		record.TurnOn = turnOn
		record.TurnOnValid = true
	}

	return record
}

//coerceCounter parses a traffic counter, mapping missing, non-numeric,
//and negative values to zero
func coerceCounter(s string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
