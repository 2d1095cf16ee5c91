package files

import (
	"io/ioutil"
	"path"
	"sort"
	"strings"

	"github.com/arenalabs/psxguard/config"
	"github.com/arenalabs/psxguard/pkg/reference"
	log "github.com/sirupsen/logrus"
)

//IndexedFile pairs a session log file with the parsing attributes
//resolved for its source gateway
type IndexedFile struct {
	Path       string
	PSXCode    string
	IdPSX      int64
	PSXValid   bool
	Delimiter  rune
	DateFormat string
	Size       int64
}

//GatherDataFiles walks the dataset directory for psx_* .csv and .txt
//session logs, skipping the reference tables and empty files, and
//resolves each file's delimiter and date format from the gateway
//attribute table. Files whose PSX code is unknown fall back to the
//configured defaults.
func GatherDataFiles(cfg *config.DatasetStaticCfg, gateways reference.Gateways, logger *log.Logger) []*IndexedFile {
	var toReturn []*IndexedFile

	entries, err := ioutil.ReadDir(cfg.Path)
	if err != nil {
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"path":  cfg.Path,
		}).Error("Error when reading dataset directory")
		return toReturn
	}

	referenceTables := map[string]bool{
		cfg.GatewayTable:    true,
		cfg.SubscriberTable: true,
		cfg.ClientTable:     true,
		cfg.PhysicalTable:   true,
		cfg.CompanyTable:    true,
		cfg.PlanTable:       true,
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || referenceTables[name] {
			continue
		}
		if !strings.HasPrefix(name, "psx_") {
			continue
		}
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".txt") {
			continue
		}
		if entry.Size() == 0 {
			logger.WithFields(log.Fields{
				"file": name,
			}).Debug("Skipping empty session log")
			continue
		}

		indexed := &IndexedFile{
			Path:       path.Join(cfg.Path, name),
			PSXCode:    parsePSXCode(name),
			Delimiter:  firstRune(cfg.DefaultDelimiter, ','),
			DateFormat: cfg.DefaultDateFormat,
			Size:       entry.Size(),
		}

		if attrs, ok := gateways[indexed.PSXCode]; ok {
			indexed.IdPSX = attrs.Id
			indexed.PSXValid = true
			indexed.Delimiter = firstRune(attrs.Delimiter, indexed.Delimiter)
			if attrs.DateFormat != "" {
				indexed.DateFormat = attrs.DateFormat
			}
		}

		toReturn = append(toReturn, indexed)
	}

	// stable input ordering keeps the aggregator's first record wins
	// reduction reproducible between runs
	sort.Slice(toReturn, func(i, j int) bool {
		return toReturn[i].Path < toReturn[j].Path
	})
	return toReturn
}

//parsePSXCode extracts the gateway code from file names shaped like
//psx_<code>_<anything>.csv. Returns "" when the name does not carry one.
func parsePSXCode(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) > 1 && parts[0] == "psx" {
		return parts[1]
	}
	return ""
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
