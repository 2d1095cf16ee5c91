package reference

import (
	log "github.com/sirupsen/logrus"
)

//LoadClientTypes reads the physical person and company tables into a
//UID to type marker map. Either file may be absent; clients missing
//from the result default to TypePhysical at enrichment.
func LoadClientTypes(physicalPath string, companyPath string, logger *log.Logger) ClientTypes {
	types := make(ClientTypes)

	loadTypeTable(physicalPath, TypePhysical, types, logger)
	loadTypeTable(companyPath, TypeCompany, types, logger)

	if len(types) == 0 {
		logger.Warn("No client type tables available, all clients will be treated as physical persons")
	}
	return types
}

func loadTypeTable(path string, marker string, types ClientTypes, logger *log.Logger) {
	table, err := readCSVTable(path, ',')
	if err != nil {
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"path":  path,
		}).Debug("Client type table not loaded")
		return
	}

	for _, row := range table.rows {
		uid := table.fieldOr(row, "UID", "Id")
		if uid == "" {
			continue
		}
		types[uid] = marker
	}
}
