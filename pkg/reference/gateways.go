package reference

import (
	"strconv"
)

//LoadGateways reads the PSX attribute table. Expected columns:
//PSX (code), Id, Delimiter, DateFormat.
func LoadGateways(path string) (Gateways, error) {
	table, err := readCSVTable(path, ',')
	if err != nil {
		return nil, err
	}

	gateways := make(Gateways, len(table.rows))
	for _, row := range table.rows {
		code := table.field(row, "PSX")
		if code == "" {
			continue
		}

		id, err := strconv.ParseInt(table.field(row, "Id"), 10, 64)
		if err != nil {
			id = 0
		}

		gateways[code] = GatewayAttr{
			Id:         id,
			Delimiter:  table.field(row, "Delimiter"),
			DateFormat: table.field(row, "DateFormat"),
		}
	}
	return gateways, nil
}
