package reference

//LoadClients reads the client catalog. The source column Id is exposed
//as UID. IdPlan links the client to its service plan.
func LoadClients(path string) (Clients, error) {
	table, err := readCSVTable(path, ',')
	if err != nil {
		return nil, err
	}

	clients := make(Clients, len(table.rows))
	for _, row := range table.rows {
		uid := table.fieldOr(row, "UID", "Id")
		if uid == "" {
			continue
		}

		clients[uid] = Client{
			UID:    uid,
			IdPlan: table.field(row, "IdPlan"),
			Name:   table.field(row, "Name"),
		}
	}
	return clients, nil
}
