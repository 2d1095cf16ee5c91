package reference

//LoadSubscribers reads the subscriber catalog. The source column
//IdClient is exposed as UID and IdOnPSX doubles as the subscriber
//identifier carried on session records.
func LoadSubscribers(path string) (Subscribers, error) {
	table, err := readCSVTable(path, ',')
	if err != nil {
		return nil, err
	}

	subscribers := make(Subscribers, len(table.rows))
	for _, row := range table.rows {
		idOnPSX := table.field(row, "IdOnPSX")
		if idOnPSX == "" {
			continue
		}

		subscribers[idOnPSX] = Subscriber{
			IdSubscriber: idOnPSX,
			UID:          table.field(row, "IdClient"),
			IdOnPSX:      idOnPSX,
		}
	}
	return subscribers, nil
}
