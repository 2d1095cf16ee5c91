package report

//Dedup drops all but the first report row for each subscriber id,
//preserving the order of the survivors
func Dedup(rows []Row) []Row {
	seen := make(map[string]bool, len(rows))
	deduped := make([]Row, 0, len(rows))

	for _, row := range rows {
		if seen[row.Id] {
			continue
		}
		seen[row.Id] = true
		deduped = append(deduped, row)
	}
	return deduped
}
