package reference

import (
	"encoding/json"
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
)

//planRecord mirrors one entry of the plan table on disk. Ids appear as
//both numbers and strings in the wild, so they decode through
//json.Number.
type planRecord struct {
	Id      json.Number `json:"Id"`
	Enabled bool        `json:"Enabled"`
}

//LoadPlans reads the JSON plan catalog. The source column Id is exposed
//as IdPlan.
func LoadPlans(path string) (Plans, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []planRecord
	err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(contents, &records)
	if err != nil {
		return nil, err
	}

	plans := make(Plans, len(records))
	for _, record := range records {
		id := record.Id.String()
		if id == "" {
			continue
		}
		plans[id] = Plan{
			IdPlan:  id,
			Enabled: record.Enabled,
		}
	}
	return plans, nil
}
