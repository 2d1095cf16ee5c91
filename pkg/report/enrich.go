package report

import (
	"time"

	"github.com/arenalabs/psxguard/pkg/data"
	"github.com/arenalabs/psxguard/pkg/reference"
	log "github.com/sirupsen/logrus"
)

//Row is one line of the final hacked subscriber report
type Row struct {
	Id      string
	UID     string
	Type    string
	IdPlan  string
	Enabled bool
	TurnOn  time.Time
	Hacked  bool
	Traffic float64
}

//Enrich joins hacked buckets against the subscriber, client, plan, and
//client type tables. The subscriber, client, and plan joins are
//mandatory: a bucket whose chain breaks at any of them is dropped.
//The client type join is optional and defaults to a physical person.
func Enrich(hacked []data.MarkedBucket, refs *reference.Set, logger *log.Logger) []Row {
	rows := make([]Row, 0, len(hacked))
	dropped := 0

	for _, bucket := range hacked {
		if !bucket.Hacked {
			continue
		}

		subscriber, ok := refs.Subscribers[bucket.IdSubscriber]
		if !ok || subscriber.UID == "" {
			dropped++
			continue
		}

		client, ok := refs.Clients[subscriber.UID]
		if !ok || client.IdPlan == "" {
			dropped++
			continue
		}

		plan, ok := refs.Plans[client.IdPlan]
		if !ok {
			dropped++
			continue
		}

		clientType, ok := refs.Types[subscriber.UID]
		if !ok {
			clientType = reference.TypePhysical
		}

		rows = append(rows, Row{
			Id:      bucket.IdSubscriber,
			UID:     subscriber.UID,
			Type:    clientType,
			IdPlan:  client.IdPlan,
			Enabled: plan.Enabled,
			TurnOn:  bucket.DateHacked,
			Hacked:  true,
			Traffic: bucket.Traffic,
		})
	}

	if dropped > 0 {
		logger.WithFields(log.Fields{
			"dropped": dropped,
		}).Info("Dropped hacked buckets with no matching reference data")
	}

	return rows
}
