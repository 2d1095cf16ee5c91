package hourly

import (
	"time"

	"github.com/arenalabs/psxguard/pkg/data"
)

//Aggregate buckets canonical records by (session, subscriber, hour,
//gateway) and sums their traffic counters. Records whose timestamp
//never parsed land in a null-hour bucket for their key; they never
//merge with a real hour. The bucket's TurnOn is the start time of the
//first contributing record in input order, and buckets are returned in
//first-seen key order, so the same input slice always produces the
//same output.
func Aggregate(records []data.CanonicalRecord) []data.HourBucket {
	buckets := make(map[data.BucketKey]*data.HourBucket, len(records))
	var order []data.BucketKey

	for _, record := range records {
		key := data.BucketKey{
			IdSession:    record.IdSession,
			IdSubscriber: record.IdSubscriber,
			IdPSX:        record.IdPSX,
			PSXValid:     record.PSXValid,
		}
		if record.TurnOnValid {
			key.Hour = record.TurnOn.UTC().Truncate(time.Hour).Unix()
			key.HourValid = true
		}

		bucket, seen := buckets[key]
		if !seen {
			bucket = &data.HourBucket{
				BucketKey: key,
				TurnOn:    record.TurnOn,
			}
			buckets[key] = bucket
			order = append(order, key)
		}

		bucket.UpTx += record.UpTx
		bucket.DownTx += record.DownTx
		bucket.Traffic += record.UpTx + record.DownTx
	}

	results := make([]data.HourBucket, 0, len(order))
	for _, key := range order {
		results = append(results, *buckets[key])
	}
	return results
}
