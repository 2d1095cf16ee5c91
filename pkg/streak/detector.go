package streak

import (
	"sort"

	"github.com/arenalabs/psxguard/pkg/data"
)

//Detect scans each subscriber's hourly buckets in chronological order
//and marks the buckets that belong to an unbroken run of anomalous
//hours. A run starts at any bucket whose gap to its predecessor is not
//exactly one hour, or at any non-anomalous bucket; non-anomalous
//buckets always terminate the run that preceded them. Within a run a
//cumulative count of anomalous buckets is kept, and a bucket is hacked
//when it is anomalous and that count has reached one. Under this
//policy a single isolated anomalous hour already qualifies; the count
//is retained as a structural check on run bookkeeping.
//
//Buckets with no valid hour cannot be placed on the timeline: they are
//passed through unmarked and never hacked.
//
//The scan is strictly sequential within one subscriber. Input order
//does not matter; buckets are sorted by (subscriber, hour, session,
//gateway) before scanning, and two buckets sharing an hour produce a
//zero gap, which forces a run boundary.
func Detect(scored []data.ScoredBucket) []data.MarkedBucket {
	buckets := make([]data.ScoredBucket, len(scored))
	copy(buckets, scored)

	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.IdSubscriber != b.IdSubscriber {
			return a.IdSubscriber < b.IdSubscriber
		}
		// null hours sort first and are skipped by the scan
		if a.HourValid != b.HourValid {
			return !a.HourValid
		}
		if a.Hour != b.Hour {
			return a.Hour < b.Hour
		}
		if a.IdSession != b.IdSession {
			return a.IdSession < b.IdSession
		}
		return a.IdPSX < b.IdPSX
	})

	marked := make([]data.MarkedBucket, 0, len(buckets))

	var prevSubscriber string
	var prevHour int64
	havePrev := false
	runCount := 0

	for _, bucket := range buckets {
		out := data.MarkedBucket{ScoredBucket: bucket}

		if !bucket.HourValid {
			marked = append(marked, out)
			continue
		}

		if bucket.IdSubscriber != prevSubscriber {
			havePrev = false
			runCount = 0
		}

		// the first bucket of a subscriber gets a sentinel gap of one
		gap := int64(1)
		if havePrev {
			gap = (bucket.Hour - prevHour) / 3600
		}

		if gap != 1 || !bucket.Anomalous {
			runCount = 0
		}
		if bucket.Anomalous {
			runCount++
		}

		if bucket.Anomalous && runCount >= 1 {
			out.Hacked = true
			out.DateHacked = bucket.TurnOn
		}

		prevSubscriber = bucket.IdSubscriber
		prevHour = bucket.Hour
		havePrev = true

		marked = append(marked, out)
	}

	return marked
}

//Hacked filters the detector output down to the buckets flagged as
//hacked
func Hacked(marked []data.MarkedBucket) []data.MarkedBucket {
	var hacked []data.MarkedBucket
	for _, bucket := range marked {
		if bucket.Hacked {
			hacked = append(hacked, bucket)
		}
	}
	return hacked
}
