package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/psxguard/pkg/data"
)

var hour0 = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func scored(subscriber string, hoursFromStart int, ratio float64, threshold float64) data.ScoredBucket {
	hourTime := hour0.Add(time.Duration(hoursFromStart) * time.Hour)
	return data.ScoredBucket{
		HourBucket: data.HourBucket{
			BucketKey: data.BucketKey{
				IdSession:    "s-1",
				IdSubscriber: subscriber,
				Hour:         hourTime.Unix(),
				HourValid:    true,
				IdPSX:        1,
				PSXValid:     true,
			},
			TurnOn: hourTime.Add(3 * time.Minute),
		},
		Ratio:     ratio,
		Anomalous: ratio > threshold,
	}
}

func hackedFlags(marked []data.MarkedBucket) []bool {
	flags := make([]bool, len(marked))
	for i, m := range marked {
		flags[i] = m.Hacked
	}
	return flags
}

func TestConsecutiveAnomalousHours(t *testing.T) {
	// three consecutive hours with ratios 0.5, 0.95, 0.98 against 0.924:
	// the second and third are hacked, the first is not
	threshold := 0.924
	buckets := []data.ScoredBucket{
		scored("sub-a", 0, 0.5, threshold),
		scored("sub-a", 1, 0.95, threshold),
		scored("sub-a", 2, 0.98, threshold),
	}

	marked := Detect(buckets)
	require.Len(t, marked, 3)
	assert.Equal(t, []bool{false, true, true}, hackedFlags(marked))
	assert.Equal(t, buckets[1].TurnOn, marked[1].DateHacked)
}

func TestGapStartsNewRunButStillQualifies(t *testing.T) {
	// hours 0, 1, 3 all anomalous: the hour 3 bucket starts a new run
	// (gap of two) but single bucket runs still qualify
	threshold := 0.924
	buckets := []data.ScoredBucket{
		scored("sub-b", 0, 0.99, threshold),
		scored("sub-b", 1, 0.99, threshold),
		scored("sub-b", 3, 0.99, threshold),
	}

	marked := Detect(buckets)
	assert.Equal(t, []bool{true, true, true}, hackedFlags(marked))
}

func TestNonAnomalousNeverHacked(t *testing.T) {
	threshold := 0.924
	buckets := []data.ScoredBucket{
		scored("sub-c", 0, 0.99, threshold),
		scored("sub-c", 1, 0.1, threshold),
		scored("sub-c", 2, 0.99, threshold),
	}

	marked := Detect(buckets)
	assert.Equal(t, []bool{true, false, true}, hackedFlags(marked))
}

func TestInputOrderDoesNotMatter(t *testing.T) {
	threshold := 0.924
	buckets := []data.ScoredBucket{
		scored("sub-d", 2, 0.99, threshold),
		scored("sub-d", 0, 0.5, threshold),
		scored("sub-d", 1, 0.99, threshold),
	}

	marked := Detect(buckets)
	require.Len(t, marked, 3)
	// output is sorted chronologically
	assert.Equal(t, hour0.Unix(), marked[0].Hour)
	assert.Equal(t, []bool{false, true, true}, hackedFlags(marked))
}

func TestSubscribersAreIndependent(t *testing.T) {
	threshold := 0.924
	buckets := []data.ScoredBucket{
		scored("sub-a", 0, 0.99, threshold),
		scored("sub-b", 1, 0.99, threshold),
		scored("sub-a", 1, 0.1, threshold),
	}

	marked := Detect(buckets)
	require.Len(t, marked, 3)
	for _, m := range marked {
		if m.IdSubscriber == "sub-b" {
			assert.True(t, m.Hacked)
		}
	}
}

func TestSameHourBucketsForceBoundary(t *testing.T) {
	// two sessions in the same hour yield a zero gap between rows;
	// both remain anomalous single-bucket runs
	threshold := 0.924
	a := scored("sub-e", 0, 0.99, threshold)
	b := scored("sub-e", 0, 0.99, threshold)
	b.IdSession = "s-2"

	marked := Detect([]data.ScoredBucket{a, b})
	assert.Equal(t, []bool{true, true}, hackedFlags(marked))
}

func TestNullHourBucketsNeverHacked(t *testing.T) {
	threshold := 0.924
	nullHour := data.ScoredBucket{
		HourBucket: data.HourBucket{
			BucketKey: data.BucketKey{
				IdSession:    "s-1",
				IdSubscriber: "sub-f",
			},
		},
		Ratio:     0.99,
		Anomalous: true,
	}
	buckets := []data.ScoredBucket{
		nullHour,
		scored("sub-f", 0, 0.99, threshold),
	}

	marked := Detect(buckets)
	require.Len(t, marked, 2)
	assert.False(t, marked[0].HourValid)
	assert.False(t, marked[0].Hacked)
	assert.True(t, marked[1].Hacked)
}

func TestHackedFilter(t *testing.T) {
	threshold := 0.924
	marked := Detect([]data.ScoredBucket{
		scored("sub-g", 0, 0.5, threshold),
		scored("sub-g", 1, 0.99, threshold),
	})

	hacked := Hacked(marked)
	require.Len(t, hacked, 1)
	assert.Equal(t, hour0.Add(time.Hour).Unix(), hacked[0].Hour)
}
