package hourly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/psxguard/pkg/data"
)

func record(session, subscriber string, turnOn time.Time, up, down float64) data.CanonicalRecord {
	return data.CanonicalRecord{
		IdSession:    session,
		IdSubscriber: subscriber,
		IdPSX:        1,
		PSXValid:     true,
		TurnOn:       turnOn,
		TurnOnValid:  true,
		UpTx:         up,
		DownTx:       down,
	}
}

func TestAggregateSumsWithinHour(t *testing.T) {
	base := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	records := []data.CanonicalRecord{
		record("s-1", "sub-1", base.Add(5*time.Minute), 100, 200),
		record("s-1", "sub-1", base.Add(45*time.Minute), 50, 25),
		record("s-1", "sub-1", base.Add(65*time.Minute), 10, 10),
	}

	buckets := Aggregate(records)
	require.Len(t, buckets, 2)

	assert.Equal(t, 150.0, buckets[0].UpTx)
	assert.Equal(t, 225.0, buckets[0].DownTx)
	assert.Equal(t, 375.0, buckets[0].Traffic)
	// first record in arrival order wins the TurnOn reduction
	assert.Equal(t, base.Add(5*time.Minute), buckets[0].TurnOn)
	assert.Equal(t, base.Unix(), buckets[0].Hour)
	assert.True(t, buckets[0].HourValid)

	assert.Equal(t, base.Add(time.Hour).Unix(), buckets[1].Hour)
	assert.Equal(t, 20.0, buckets[1].Traffic)
}

func TestAggregateKeySeparation(t *testing.T) {
	base := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	records := []data.CanonicalRecord{
		record("s-1", "sub-1", base, 1, 1),
		record("s-2", "sub-1", base, 2, 2),
		record("s-1", "sub-2", base, 3, 3),
	}
	records[2].IdPSX = 9

	buckets := Aggregate(records)
	assert.Len(t, buckets, 3)

	// no key appears twice
	seen := make(map[data.BucketKey]bool)
	for _, bucket := range buckets {
		assert.False(t, seen[bucket.BucketKey])
		seen[bucket.BucketKey] = true
	}
}

func TestAggregateNullHour(t *testing.T) {
	base := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	unparsed := data.CanonicalRecord{
		IdSession:    "s-1",
		IdSubscriber: "sub-1",
		UpTx:         40,
		DownTx:       2,
	}
	records := []data.CanonicalRecord{
		record("s-1", "sub-1", base, 100, 200),
		unparsed,
		unparsed,
	}

	buckets := Aggregate(records)
	require.Len(t, buckets, 2)

	assert.True(t, buckets[0].HourValid)

	// null-hour records merge with each other but never with a real hour
	assert.False(t, buckets[1].HourValid)
	assert.Equal(t, 80.0, buckets[1].UpTx)
	assert.Equal(t, 4.0, buckets[1].DownTx)
}

func TestAggregateIdempotent(t *testing.T) {
	base := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	records := []data.CanonicalRecord{
		record("s-1", "sub-1", base, 100, 200),
		record("s-1", "sub-1", base.Add(time.Minute), 50, 25),
		record("s-2", "sub-2", base, 10, 20),
	}

	first := Aggregate(records)
	second := Aggregate(records)
	assert.Equal(t, first, second)
}

func TestAggregateSumConservation(t *testing.T) {
	base := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	records := []data.CanonicalRecord{
		record("s-1", "sub-1", base, 100, 200),
		record("s-1", "sub-1", base.Add(2*time.Hour), 50, 25),
		record("s-2", "sub-2", base, 10, 20),
		{IdSession: "s-3", IdSubscriber: "sub-3", UpTx: 5, DownTx: 5},
	}

	var upIn, downIn float64
	for _, r := range records {
		upIn += r.UpTx
		downIn += r.DownTx
	}

	buckets := Aggregate(records)
	var upOut, downOut float64
	for _, b := range buckets {
		upOut += b.UpTx
		downOut += b.DownTx
		assert.Equal(t, b.UpTx+b.DownTx, b.Traffic)
	}

	assert.Equal(t, upIn, upOut)
	assert.Equal(t, downIn, downOut)
}
