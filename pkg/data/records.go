package data

import (
	"time"
)

type (
	//RawRecord is a single session log line as read from a gateway file.
	//All fields are strings; the normalizer owns type coercion.
	RawRecord struct {
		IdSession    string
		IdSubscriber string
		StartSession string
		UpTx         string
		DownTx       string
	}

	//CanonicalRecord is a normalized session record. TurnOnValid is false
	//when the source gateway's declared date format failed to parse the
	//StartSession string. UpTx and DownTx are always >= 0.
	CanonicalRecord struct {
		IdSession    string
		IdSubscriber string
		IdPSX        int64
		PSXValid     bool
		TurnOn       time.Time
		TurnOnValid  bool
		UpTx         float64
		DownTx       float64
	}

	//BucketKey uniquely identifies an hourly aggregation bucket.
	//Hour is the unix timestamp of the bucket's calendar hour;
	//HourValid is false for records whose timestamp never parsed.
	BucketKey struct {
		IdSession    string
		IdSubscriber string
		Hour         int64
		HourValid    bool
		IdPSX        int64
		PSXValid     bool
	}

	//HourBucket holds one subscriber's summed traffic for one session
	//and gateway within one calendar hour. TurnOn is the start time of
	//the first contributing record in arrival order.
	HourBucket struct {
		BucketKey
		TurnOn  time.Time
		UpTx    float64
		DownTx  float64
		Traffic float64
	}

	//ScoredBucket is an HourBucket with its upload/download ratio and
	//anomaly flag.
	ScoredBucket struct {
		HourBucket
		Ratio     float64
		Anomalous bool
	}

	//MarkedBucket is a ScoredBucket after streak detection. DateHacked
	//carries the bucket's TurnOn when Hacked is set.
	MarkedBucket struct {
		ScoredBucket
		Hacked     bool
		DateHacked time.Time
	}
)

//HourTime returns the bucket's hour as a time value.
func (k BucketKey) HourTime() time.Time {
	return time.Unix(k.Hour, 0).UTC()
}
