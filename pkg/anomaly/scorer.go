package anomaly

import (
	"github.com/arenalabs/psxguard/pkg/data"
)

//DefaultThreshold is the upload/download ratio above which a bucket is
//considered anomalous
const DefaultThreshold = 0.924

//Ratio computes the upload/download ratio for a bucket. A bucket with
//zero download traffic uses a denominator of one instead, so an
//all-upload hour scores its raw upload byte count rather than
//producing Inf or NaN.
func Ratio(upTx float64, downTx float64) float64 {
	if downTx == 0 {
		return upTx
	}
	return upTx / downTx
}

//ScoreBucket computes the ratio for one bucket and flags it when the
//ratio strictly exceeds the threshold
func ScoreBucket(bucket data.HourBucket, threshold float64) data.ScoredBucket {
	ratio := Ratio(bucket.UpTx, bucket.DownTx)
	return data.ScoredBucket{
		HourBucket: bucket,
		Ratio:      ratio,
		Anomalous:  ratio > threshold,
	}
}

//Score flags every bucket whose upload/download ratio strictly exceeds
//the threshold
func Score(buckets []data.HourBucket, threshold float64) []data.ScoredBucket {
	scored := make([]data.ScoredBucket, 0, len(buckets))
	for _, bucket := range buckets {
		scored = append(scored, ScoreBucket(bucket, threshold))
	}
	return scored
}
