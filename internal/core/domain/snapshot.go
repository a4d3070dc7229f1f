package domain

import "time"

// SpendSnapshot is one observation of a campaign's spend taken during a
// monitoring cycle. Snapshots are append-only and deduplicated by the
// evaluation bucket; the feed may deliver figures late or out of order, so
// RecordedAt is the platform-side report time while BucketTS identifies the
// cycle that stored the row.
type SpendSnapshot struct {
	ID               int64
	CampaignID       int64
	BucketTS         time.Time
	RecordedAt       time.Time
	MTDSpend         int64 // cumulative month-to-date spend
	DailySpend       int64 // spend observed for the current day
	SourceConfidence float64
}
