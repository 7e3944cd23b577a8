package domain

import "time"

// DailySummary is one channel's aggregated activity for one calendar date
// in the configured timezone. (ChannelID, Date) is the natural key; rows
// are upserted, never deleted.
type DailySummary struct {
	ChannelID string
	Date      string // YYYY-MM-DD

	ReactionCount     int64
	MemberJoinedCount int64
	MemberLeftCount   int64
	MessageCount      int64
	FileCount         int64

	// MessageRef is the opaque reference (Slack message ts) of the posted
	// digest; empty means no outbound post was made for this run.
	MessageRef string

	CreatedAt time.Time
}
