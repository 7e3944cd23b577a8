package fiber

// RunDigestRequest triggers a digest run for an explicit date, or for
// yesterday/today per the default policy.
// @Description Manual digest trigger payload
type RunDigestRequest struct {
	Date  string `json:"date,omitempty" example:"2024-01-15"`
	Today bool   `json:"today,omitempty"`
}

type RunDigestResponse struct {
	Status  string       `json:"status" example:"ok"`
	Summary *SummaryBody `json:"summary,omitempty"`
}

type SummaryBody struct {
	ChannelID         string `json:"channel_id"`
	Date              string `json:"date"`
	ReactionCount     int64  `json:"reaction_count"`
	MemberJoinedCount int64  `json:"member_joined_count"`
	MemberLeftCount   int64  `json:"member_left_count"`
	MessageCount      int64  `json:"message_count"`
	FileCount         int64  `json:"file_count"`
	MessageRef        string `json:"message_ref,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"digest_failed"`
	Message string `json:"message,omitempty"`
}
