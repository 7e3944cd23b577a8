package fiber

import "encoding/json"

// SlackEventRequest is the outer Events API envelope.
// @Description Slack Events API delivery envelope
type SlackEventRequest struct {
	Type      string          `json:"type"`
	Challenge string          `json:"challenge,omitempty"`
	EventID   string          `json:"event_id"`
	EventTime int64           `json:"event_time"`
	Event     json.RawMessage `json:"event"`
}

// eventKindProbe peeks at the inner event's discriminator tag; the rest of
// the body stays raw for the normalizer.
type eventKindProbe struct {
	Type string `json:"type"`
}

type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

type EventResponse struct {
	Status string `json:"status" example:"stored"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_json"`
	Message string `json:"message,omitempty"`
}
