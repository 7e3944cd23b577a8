package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"slack-digest-service/internal/events/core/domain"
)

// Skip-class errors. A skip is an expected outcome, not a failure: the
// dispatcher checks IsSkip and drops the event without surfacing an error.
var (
	ErrMissingChannel = errors.New("event has no channel id")
	ErrIgnoredSubtype = errors.New("message has a subtype")
	ErrBotMessage     = errors.New("message authored by a bot")
)

// DefaultFileName is stored when a file event carries no file name.
const DefaultFileName = "unnamed"

// Normalizer converts raw Slack event bodies into canonical records.
// It is pure over its inputs apart from the injected clock.
type Normalizer struct {
	now func() time.Time
}

func New(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// IsSkip reports whether err means "drop this event", as opposed to a
// malformed payload or a downstream failure.
func IsSkip(err error) bool {
	return errors.Is(err, ErrMissingChannel) ||
		errors.Is(err, ErrIgnoredSubtype) ||
		errors.Is(err, ErrBotMessage)
}

type reactionBody struct {
	User     string `json:"user"`
	Reaction string `json:"reaction"`
	Item     struct {
		Channel string `json:"channel"`
	} `json:"item"`
	EventTS string `json:"event_ts"`
}

type membershipBody struct {
	User    string `json:"user"`
	Channel string `json:"channel"`
	EventTS string `json:"event_ts"`
}

type messageBody struct {
	User    string `json:"user"`
	Channel string `json:"channel"`
	Subtype string `json:"subtype"`
	BotID   string `json:"bot_id"`
	TS      string `json:"ts"`
	EventTS string `json:"event_ts"`
}

// file_shared is the one kind where Slack names the channel field
// differently; the divergence is absorbed here, never downstream.
type fileBody struct {
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	FileID    string `json:"file_id"`
	File      struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"file"`
	EventTS string `json:"event_ts"`
}

func (n *Normalizer) Reaction(env domain.RawEnvelope) (*domain.ReactionEvent, error) {
	var body reactionBody
	if err := json.Unmarshal(env.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to parse reaction body: %w", err)
	}

	if body.Item.Channel == "" {
		return nil, ErrMissingChannel
	}

	return &domain.ReactionEvent{
		EventID:   env.EventID,
		ChannelID: body.Item.Channel,
		UserID:    body.User,
		Reaction:  body.Reaction,
		EventTS:   n.timestamp(body.EventTS),
		Raw:       env.Body,
	}, nil
}

func (n *Normalizer) Membership(env domain.RawEnvelope, action domain.MembershipAction) (*domain.MembershipEvent, error) {
	var body membershipBody
	if err := json.Unmarshal(env.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to parse membership body: %w", err)
	}

	if body.Channel == "" {
		return nil, ErrMissingChannel
	}

	return &domain.MembershipEvent{
		EventID:   env.EventID,
		ChannelID: body.Channel,
		UserID:    body.User,
		Action:    action,
		EventTS:   n.timestamp(body.EventTS),
		Raw:       env.Body,
	}, nil
}

func (n *Normalizer) Message(env domain.RawEnvelope) (*domain.MessageEvent, error) {
	var body messageBody
	if err := json.Unmarshal(env.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to parse message body: %w", err)
	}

	// Edits, deletions, joins-as-messages etc. all arrive as subtypes;
	// none of them count as human activity.
	if body.Subtype != "" {
		return nil, ErrIgnoredSubtype
	}
	if body.BotID != "" {
		return nil, ErrBotMessage
	}
	if body.Channel == "" {
		return nil, ErrMissingChannel
	}

	ts := body.TS
	if ts == "" {
		ts = body.EventTS
	}

	return &domain.MessageEvent{
		EventID:   env.EventID,
		ChannelID: body.Channel,
		UserID:    body.User,
		EventTS:   n.timestamp(ts),
		Raw:       env.Body,
	}, nil
}

func (n *Normalizer) File(env domain.RawEnvelope) (*domain.FileEvent, error) {
	var body fileBody
	if err := json.Unmarshal(env.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to parse file body: %w", err)
	}

	if body.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	fileID := body.FileID
	if fileID == "" {
		fileID = body.File.ID
	}

	fileName := body.File.Name
	if fileName == "" {
		fileName = DefaultFileName
	}

	return &domain.FileEvent{
		EventID:   env.EventID,
		ChannelID: body.ChannelID,
		UserID:    body.UserID,
		FileID:    fileID,
		FileName:  fileName,
		EventTS:   n.timestamp(body.EventTS),
		Raw:       env.Body,
	}, nil
}

// timestamp converts Slack's fractional seconds-since-epoch ("1700000000.0")
// to a UTC instant with millisecond precision. An absent or unparseable
// value falls back to the clock; the instant is never left zero.
func (n *Normalizer) timestamp(raw string) time.Time {
	if raw == "" {
		return n.now().UTC()
	}

	sec, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return n.now().UTC()
	}

	return time.UnixMilli(int64(math.Round(sec * 1000))).UTC()
}
