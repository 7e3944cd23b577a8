package domain

import "time"

// Kind is the discriminator tag Slack puts on the inner event body.
type Kind string

const (
	KindReaction     Kind = "reaction_added"
	KindMemberJoined Kind = "member_joined_channel"
	KindMemberLeft   Kind = "member_left_channel"
	KindMessage      Kind = "message"
	KindFileShared   Kind = "file_shared"
)

// RawEnvelope is the validated webhook delivery handed to the dispatcher.
// EventID is Slack's globally unique delivery id and the sole dedup key.
// Body is the kind-specific event JSON, consumed then discarded.
type RawEnvelope struct {
	EventID string
	Kind    Kind
	Body    []byte
}

type MembershipAction string

const (
	ActionJoined MembershipAction = "joined"
	ActionLeft   MembershipAction = "left"
)

type ReactionEvent struct {
	EventID   string
	ChannelID string
	UserID    string
	Reaction  string
	EventTS   time.Time
	Raw       []byte
}

type MembershipEvent struct {
	EventID   string
	ChannelID string
	UserID    string
	Action    MembershipAction
	EventTS   time.Time
	Raw       []byte
}

// MessageEvent is only ever created for plain human messages; edits,
// deletions and bot posts are filtered out by the normalizer.
type MessageEvent struct {
	EventID   string
	ChannelID string
	UserID    string
	EventTS   time.Time
	Raw       []byte
}

type FileEvent struct {
	EventID   string
	ChannelID string
	UserID    string
	FileID    string
	FileName  string
	EventTS   time.Time
	Raw       []byte
}
