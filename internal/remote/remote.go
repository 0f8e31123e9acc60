// Package remote declares the capability surface of the durable backing
// store as consumed by the client core. The data package provides the
// MySQL/Redis implementation; tests substitute fakes.
package remote

import (
	"context"
	"errors"

	"github.com/achantasri/JanAwaaz/internal/types"
)

// ErrUnavailable marks transient backend failures. Callers surface it as a
// recoverable notice, never as a fatal condition.
var ErrUnavailable = errors.New("remote store unavailable")

// Unsubscribe tears down a live subscription. Safe to call more than once.
type Unsubscribe func()

// Counts is the aggregate tally for one topic.
type Counts struct {
	Up   int64 `json:"up"`
	Down int64 `json:"down"`
}

// TopicFields is the admin-supplied content of a new topic.
type TopicFields struct {
	Title    string
	Problem  string
	Solution string
	Category string
}

// TopicUpdate carries a partial edit; nil fields are left untouched.
type TopicUpdate struct {
	Title    *string
	Problem  *string
	Solution *string
	Category *string
}

// Store is the durable/real-time backend. Subscriptions deliver snapshots in
// server-observed write order and keep delivering until unsubscribed; every
// blocking operation takes a context.
type Store interface {
	// SubscribeTopics delivers the constituency's topic list, ordered by
	// creation time ascending, immediately and then on every change.
	SubscribeTopics(ctx context.Context, constituencyID string, onChange func([]types.Topic)) (Unsubscribe, error)

	CreateTopic(ctx context.Context, constituencyID string, fields TopicFields) (string, error)
	UpdateTopic(ctx context.Context, topicID string, fields TopicUpdate) error
	DeleteTopic(ctx context.Context, topicID string) error

	// GetUserVotes returns the user's votes in one constituency as a
	// topicID -> direction mapping.
	GetUserVotes(ctx context.Context, uid, constituencyID string) (map[string]string, error)

	// CastVoteAtomic writes the per-user vote record and the aggregate
	// counter adjustment as one indivisible unit. The previous direction is
	// derived from the stored vote row inside that unit, never trusted from
	// the caller: casting the stored direction again toggles the vote off.
	// Returns the resulting direction, empty after a toggle-off.
	CastVoteAtomic(ctx context.Context, uid, constituencyID, topicID, direction string) (string, error)

	// SubscribeVoteCounts delivers the current tally for each topic
	// immediately and then on every change.
	SubscribeVoteCounts(ctx context.Context, constituencyID string, topicIDs []string, onChange func(topicID string, counts Counts)) (Unsubscribe, error)

	IsAdmin(ctx context.Context, uid string) (bool, error)
}
