// Package ledger tracks one user's directional votes within one
// constituency, together with a local view of the shared aggregate tallies.
// Mutations apply optimistically: the local transition lands synchronously,
// the durable write follows, and a failed write reconciles the local view
// against the authoritative per-user vote set.
package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/achantasri/JanAwaaz/internal/remote"
	"github.com/achantasri/JanAwaaz/internal/types"
)

var (
	ErrNotSignedIn    = errors.New("ledger: no signed-in user")
	ErrNoConstituency = errors.New("ledger: no constituency selected")
	ErrBadDirection   = errors.New("ledger: direction must be up or down")
)

// Ledger is created per (user, constituency) session and torn down when the
// selection changes. The zero user or constituency makes every vote read
// come back empty and every cast fail.
type Ledger struct {
	store          remote.Store
	uid            string
	constituencyID string

	mu      sync.Mutex
	votes   map[string]string // topicID -> direction
	counts  map[string]remote.Counts
	version uint64 // bumped on every optimistic transition
}

func New(store remote.Store, uid, constituencyID string) *Ledger {
	return &Ledger{
		store:          store,
		uid:            uid,
		constituencyID: constituencyID,
		votes:          make(map[string]string),
		counts:         make(map[string]remote.Counts),
	}
}

// Refresh replaces the local vote view with the authoritative per-user vote
// set. Called once after construction and by failure reconciliation.
func (l *Ledger) Refresh(ctx context.Context) error {
	if l.uid == "" || l.constituencyID == "" {
		return nil
	}
	votes, err := l.store.GetUserVotes(ctx, l.uid, l.constituencyID)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.votes = copyVotes(votes)
	l.mu.Unlock()
	return nil
}

// Cast applies the vote transition for one topic: a fresh direction sets the
// vote, the same direction toggles it off, the opposite direction switches
// it. The local state and aggregate prediction update before the durable
// write is issued, so a rapid second cast on the same topic observes the
// first one's outcome. The store derives the authoritative previous
// direction from its own row, so a stale local view cannot skew the shared
// counter. On a failed write the vote view is re-fetched and replaced
// wholesale, unless a newer optimistic update landed meanwhile.
func (l *Ledger) Cast(ctx context.Context, topicID, direction string) error {
	if l.uid == "" {
		return ErrNotSignedIn
	}
	if l.constituencyID == "" {
		return ErrNoConstituency
	}
	if direction != types.DirectionUp && direction != types.DirectionDown {
		return ErrBadDirection
	}

	l.mu.Lock()
	prev := l.votes[topicID]
	c := l.counts[topicID]
	if prev != "" {
		c = adjust(c, prev, -1)
	}
	if prev == direction {
		delete(l.votes, topicID)
	} else {
		l.votes[topicID] = direction
		c = adjust(c, direction, +1)
	}
	l.counts[topicID] = c
	l.version++
	castVersion := l.version
	l.mu.Unlock()

	if _, err := l.store.CastVoteAtomic(ctx, l.uid, l.constituencyID, topicID, direction); err != nil {
		l.reconcile(ctx, castVersion)
		return err
	}
	return nil
}

// reconcile re-fetches the per-user vote set and replaces the local view,
// but only if no optimistic update happened after the failing cast; a stale
// fetch must not clobber newer local state. The aggregate prediction is left
// alone, the next count push corrects it.
func (l *Ledger) reconcile(ctx context.Context, atVersion uint64) {
	votes, err := l.store.GetUserVotes(ctx, l.uid, l.constituencyID)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.version != atVersion {
		return
	}
	l.votes = copyVotes(votes)
}

// Vote returns the user's current direction for a topic, or empty for none.
// Without a signed-in user and a selected constituency there is no vote.
func (l *Ledger) Vote(topicID string) string {
	if l.uid == "" || l.constituencyID == "" {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.votes[topicID]
}

// Counts returns the latest known aggregate for a topic, zero-valued when no
// counter record has been seen yet.
func (l *Ledger) Counts(topicID string) remote.Counts {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[topicID]
}

// ApplyCounts accepts an authoritative count push and replaces the local
// prediction for that topic.
func (l *Ledger) ApplyCounts(topicID string, counts remote.Counts) {
	l.mu.Lock()
	l.counts[topicID] = counts
	l.mu.Unlock()
}

func adjust(c remote.Counts, direction string, delta int64) remote.Counts {
	switch direction {
	case types.DirectionUp:
		c.Up += delta
		if c.Up < 0 {
			c.Up = 0
		}
	case types.DirectionDown:
		c.Down += delta
		if c.Down < 0 {
			c.Down = 0
		}
	}
	return c
}

func copyVotes(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
