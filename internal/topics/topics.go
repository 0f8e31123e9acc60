// Package topics owns the live topic view for the currently selected
// constituency: a cached snapshot fed by a topic subscription, a vote-count
// subscription re-scoped to the current topic set, and admin pass-throughs
// for authoring. The store owns its subscriptions: selecting a new
// constituency cancels the old ones before opening replacements, and Close
// releases everything.
package topics

import (
	"context"
	"sync"

	"github.com/achantasri/JanAwaaz/internal/remote"
	"github.com/achantasri/JanAwaaz/internal/types"
)

type Store struct {
	remote remote.Store

	onTopics func([]types.Topic)
	onCounts func(topicID string, counts remote.Counts)

	mu             sync.Mutex
	constituencyID string
	cancelTopics   remote.Unsubscribe
	cancelCounts   remote.Unsubscribe
	snapshot       []types.Topic
}

func New(r remote.Store) *Store {
	return &Store{remote: r}
}

// OnTopics registers the snapshot callback. Set before Select. The callback
// runs while the store's lock is held, so a delivery can never interleave
// with a Select; it must not call back into the store.
func (s *Store) OnTopics(fn func([]types.Topic)) { s.onTopics = fn }

// OnCounts registers the vote-count push callback. Set before Select.
func (s *Store) OnCounts(fn func(string, remote.Counts)) { s.onCounts = fn }

// Select switches the store to a constituency. The previous constituency's
// topic and vote-count subscriptions are cancelled first, so a stale update
// can never land in the new view.
func (s *Store) Select(ctx context.Context, constituencyID string) error {
	s.mu.Lock()
	prevTopics, prevCounts := s.cancelTopics, s.cancelCounts
	s.cancelTopics, s.cancelCounts = nil, nil
	s.constituencyID = constituencyID
	s.snapshot = nil
	s.mu.Unlock()

	if prevTopics != nil {
		prevTopics()
	}
	if prevCounts != nil {
		prevCounts()
	}

	unsub, err := s.remote.SubscribeTopics(ctx, constituencyID, func(ts []types.Topic) {
		s.applySnapshot(ctx, constituencyID, ts)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.constituencyID != constituencyID {
		// A newer Select won the race; this subscription is already stale.
		s.mu.Unlock()
		unsub()
		return nil
	}
	s.cancelTopics = unsub
	s.mu.Unlock()
	return nil
}

func (s *Store) applySnapshot(ctx context.Context, constituencyID string, ts []types.Topic) {
	s.mu.Lock()
	if s.constituencyID != constituencyID {
		s.mu.Unlock()
		return
	}
	s.snapshot = ts
	prevCounts := s.cancelCounts
	s.cancelCounts = nil
	if s.onTopics != nil {
		// Delivered under the lock: a concurrent Select cannot switch the
		// selection between the staleness check and the callback.
		s.onTopics(ts)
	}
	s.mu.Unlock()

	if prevCounts != nil {
		prevCounts()
	}

	ids := make([]string, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID)
	}
	unsub, err := s.remote.SubscribeVoteCounts(ctx, constituencyID, ids, func(topicID string, counts remote.Counts) {
		if s.onCounts != nil {
			s.onCounts(topicID, counts)
		}
	})
	if err == nil {
		s.mu.Lock()
		if s.constituencyID == constituencyID && s.cancelCounts == nil {
			s.cancelCounts = unsub
			s.mu.Unlock()
		} else {
			s.mu.Unlock()
			unsub()
		}
	}
}

// Snapshot returns the cached topic list for the selected constituency.
func (s *Store) Snapshot() []types.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Topic, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Selected returns the currently selected constituency ID.
func (s *Store) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.constituencyID
}

// Create adds a topic. Authorization sits with the surrounding layer.
func (s *Store) Create(ctx context.Context, constituencyID string, fields remote.TopicFields) (string, error) {
	return s.remote.CreateTopic(ctx, constituencyID, fields)
}

func (s *Store) Update(ctx context.Context, topicID string, fields remote.TopicUpdate) error {
	return s.remote.UpdateTopic(ctx, topicID, fields)
}

func (s *Store) Delete(ctx context.Context, topicID string) error {
	return s.remote.DeleteTopic(ctx, topicID)
}

// Close releases every open subscription.
func (s *Store) Close() {
	s.mu.Lock()
	prevTopics, prevCounts := s.cancelTopics, s.cancelCounts
	s.cancelTopics, s.cancelCounts = nil, nil
	s.constituencyID = ""
	s.snapshot = nil
	s.mu.Unlock()

	if prevTopics != nil {
		prevTopics()
	}
	if prevCounts != nil {
		prevCounts()
	}
}
