package topics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achantasri/JanAwaaz/internal/remote"
	"github.com/achantasri/JanAwaaz/internal/types"
)

// subTracker counts open subscriptions and lets tests push snapshots into
// the most recent topic callback.
type subTracker struct {
	mu         sync.Mutex
	topicSubs  int
	countSubs  int
	lastTopics func([]types.Topic)
	lastScope  []string
	lastCID    string
}

func (f *subTracker) SubscribeTopics(_ context.Context, cid string, fn func([]types.Topic)) (remote.Unsubscribe, error) {
	f.mu.Lock()
	f.topicSubs++
	f.lastTopics = fn
	f.lastCID = cid
	f.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.topicSubs--
			f.mu.Unlock()
		})
	}, nil
}

func (f *subTracker) SubscribeVoteCounts(_ context.Context, _ string, topicIDs []string, _ func(string, remote.Counts)) (remote.Unsubscribe, error) {
	f.mu.Lock()
	f.countSubs++
	f.lastScope = topicIDs
	f.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.countSubs--
			f.mu.Unlock()
		})
	}, nil
}

func (f *subTracker) open() (topics, counts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.topicSubs, f.countSubs
}

func (f *subTracker) push(ts []types.Topic) {
	f.mu.Lock()
	fn := f.lastTopics
	f.mu.Unlock()
	fn(ts)
}

func (f *subTracker) CreateTopic(context.Context, string, remote.TopicFields) (string, error) {
	return "new-id", nil
}

func (f *subTracker) UpdateTopic(context.Context, string, remote.TopicUpdate) error { return nil }
func (f *subTracker) DeleteTopic(context.Context, string) error                     { return nil }

func (f *subTracker) GetUserVotes(context.Context, string, string) (map[string]string, error) {
	return nil, nil
}

func (f *subTracker) CastVoteAtomic(context.Context, string, string, string, string) (string, error) {
	return "", nil
}

func (f *subTracker) IsAdmin(context.Context, string) (bool, error) { return false, nil }

func topic(id string) types.Topic {
	return types.Topic{ID: id, Title: "t-" + id}
}

func TestSelectDeliversSnapshot(t *testing.T) {
	f := &subTracker{}
	s := New(f)
	defer s.Close()

	var got []types.Topic
	s.OnTopics(func(ts []types.Topic) { got = ts })

	require.NoError(t, s.Select(context.Background(), "DL-01"))
	assert.Equal(t, "DL-01", f.lastCID)

	f.push([]types.Topic{topic("a"), topic("b")})
	require.Len(t, got, 2)
	assert.Equal(t, got, s.Snapshot())
	assert.Equal(t, "DL-01", s.Selected())
}

func TestReselectLeavesOneSubscriptionPair(t *testing.T) {
	f := &subTracker{}
	s := New(f)
	defer s.Close()

	require.NoError(t, s.Select(context.Background(), "DL-01"))
	f.push([]types.Topic{topic("a")})

	require.NoError(t, s.Select(context.Background(), "DL-02"))
	f.push([]types.Topic{topic("b")})

	topics, counts := f.open()
	assert.Equal(t, 1, topics, "exactly one topic subscription after reselect")
	assert.Equal(t, 1, counts, "exactly one counts subscription after reselect")
}

func TestCountsScopeFollowsSnapshot(t *testing.T) {
	f := &subTracker{}
	s := New(f)
	defer s.Close()

	require.NoError(t, s.Select(context.Background(), "DL-01"))

	f.push([]types.Topic{topic("a"), topic("b")})
	assert.Equal(t, []string{"a", "b"}, f.lastScope)

	// A new snapshot (topic added) replaces the counts subscription scope.
	f.push([]types.Topic{topic("a"), topic("b"), topic("c")})
	assert.Equal(t, []string{"a", "b", "c"}, f.lastScope)

	_, counts := f.open()
	assert.Equal(t, 1, counts)
}

func TestStaleSnapshotIgnored(t *testing.T) {
	f := &subTracker{}
	s := New(f)
	defer s.Close()

	require.NoError(t, s.Select(context.Background(), "DL-01"))
	f.mu.Lock()
	staleFn := f.lastTopics
	f.mu.Unlock()

	require.NoError(t, s.Select(context.Background(), "DL-02"))

	// A late delivery from the first subscription must not surface.
	staleFn([]types.Topic{topic("old")})
	assert.Empty(t, s.Snapshot())
	assert.Equal(t, "DL-02", s.Selected())
}

func TestDeliveryAndReselectAreMutuallyExclusive(t *testing.T) {
	f := &subTracker{}
	s := New(f)
	defer s.Close()

	entered := make(chan struct{})
	release := make(chan struct{})
	first := true
	s.OnTopics(func([]types.Topic) {
		// Serialized by the store; only the first delivery blocks.
		if first {
			first = false
			close(entered)
			<-release
		}
	})

	require.NoError(t, s.Select(context.Background(), "DL-01"))

	go f.push([]types.Topic{topic("a")})
	<-entered

	selectDone := make(chan struct{})
	go func() {
		_ = s.Select(context.Background(), "DL-02")
		close(selectDone)
	}()

	// While a snapshot delivery is in flight, a reselect cannot complete,
	// so the callback can never observe a list for a deselected
	// constituency.
	select {
	case <-selectDone:
		t.Fatal("reselect completed during an in-flight delivery")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-selectDone
	assert.Equal(t, "DL-02", s.Selected())
}

func TestCloseReleasesEverything(t *testing.T) {
	f := &subTracker{}
	s := New(f)

	require.NoError(t, s.Select(context.Background(), "DL-01"))
	f.push([]types.Topic{topic("a")})

	s.Close()
	topics, counts := f.open()
	assert.Zero(t, topics)
	assert.Zero(t, counts)
	assert.Empty(t, s.Snapshot())
	assert.Empty(t, s.Selected())
}

func TestAuthoringPassThrough(t *testing.T) {
	f := &subTracker{}
	s := New(f)
	defer s.Close()

	id, err := s.Create(context.Background(), "DL-01", remote.TopicFields{Title: "roads"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)

	title := "roads and drains"
	assert.NoError(t, s.Update(context.Background(), id, remote.TopicUpdate{Title: &title}))
	assert.NoError(t, s.Delete(context.Background(), id))
}
