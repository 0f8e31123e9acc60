package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achantasri/JanAwaaz/internal/remote"
	"github.com/achantasri/JanAwaaz/internal/types"
)

// fakeStore implements remote.Store with the backend's vote semantics in
// memory: the previous direction comes from the stored row, never from the
// caller. castFn and votesFn override the default behavior when set.
type fakeStore struct {
	mu     sync.Mutex
	votes  map[string]string
	counts map[string]remote.Counts

	castFn  func(uid, constituencyID, topicID, dir string) (string, error)
	votesFn func() (map[string]string, error)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		votes:  make(map[string]string),
		counts: make(map[string]remote.Counts),
	}
}

func (f *fakeStore) CastVoteAtomic(_ context.Context, uid, constituencyID, topicID, dir string) (string, error) {
	if f.castFn != nil {
		return f.castFn(uid, constituencyID, topicID, dir)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	prev := f.votes[topicID]
	c := f.counts[topicID]
	result := dir
	if prev == dir {
		delete(f.votes, topicID)
		c = decrement(c, dir)
		result = ""
	} else {
		if prev != "" {
			c = decrement(c, prev)
		}
		f.votes[topicID] = dir
		if dir == types.DirectionUp {
			c.Up++
		} else {
			c.Down++
		}
	}
	f.counts[topicID] = c
	return result, nil
}

func decrement(c remote.Counts, dir string) remote.Counts {
	if dir == types.DirectionUp && c.Up > 0 {
		c.Up--
	}
	if dir == types.DirectionDown && c.Down > 0 {
		c.Down--
	}
	return c
}

func (f *fakeStore) GetUserVotes(context.Context, string, string) (map[string]string, error) {
	if f.votesFn != nil {
		return f.votesFn()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.votes))
	for k, v := range f.votes {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) SubscribeTopics(context.Context, string, func([]types.Topic)) (remote.Unsubscribe, error) {
	return func() {}, nil
}

func (f *fakeStore) CreateTopic(context.Context, string, remote.TopicFields) (string, error) {
	return "", nil
}

func (f *fakeStore) UpdateTopic(context.Context, string, remote.TopicUpdate) error { return nil }
func (f *fakeStore) DeleteTopic(context.Context, string) error                     { return nil }

func (f *fakeStore) SubscribeVoteCounts(context.Context, string, []string, func(string, remote.Counts)) (remote.Unsubscribe, error) {
	return func() {}, nil
}

func (f *fakeStore) IsAdmin(context.Context, string) (bool, error) { return false, nil }

func TestCastLifecycle(t *testing.T) {
	store := newFakeStore()
	l := New(store, "user-1", "DL-01")
	ctx := context.Background()

	require.NoError(t, l.Cast(ctx, "t1", types.DirectionUp))
	assert.Equal(t, types.DirectionUp, l.Vote("t1"))
	assert.Equal(t, remote.Counts{Up: 1, Down: 0}, l.Counts("t1"))

	require.NoError(t, l.Cast(ctx, "t1", types.DirectionDown))
	assert.Equal(t, types.DirectionDown, l.Vote("t1"))
	assert.Equal(t, remote.Counts{Up: 0, Down: 1}, l.Counts("t1"))

	require.NoError(t, l.Cast(ctx, "t1", types.DirectionDown))
	assert.Equal(t, "", l.Vote("t1"))
	assert.Equal(t, remote.Counts{Up: 0, Down: 0}, l.Counts("t1"))
}

func TestToggleIdempotence(t *testing.T) {
	store := newFakeStore()
	l := New(store, "user-1", "DL-01")
	ctx := context.Background()

	before := l.Counts("t1")
	require.NoError(t, l.Cast(ctx, "t1", types.DirectionUp))
	require.NoError(t, l.Cast(ctx, "t1", types.DirectionUp))

	assert.Equal(t, "", l.Vote("t1"))
	assert.Equal(t, before, l.Counts("t1"))
	assert.Empty(t, store.votes)
}

func TestSwitchIsAtomicLocally(t *testing.T) {
	store := newFakeStore()
	l := New(store, "user-1", "DL-01")
	ctx := context.Background()

	require.NoError(t, l.Cast(ctx, "t1", types.DirectionUp))
	require.NoError(t, l.Cast(ctx, "t1", types.DirectionDown))

	// The switch lands as one transition: up decremented and down
	// incremented together.
	assert.Equal(t, remote.Counts{Up: 0, Down: 1}, l.Counts("t1"))
	assert.Equal(t, remote.Counts{Up: 0, Down: 1}, store.counts["t1"])
}

func TestIndependentTopics(t *testing.T) {
	store := newFakeStore()
	l := New(store, "user-1", "DL-01")
	ctx := context.Background()

	require.NoError(t, l.Cast(ctx, "t1", types.DirectionUp))
	require.NoError(t, l.Cast(ctx, "t2", types.DirectionDown))

	assert.Equal(t, types.DirectionUp, l.Vote("t1"))
	assert.Equal(t, types.DirectionDown, l.Vote("t2"))
	assert.Equal(t, remote.Counts{Up: 1}, l.Counts("t1"))
	assert.Equal(t, remote.Counts{Down: 1}, l.Counts("t2"))
}

func TestStaleClientCastTogglesStoredVote(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	first := New(store, "user-1", "DL-01")
	require.NoError(t, first.Cast(ctx, "t1", types.DirectionUp))
	assert.Equal(t, remote.Counts{Up: 1}, store.counts["t1"])

	// A second client for the same user that never refreshed its view casts
	// the same direction. The store derives the previous direction from the
	// committed row, so this toggles the vote off instead of counting twice.
	second := New(store, "user-1", "DL-01")
	require.NoError(t, second.Cast(ctx, "t1", types.DirectionUp))

	assert.Empty(t, store.votes)
	assert.Equal(t, remote.Counts{}, store.counts["t1"])
}

func TestCastRequiresSession(t *testing.T) {
	store := newFakeStore()

	noUser := New(store, "", "DL-01")
	assert.ErrorIs(t, noUser.Cast(context.Background(), "t1", types.DirectionUp), ErrNotSignedIn)
	assert.Equal(t, "", noUser.Vote("t1"))

	noConstituency := New(store, "user-1", "")
	assert.ErrorIs(t, noConstituency.Cast(context.Background(), "t1", types.DirectionUp), ErrNoConstituency)
	assert.Equal(t, "", noConstituency.Vote("t1"))
}

func TestCastRejectsBadDirection(t *testing.T) {
	l := New(newFakeStore(), "user-1", "DL-01")
	assert.ErrorIs(t, l.Cast(context.Background(), "t1", "sideways"), ErrBadDirection)
}

func TestCountsDefaultToZero(t *testing.T) {
	l := New(newFakeStore(), "user-1", "DL-01")
	assert.Equal(t, remote.Counts{}, l.Counts("brand-new"))
}

func TestApplyCountsReplacesPrediction(t *testing.T) {
	store := newFakeStore()
	l := New(store, "user-1", "DL-01")

	require.NoError(t, l.Cast(context.Background(), "t1", types.DirectionUp))
	assert.Equal(t, remote.Counts{Up: 1}, l.Counts("t1"))

	// An authoritative push carries other users' votes too.
	l.ApplyCounts("t1", remote.Counts{Up: 7, Down: 2})
	assert.Equal(t, remote.Counts{Up: 7, Down: 2}, l.Counts("t1"))
}

func TestFailedCastReconcilesFromRemote(t *testing.T) {
	store := newFakeStore()
	store.castFn = func(_, _, _, _ string) (string, error) {
		return "", errors.New("backend down")
	}
	store.votesFn = func() (map[string]string, error) {
		return map[string]string{"t1": types.DirectionUp}, nil
	}

	l := New(store, "user-1", "DL-01")
	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, types.DirectionUp, l.Vote("t1"))

	// The optimistic cast on t2 fails remotely; the vote view is replaced
	// wholesale with the authoritative set.
	err := l.Cast(context.Background(), "t2", types.DirectionDown)
	require.Error(t, err)
	assert.Equal(t, "", l.Vote("t2"))
	assert.Equal(t, types.DirectionUp, l.Vote("t1"))
}

func TestReconcileSkippedWhenNewerCastExists(t *testing.T) {
	store := newFakeStore()
	started := make(chan struct{})
	release := make(chan struct{})
	store.castFn = func(_, _, topicID, dir string) (string, error) {
		if topicID == "slow" {
			close(started)
			<-release
			return "", errors.New("backend down")
		}
		return dir, nil
	}
	store.votesFn = func() (map[string]string, error) {
		// Stale authoritative view: neither vote present.
		return map[string]string{}, nil
	}

	l := New(store, "user-1", "DL-01")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = l.Cast(context.Background(), "slow", types.DirectionUp)
	}()

	<-started
	require.NoError(t, l.Cast(context.Background(), "fast", types.DirectionUp))
	close(release)
	wg.Wait()

	// The failed cast's reconciliation fetched a view older than the
	// "fast" optimistic update and must not clobber it.
	assert.Equal(t, types.DirectionUp, l.Vote("fast"))
}
