package session

import (
	"context"
	"testing"
	"time"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	mockauth "github.com/onboardhq/onboard-ui-api/internal/mocks/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "client-1"

func rhIdentity() domainauth.Identity {
	return domainauth.Identity{
		Name:  "Recursos Humanos",
		Email: "rh@empresa.com",
		Role:  domainauth.RoleRH,
		Token: "mocked-token-rh",
	}
}

func receiveState(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case state, ok := <-ch:
		require.True(t, ok, "watch channel closed unexpectedly")
		return state
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for session state")
		return State{}
	}
}

func TestStore_StartsAbsent(t *testing.T) {
	t.Parallel()
	store := NewStore(testClientID, mockauth.NewMemoryRecordStore())

	_, present := store.Current(context.Background())
	assert.False(t, present)
}

func TestStore_RestoresPersistedRecord(t *testing.T) {
	t.Parallel()
	records := mockauth.NewMemoryRecordStore()
	require.NoError(t, records.Save(context.Background(), testClientID, rhIdentity()))

	store := NewStore(testClientID, records)
	identity, present := store.Current(context.Background())
	require.True(t, present)
	assert.Equal(t, rhIdentity(), identity)
}

func TestStore_CorruptRecordDegradesToAbsent(t *testing.T) {
	t.Parallel()
	records := mockauth.NewMemoryRecordStore()
	records.Corrupt[testClientID] = true

	store := NewStore(testClientID, records)
	_, present := store.Current(context.Background())
	assert.False(t, present)
}

func TestStore_SetPersistsAndNotifies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	records := mockauth.NewMemoryRecordStore()
	store := NewStore(testClientID, records)

	ch := store.Watch(ctx)
	first := receiveState(t, ch)
	assert.False(t, first.Present, "replay-of-latest should deliver the absent state first")

	require.NoError(t, store.Set(ctx, rhIdentity()))

	next := receiveState(t, ch)
	require.True(t, next.Present)
	assert.Equal(t, rhIdentity(), next.Identity)

	persisted, ok, err := records.Load(ctx, testClientID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rhIdentity(), persisted)
}

func TestStore_WatchReplaysLatestToLateSubscribers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(testClientID, mockauth.NewMemoryRecordStore())
	require.NoError(t, store.Set(ctx, rhIdentity()))

	state := receiveState(t, store.Watch(ctx))
	require.True(t, state.Present)
	assert.Equal(t, "rh@empresa.com", state.Identity.Email)
}

func TestStore_ClearNotifiesAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(testClientID, mockauth.NewMemoryRecordStore())
	require.NoError(t, store.Set(ctx, rhIdentity()))

	ch := store.Watch(ctx)
	receiveState(t, ch) // replay

	require.NoError(t, store.Clear(ctx))
	state := receiveState(t, ch)
	assert.False(t, state.Present)

	_, present := store.Current(ctx)
	assert.False(t, present)
}

func TestStore_TransitionsDeliveredInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(testClientID, mockauth.NewMemoryRecordStore())

	ch := store.Watch(ctx)
	receiveState(t, ch) // initial absent

	require.NoError(t, store.Set(ctx, rhIdentity()))
	require.NoError(t, store.Clear(ctx))
	admin := domainauth.Identity{Name: "Administrador", Email: "admin@empresa.com", Role: domainauth.RoleAdmin, Token: "t"}
	require.NoError(t, store.Set(ctx, admin))

	assert.True(t, receiveState(t, ch).Present)
	assert.False(t, receiveState(t, ch).Present)
	last := receiveState(t, ch)
	require.True(t, last.Present)
	assert.Equal(t, domainauth.RoleAdmin, last.Identity.Role)
}

func TestStore_FailedPersistLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	records := mockauth.NewMemoryRecordStore()
	store := NewStore(testClientID, records)
	require.NoError(t, store.Set(ctx, rhIdentity()))

	records.SaveErr = assert.AnError
	err := store.Set(ctx, domainauth.Identity{Email: "other@empresa.com", Role: domainauth.RoleAdmin})
	require.Error(t, err)

	identity, present := store.Current(ctx)
	require.True(t, present)
	assert.Equal(t, "rh@empresa.com", identity.Email)
}

func TestStore_WatchEndsWhenContextDone(t *testing.T) {
	t.Parallel()
	store := NewStore(testClientID, mockauth.NewMemoryRecordStore())

	ctx, cancel := context.WithCancel(context.Background())
	ch := store.Watch(ctx)
	receiveState(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after cancellation")
	case <-time.After(time.Second):
		t.Fatal("watch channel was not closed after context cancellation")
	}
}

func TestManager_SharesStoresPerClient(t *testing.T) {
	t.Parallel()
	mgr := NewManager(mockauth.NewMemoryRecordStore())

	a := mgr.Store("c1")
	b := mgr.Store("c1")
	other := mgr.Store("c2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
}

func TestManager_PruneDropsIdleStores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mgr := NewManager(mockauth.NewMemoryRecordStore())

	// Anonymous clients that only presented a cookie value.
	mgr.Store("anon-1")
	mgr.Store("anon-2")

	// Logged-in client: holds an identity, must survive the sweep.
	loggedIn := mgr.Store("c1")
	require.NoError(t, loggedIn.Set(ctx, rhIdentity()))

	// Anonymous client with an open watch stream: also survives.
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	watched := mgr.Store("c2")
	ch := watched.Watch(watchCtx)
	receiveState(t, ch)

	assert.Equal(t, 2, mgr.Prune())
	assert.Same(t, loggedIn, mgr.Store("c1"))
	assert.Same(t, watched, mgr.Store("c2"))

	// The pruned clients get fresh stores on next access.
	assert.True(t, mgr.Store("anon-1").Idle())
}

func TestManager_PruneKeepsDurableState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	records := mockauth.NewMemoryRecordStore()
	mgr := NewManager(records)

	require.NoError(t, mgr.Store("c1").Set(ctx, rhIdentity()))

	// A store that was never accessed this process looks idle even when a
	// record exists; pruning it must not lose the identity.
	fresh := NewManager(records)
	fresh.Store("c1")
	fresh.Prune()

	identity, present := fresh.Store("c1").Current(ctx)
	require.True(t, present)
	assert.Equal(t, "rh@empresa.com", identity.Email)
}

func TestManager_EvictClosesWatchers(t *testing.T) {
	t.Parallel()
	mgr := NewManager(mockauth.NewMemoryRecordStore())
	store := mgr.Store("c1")

	ch := store.Watch(context.Background())
	receiveState(t, ch)

	mgr.Evict("c1")

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("watch channel was not closed after eviction")
	}
}
