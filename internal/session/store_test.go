package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type fakeAuth struct {
	calls     atomic.Int32
	session   domain.Session
	err       error
	failFirst error
	block     chan struct{}
}

func (f *fakeAuth) Me(ctx context.Context) (domain.Session, error) {
	n := f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	if ctx.Err() != nil {
		return domain.Session{}, ctx.Err()
	}
	if f.failFirst != nil && n == 1 {
		return domain.Session{}, f.failFirst
	}
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return f.session, nil
}

func TestStoreGet_MemoizesSession(t *testing.T) {
	auth := &fakeAuth{session: domain.Session{ID: 7, Role: "recruiter"}}
	store := NewStore(auth)

	sess := store.Get(context.Background(), "tok")
	require.NotNil(t, sess)
	assert.Equal(t, uint(7), sess.ID)

	store.Get(context.Background(), "tok")
	store.Get(context.Background(), "tok")
	assert.Equal(t, int32(1), auth.calls.Load())
}

func TestStoreGet_SingleFlightUnderConcurrency(t *testing.T) {
	auth := &fakeAuth{
		session: domain.Session{ID: 1},
		block:   make(chan struct{}),
	}
	store := NewStore(auth)

	var wg sync.WaitGroup
	results := make([]*domain.Session, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.Get(context.Background(), "tok")
		}(i)
	}

	close(auth.block)
	wg.Wait()

	assert.Equal(t, int32(1), auth.calls.Load())
	for _, sess := range results {
		require.NotNil(t, sess)
		assert.Equal(t, uint(1), sess.ID)
	}
}

func TestStoreGet_Memoizes401AsUnauthenticated(t *testing.T) {
	auth := &fakeAuth{err: backend.ErrAuthenticationRequired}
	store := NewStore(auth)

	assert.Nil(t, store.Get(context.Background(), "tok"))
	assert.Nil(t, store.Get(context.Background(), "tok"))
	assert.Equal(t, int32(1), auth.calls.Load())
}

func TestStoreGet_TransportFailureIsRetried(t *testing.T) {
	auth := &fakeAuth{
		failFirst: errors.New("connection refused"),
		session:   domain.Session{ID: 4},
	}
	store := NewStore(auth)

	assert.Nil(t, store.Get(context.Background(), "tok"))

	// The failure was not cached; the next lookup fetches again.
	sess := store.Get(context.Background(), "tok")
	require.NotNil(t, sess)
	assert.Equal(t, uint(4), sess.ID)
	assert.Equal(t, int32(2), auth.calls.Load())
}

func TestStoreGet_AbortedRequestDoesNotLockOutToken(t *testing.T) {
	auth := &fakeAuth{session: domain.Session{ID: 6, Role: "recruiter"}}
	store := NewStore(auth)

	// A browser-aborted request must not turn into a durable "no session"
	// for everyone carrying the same cookie.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	sess := store.Get(cancelled, "tok")
	require.NotNil(t, sess)
	assert.Equal(t, uint(6), sess.ID)

	sess = store.Get(context.Background(), "tok")
	require.NotNil(t, sess)
	assert.Equal(t, int32(1), auth.calls.Load())
}

func TestStoreGet_EmptyToken(t *testing.T) {
	auth := &fakeAuth{session: domain.Session{ID: 1}}
	store := NewStore(auth)

	assert.Nil(t, store.Get(context.Background(), ""))
	assert.Equal(t, int32(0), auth.calls.Load())
}

func TestStoreSet_PrimesWithoutFetch(t *testing.T) {
	auth := &fakeAuth{}
	store := NewStore(auth)

	store.Set("tok", domain.Session{ID: 3, Role: domain.RoleAdmin})

	assert.True(t, store.IsAdmin(context.Background(), "tok"))
	assert.Equal(t, int32(0), auth.calls.Load())
}

func TestStoreClear_ForcesRefetch(t *testing.T) {
	auth := &fakeAuth{session: domain.Session{ID: 5}}
	store := NewStore(auth)

	store.Get(context.Background(), "tok")
	store.Clear("tok")
	store.Get(context.Background(), "tok")

	assert.Equal(t, int32(2), auth.calls.Load())
}

func TestIsOwner(t *testing.T) {
	auth := &fakeAuth{session: domain.Session{ID: 9, Role: "recruiter"}}
	store := NewStore(auth)

	assert.True(t, store.IsOwner(context.Background(), "tok", 9))
	assert.False(t, store.IsOwner(context.Background(), "tok", 10))
}

func TestIsOwner_AdminOverridesAnyCreator(t *testing.T) {
	auth := &fakeAuth{session: domain.Session{ID: 2, Role: domain.RoleAdmin}}
	store := NewStore(auth)

	assert.True(t, store.IsOwner(context.Background(), "tok", 9999))
}

func TestIsOwner_FailsClosedWithoutSession(t *testing.T) {
	auth := &fakeAuth{err: errors.New("backend down")}
	store := NewStore(auth)

	assert.False(t, store.IsOwner(context.Background(), "tok", 1))
	assert.False(t, store.IsOwner(context.Background(), "", 1))
}
