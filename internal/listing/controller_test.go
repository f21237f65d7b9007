package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Name string
}

func rowKey(r row) uint { return r.ID }

func TestControllerLoad(t *testing.T) {
	c := NewController(func(ctx context.Context) ([]row, error) {
		return []row{{1, "a"}, {2, "b"}, {1, "a again"}}, nil
	}, rowKey)

	snap := c.Load(context.Background())

	assert.Equal(t, StatusLoaded, snap.Status)
	assert.Equal(t, []row{{1, "a"}, {2, "b"}}, snap.Items)
	assert.NoError(t, snap.Err)
}

func TestControllerLoad_Error(t *testing.T) {
	c := NewController(func(ctx context.Context) ([]row, error) {
		return nil, errors.New("boom")
	}, rowKey)

	snap := c.Load(context.Background())

	assert.Equal(t, StatusError, snap.Status)
	assert.Error(t, snap.Err)
	assert.Empty(t, snap.Items)
}

// A slow load for filter "a" must not overwrite the result of a newer load for
// filter "ab" that finished first.
func TestControllerLoad_StaleResultDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	results := map[int][]row{
		1: {{1, "stale"}},
		2: {{2, "fresh"}},
	}

	var call int
	fetch := func(ctx context.Context) ([]row, error) {
		call++
		n := call
		if n == 1 {
			close(started)
			<-release
		}
		return results[n], nil
	}

	c := NewController(fetch, rowKey)

	done := make(chan Snapshot[row])
	go func() {
		done <- c.Load(context.Background())
	}()
	<-started

	fresh := c.Load(context.Background())
	require.Equal(t, StatusLoaded, fresh.Status)
	require.Equal(t, []row{{2, "fresh"}}, fresh.Items)

	close(release)
	<-done

	snap := c.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	assert.Equal(t, []row{{2, "fresh"}}, snap.Items)
}

func TestControllerInvalidate_SupersedesInFlightLoad(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	c := NewController(func(ctx context.Context) ([]row, error) {
		close(started)
		<-release
		return []row{{1, "late"}}, nil
	}, rowKey)

	done := make(chan struct{})
	go func() {
		c.Load(context.Background())
		close(done)
	}()
	<-started

	c.Invalidate()
	close(release)
	<-done

	snap := c.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Empty(t, snap.Items)
}
