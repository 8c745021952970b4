package repository

import (
	"movees-db/internal/data/entity"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func movies(titles ...string) []entity.Movie {
	out := make([]entity.Movie, 0, len(titles))
	for _, title := range titles {
		out = append(out, entity.Movie{Title: title})
	}
	return out
}

func TestCatalogInitialSnapshot(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())
	snap := c.Snapshot()

	assert.NotNil(t, snap.Movies)
	assert.Empty(t, snap.Movies)
	assert.False(t, snap.Loading)
	assert.Zero(t, snap.Seq)
	assert.True(t, snap.FetchedAt.IsZero())
}

func TestCatalogBeginCommitSettle(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())

	seq := c.Begin()
	assert.True(t, c.Snapshot().Loading)

	assert.True(t, c.Commit(seq, movies("Jaws", "Alien")))
	assert.True(t, c.Snapshot().Loading, "loading stays on until settle")

	c.Settle(seq)
	snap := c.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Movies, 2)
	assert.Equal(t, seq, snap.Seq)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestCatalogStaleCommitDropped(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())

	first := c.Begin()
	second := c.Begin()

	assert.True(t, c.Commit(second, movies("new")))
	c.Settle(second)
	assert.False(t, c.Snapshot().Loading)

	assert.False(t, c.Commit(first, movies("old")))
	c.Settle(first)

	snap := c.Snapshot()
	assert.Equal(t, "new", snap.Movies[0].Title)
	assert.Equal(t, second, snap.Seq)
	assert.False(t, snap.Loading)
}

func TestCatalogStaleAfterNewerFailure(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())
	assert.True(t, c.Commit(c.Begin(), movies("kept")))

	older := c.Begin()
	newer := c.Begin()

	// newer request failed and settled without committing
	c.Settle(newer)
	assert.False(t, c.Commit(older, movies("old")))
	c.Settle(older)

	assert.Equal(t, "kept", c.Snapshot().Movies[0].Title)
}

func TestCatalogLoadingUntilLatestSettles(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())

	first := c.Begin()
	second := c.Begin()

	c.Settle(first)
	assert.True(t, c.Snapshot().Loading)

	c.Settle(second)
	assert.False(t, c.Snapshot().Loading)
}

func TestCatalogCommitCopiesInput(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())
	in := movies("Jaws")
	c.Commit(c.Begin(), in)

	in[0].Title = "mutated"

	assert.Equal(t, "Jaws", c.Snapshot().Movies[0].Title)
}

func TestCatalogSnapshotAppendDoesNotLeak(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())
	c.Commit(c.Begin(), movies("a", "b"))

	snap := c.Snapshot()
	_ = append(snap.Movies, entity.Movie{Title: "c"})

	assert.Len(t, c.Snapshot().Movies, 2)
}

func TestCatalogFetchedAtUsesClock(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop()).(*catalogRepository)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return at }

	c.Commit(c.Begin(), movies("Jaws"))

	assert.Equal(t, at, c.Snapshot().FetchedAt)
}

func TestCatalogConcurrentAccess(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			seq := c.Begin()
			c.Commit(seq, movies("x"))
			c.Settle(seq)
		}()
		go func() {
			defer wg.Done()
			_ = c.Snapshot()
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Movies, 1)
}
