package repository

import (
	"movees-db/internal/data/entity"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Snapshot is a read-only view of the catalogue at one point in time.
// Movies must not be modified by callers.
type Snapshot struct {
	Movies    []entity.Movie
	Loading   bool
	FetchedAt time.Time
	Seq       uint64
}

// CatalogRepository holds the fetched movie list in memory. Writers follow
// a "latest request wins" discipline: each fetch takes a sequence number
// from Begin, and Commit ignores any sequence older than the last applied.
type CatalogRepository interface {
	Begin() uint64
	Commit(seq uint64, movies []entity.Movie) bool
	Settle(seq uint64)
	Snapshot() Snapshot
}

type catalogRepository struct {
	mu      sync.RWMutex
	movies  []entity.Movie
	issued  uint64
	applied uint64
	settled uint64
	loading bool
	fetched time.Time
	now     func() time.Time
	log     *zap.Logger
}

func NewCatalogRepository(log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		movies: []entity.Movie{},
		now:    time.Now,
		log:    log.With(zap.String("repository", "catalog")),
	}
}

// Begin issues the next sequence number and marks the catalogue loading.
func (r *catalogRepository) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.issued++
	r.loading = true
	return r.issued
}

// Commit replaces the list when no newer request has been applied or has
// settled yet.
func (r *catalogRepository) Commit(seq uint64, movies []entity.Movie) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq <= r.applied || seq < r.settled {
		r.log.Warn("Dropping stale catalog update",
			zap.Uint64("seq", seq),
			zap.Uint64("applied", r.applied),
			zap.Uint64("settled", r.settled),
		)
		return false
	}

	fresh := make([]entity.Movie, len(movies))
	copy(fresh, movies)

	r.movies = fresh
	r.applied = seq
	r.fetched = r.now()
	return true
}

// Settle clears loading once the most recently issued request has finished.
func (r *catalogRepository) Settle(seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq > r.settled {
		r.settled = seq
	}
	if seq >= r.issued {
		r.loading = false
	}
}

func (r *catalogRepository) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Snapshot{
		Movies:    r.movies[:len(r.movies):len(r.movies)],
		Loading:   r.loading,
		FetchedAt: r.fetched,
		Seq:       r.applied,
	}
}
