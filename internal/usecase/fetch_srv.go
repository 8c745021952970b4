package usecase

import (
	"context"
	"fmt"
	"time"

	"movees-db/internal/data/repository"
	"movees-db/pkg/graphql"

	"go.uber.org/zap"
)

type RefreshStatus string

const (
	RefreshApplied RefreshStatus = "applied"
	RefreshStale   RefreshStatus = "stale"
	RefreshFailed  RefreshStatus = "failed"
)

// RefreshOutcome reports one refresh. Error is a message, never returned.
type RefreshOutcome struct {
	Status RefreshStatus `json:"status"`
	Count  int           `json:"count"`
	Seq    uint64        `json:"seq"`
	Kind   string        `json:"kind,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// FetchRecorder receives one observation per refresh.
type FetchRecorder interface {
	ObserveFetch(status, kind string, d time.Duration, count int)
}

type FetchService interface {
	Refresh(ctx context.Context) RefreshOutcome
	Snapshot() repository.Snapshot
	Run(ctx context.Context, interval time.Duration)
}

type fetchService struct {
	repo     *repository.Repository
	params   graphql.MoviesParams
	recorder FetchRecorder
	log      *zap.Logger
}

func NewFetchService(repo *repository.Repository, params graphql.MoviesParams, recorder FetchRecorder, log *zap.Logger) FetchService {
	return &fetchService{
		repo:     repo,
		params:   params.WithDefaults(),
		recorder: recorder,
		log:      log.With(zap.String("service", "fetch")),
	}
}

// Refresh fetches the configured batch and replaces the catalogue unless a
// newer refresh got there first. Failures keep the previous list.
func (s *fetchService) Refresh(ctx context.Context) (out RefreshOutcome) {
	seq := s.repo.Catalog.Begin()
	start := time.Now()
	out.Seq = seq

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Recovered from panic during refresh",
				zap.Any("panic", r),
				zap.Uint64("seq", seq),
			)
			out = RefreshOutcome{
				Status: RefreshFailed,
				Seq:    seq,
				Kind:   graphql.KindUnknown,
				Error:  fmt.Sprint(r),
			}
		}
		s.repo.Catalog.Settle(seq)
		s.observe(out, time.Since(start))
	}()

	movies, err := s.repo.Movie.FetchMovies(ctx, s.params)
	if err != nil {
		s.log.Error("Failed to refresh movies",
			zap.Error(err),
			zap.String("kind", graphql.ErrorKind(err)),
			zap.Uint64("seq", seq),
		)
		out.Status = RefreshFailed
		out.Kind = graphql.ErrorKind(err)
		out.Error = err.Error()
		return out
	}

	out.Count = len(movies)
	if !s.repo.Catalog.Commit(seq, movies) {
		s.log.Info("Discarded stale refresh",
			zap.Uint64("seq", seq),
			zap.Int("count", len(movies)),
		)
		out.Status = RefreshStale
		return out
	}

	s.log.Info("Refreshed movies",
		zap.Uint64("seq", seq),
		zap.Int("count", len(movies)),
		zap.Duration("took", time.Since(start)),
	)
	out.Status = RefreshApplied
	return out
}

func (s *fetchService) observe(out RefreshOutcome, d time.Duration) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveFetch(string(out.Status), out.Kind, d, out.Count)
}

func (s *fetchService) Snapshot() repository.Snapshot {
	return s.repo.Catalog.Snapshot()
}

// Run refreshes once, then every interval until ctx is done. A non-positive
// interval means a single refresh.
func (s *fetchService) Run(ctx context.Context, interval time.Duration) {
	s.Refresh(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Stopping refresh loop", zap.Error(ctx.Err()))
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
