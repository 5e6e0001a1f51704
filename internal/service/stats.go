package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

// StatsReader reads aggregated generation events.
type StatsReader interface {
	CountByLevel(ctx context.Context) (map[string]int64, error)
}

// StatsService summarizes recorded generation events.
type StatsService struct {
	repo StatsReader
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo StatsReader) *StatsService {
	return &StatsService{repo: repo}
}

// Summary returns the total and the per-level counts. Every level appears, with zero if
// nothing was recorded for it. Rows with an unknown level are left out of both.
func (s *StatsService) Summary(ctx context.Context) (model.StatsResponse, error) {
	counts, err := s.repo.CountByLevel(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	resp := model.StatsResponse{ByLevel: make(map[string]int64)}
	for _, l := range strength.Levels() {
		resp.ByLevel[l.Tag()] = 0
	}
	for tag, n := range counts {
		l, ok := strength.ParseTag(tag)
		if !ok {
			slog.Warn("skipping unknown strength level in stats", "level", tag, "count", n)
			continue
		}
		resp.ByLevel[l.Tag()] += n
		resp.Total += n
	}

	return resp, nil
}
