package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/vaultpass/passgen-go/internal/model"
)

// StatsRepository persists generation events. It stores metadata only, never passwords.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Record inserts a generation event, assigning an ID and a UTC timestamp if the event has none.
func (r *StatsRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO generation_events (event_id, length, classes, score, level, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, event.ID, event.Length, event.Classes, event.Score, event.Level, event.CreatedAt)
	if err != nil {
		return errors.Wrap(err, "insert generation event")
	}
	return nil
}

// CountByLevel returns the number of recorded events per strength level tag.
func (r *StatsRepository) CountByLevel(ctx context.Context) (map[string]int64, error) {
	query := `SELECT level, COUNT(*) FROM generation_events GROUP BY level`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "count generation events")
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			level string
			n     int64
		)
		if err := rows.Scan(&level, &n); err != nil {
			return nil, errors.Wrap(err, "scan level count")
		}
		counts[level] = n
	}

	return counts, rows.Err()
}
