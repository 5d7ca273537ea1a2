package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
)

type healthHistoryRepository struct {
	BaseRepository
}

func NewHealthHistoryRepository(base BaseRepository) repository.HealthHistoryRepository {
	return &healthHistoryRepository{base}
}

// Upsert follows the same upsert-by-day rule as health_data but writes
// to the independent user_health_history table.
func (r *healthHistoryRepository) Upsert(ctx context.Context, rec *model.HealthHistoryRecord) (err error) {
	start := time.Now()
	defer func() { r.track("history_upsert", start, err) }()

	query := `
		INSERT INTO user_health_history (
			username, record_date, weight, height, bp, sugar
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username, record_date) DO UPDATE SET
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			bp = EXCLUDED.bp,
			sugar = EXCLUDED.sugar
		RETURNING history_id
	`

	if err = r.db.GetContext(ctx, &rec.HistoryID, query,
		rec.Username,
		rec.RecordDate,
		rec.Weight,
		rec.Height,
		rec.BP,
		rec.Sugar,
	); err != nil {
		err = fmt.Errorf("failed to upsert health history record: %w", err)
		return err
	}
	return nil
}

func (r *healthHistoryRepository) List(ctx context.Context, username string) (recs []*model.HealthHistoryRecord, err error) {
	start := time.Now()
	defer func() { r.track("history_list", start, err) }()

	query := `
		SELECT history_id, username, record_date, weight, height, bp, sugar
		FROM user_health_history
		WHERE username = $1
		ORDER BY record_date DESC
	`

	if err = r.db.SelectContext(ctx, &recs, query, username); err != nil {
		err = fmt.Errorf("failed to list health history: %w", err)
		return nil, err
	}
	return recs, nil
}
