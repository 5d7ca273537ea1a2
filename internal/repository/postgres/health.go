package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
)

type healthRepository struct {
	BaseRepository
}

func NewHealthRepository(base BaseRepository) repository.HealthRepository {
	return &healthRepository{base}
}

// Upsert inserts the day's snapshot or overwrites it in place. The
// conflict target is the (username, record_date) unique index, which
// makes the insert-or-update atomic under concurrent writers.
func (r *healthRepository) Upsert(ctx context.Context, rec *model.HealthRecord) (err error) {
	start := time.Now()
	defer func() { r.track("health_upsert", start, err) }()

	query := `
		INSERT INTO health_data (
			username, record_date, weight, height, bp, symptoms, pre_meds
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username, record_date) DO UPDATE SET
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			bp = EXCLUDED.bp,
			symptoms = EXCLUDED.symptoms,
			pre_meds = EXCLUDED.pre_meds
		RETURNING health_id
	`

	if err = r.db.GetContext(ctx, &rec.HealthID, query,
		rec.Username,
		rec.RecordDate,
		rec.Weight,
		rec.Height,
		rec.BP,
		rec.Symptoms,
		rec.PreMeds,
	); err != nil {
		err = fmt.Errorf("failed to upsert health record: %w", err)
		return err
	}
	return nil
}

func (r *healthRepository) GetLatest(ctx context.Context, username string) (rec *model.HealthRecord, err error) {
	start := time.Now()
	defer func() { r.track("health_get_latest", start, err) }()

	query := `
		SELECT health_id, username, record_date, weight, height, bp, symptoms, pre_meds
		FROM health_data
		WHERE username = $1
		ORDER BY record_date DESC
		LIMIT 1
	`

	rec = &model.HealthRecord{}
	if err = r.db.GetContext(ctx, rec, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = repository.ErrNotFound
			return nil, err
		}
		err = fmt.Errorf("failed to get latest health record: %w", err)
		return nil, err
	}
	return rec, nil
}
