package health

import (
	"context"
	"errors"
	"time"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
	apperrors "github.com/medqueue/hospital-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type Service struct {
	vitals  repository.HealthRepository
	history repository.HealthHistoryRepository
}

func NewService(vitals repository.HealthRepository, history repository.HealthHistoryRepository) *Service {
	return &Service{vitals: vitals, history: history}
}

// SaveVitals upserts the day's snapshot. Saving twice for the same
// date leaves exactly one record carrying the second save's values.
func (s *Service) SaveVitals(ctx context.Context, username string, req *model.SaveVitalsRequest) (*model.HealthRecord, error) {
	recordDate, err := normalizeDate(req.RecordDate)
	if err != nil {
		return nil, apperrors.BadRequest("record_date must be YYYY-MM-DD", err)
	}

	rec := &model.HealthRecord{
		Username:   username,
		RecordDate: recordDate,
		Weight:     req.Weight,
		Height:     req.Height,
		BP:         req.BP,
		Symptoms:   req.Symptoms,
		PreMeds:    req.PreMeds,
	}
	if err := s.vitals.Upsert(ctx, rec); err != nil {
		return nil, apperrors.Internal(err)
	}
	return rec, nil
}

// LatestVitals returns the most recent snapshot by record date.
func (s *Service) LatestVitals(ctx context.Context, username string) (*model.HealthRecord, error) {
	rec, err := s.vitals.GetLatest(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("health record", err)
		}
		return nil, apperrors.Internal(err)
	}
	return rec, nil
}

// SaveHistory upserts the day's entry in the independent history
// ledger.
func (s *Service) SaveHistory(ctx context.Context, username string, req *model.SaveHistoryRequest) (*model.HealthHistoryRecord, error) {
	recordDate, err := normalizeDate(req.RecordDate)
	if err != nil {
		return nil, apperrors.BadRequest("record_date must be YYYY-MM-DD", err)
	}

	rec := &model.HealthHistoryRecord{
		Username:   username,
		RecordDate: recordDate,
		Weight:     req.Weight,
		Height:     req.Height,
		BP:         req.BP,
		Sugar:      req.Sugar,
	}
	if err := s.history.Upsert(ctx, rec); err != nil {
		return nil, apperrors.Internal(err)
	}
	return rec, nil
}

// History lists all ledger entries, newest first.
func (s *Service) History(ctx context.Context, username string) ([]*model.HealthHistoryRecord, error) {
	recs, err := s.history.List(ctx, username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return recs, nil
}

// normalizeDate reduces the input to a calendar date, defaulting to
// today when empty.
func normalizeDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, value)
}
