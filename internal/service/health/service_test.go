package health

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
	apperrors "github.com/medqueue/hospital-api/pkg/errors"
)

type vitalsKey struct {
	username string
	date     string
}

// fakeVitalsRepo mirrors the one-row-per-day upsert rule of the real
// table.
type fakeVitalsRepo struct {
	nextID  int64
	records map[vitalsKey]*model.HealthRecord
}

func newFakeVitalsRepo() *fakeVitalsRepo {
	return &fakeVitalsRepo{nextID: 1, records: make(map[vitalsKey]*model.HealthRecord)}
}

func (r *fakeVitalsRepo) Upsert(_ context.Context, rec *model.HealthRecord) error {
	key := vitalsKey{rec.Username, rec.RecordDate.Format("2006-01-02")}
	if existing, ok := r.records[key]; ok {
		rec.HealthID = existing.HealthID
	} else {
		rec.HealthID = r.nextID
		r.nextID++
	}
	stored := *rec
	r.records[key] = &stored
	return nil
}

func (r *fakeVitalsRepo) GetLatest(_ context.Context, username string) (*model.HealthRecord, error) {
	var latest *model.HealthRecord
	for _, rec := range r.records {
		if rec.Username != username {
			continue
		}
		if latest == nil || rec.RecordDate.After(latest.RecordDate) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

type fakeHistoryRepo struct {
	nextID  int64
	records map[vitalsKey]*model.HealthHistoryRecord
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1, records: make(map[vitalsKey]*model.HealthHistoryRecord)}
}

func (r *fakeHistoryRepo) Upsert(_ context.Context, rec *model.HealthHistoryRecord) error {
	key := vitalsKey{rec.Username, rec.RecordDate.Format("2006-01-02")}
	if existing, ok := r.records[key]; ok {
		rec.HistoryID = existing.HistoryID
	} else {
		rec.HistoryID = r.nextID
		r.nextID++
	}
	stored := *rec
	r.records[key] = &stored
	return nil
}

func (r *fakeHistoryRepo) List(_ context.Context, username string) ([]*model.HealthHistoryRecord, error) {
	var recs []*model.HealthHistoryRecord
	for _, rec := range r.records {
		if rec.Username == username {
			copied := *rec
			recs = append(recs, &copied)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].RecordDate.After(recs[j].RecordDate)
	})
	return recs, nil
}

func TestSaveVitalsUpsertsByDay(t *testing.T) {
	vitals := newFakeVitalsRepo()
	svc := NewService(vitals, newFakeHistoryRepo())
	ctx := context.Background()

	first, err := svc.SaveVitals(ctx, "jane_doe", &model.SaveVitalsRequest{
		Weight:     62.5,
		Height:     168,
		BP:         "120/80",
		Symptoms:   "headache",
		RecordDate: "2026-03-01",
	})
	require.NoError(t, err)

	second, err := svc.SaveVitals(ctx, "jane_doe", &model.SaveVitalsRequest{
		Weight:     63.0,
		Height:     168,
		BP:         "118/78",
		Symptoms:   "none",
		RecordDate: "2026-03-01",
	})
	require.NoError(t, err)

	// Same day, same row: the second save overwrote in place.
	assert.Equal(t, first.HealthID, second.HealthID)
	assert.Len(t, vitals.records, 1)

	latest, err := svc.LatestVitals(ctx, "jane_doe")
	require.NoError(t, err)
	assert.InDelta(t, 63.0, latest.Weight, 0.001)
	assert.Equal(t, "118/78", latest.BP)
}

func TestSaveVitalsDefaultsToToday(t *testing.T) {
	vitals := newFakeVitalsRepo()
	svc := NewService(vitals, newFakeHistoryRepo())

	rec, err := svc.SaveVitals(context.Background(), "jane_doe", &model.SaveVitalsRequest{
		Weight: 62.5,
		Height: 168,
		BP:     "120/80",
	})
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Format("2006-01-02"), rec.RecordDate.Format("2006-01-02"))
}

func TestSaveVitalsRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeVitalsRepo(), newFakeHistoryRepo())

	_, err := svc.SaveVitals(context.Background(), "jane_doe", &model.SaveVitalsRequest{
		Weight:     62.5,
		Height:     168,
		BP:         "120/80",
		RecordDate: "01-03-2026",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestLatestVitalsPicksNewestDay(t *testing.T) {
	svc := NewService(newFakeVitalsRepo(), newFakeHistoryRepo())
	ctx := context.Background()

	for _, day := range []string{"2026-03-01", "2026-03-05", "2026-03-03"} {
		_, err := svc.SaveVitals(ctx, "jane_doe", &model.SaveVitalsRequest{
			Weight:     60,
			Height:     168,
			BP:         "120/80",
			RecordDate: day,
		})
		require.NoError(t, err)
	}

	latest, err := svc.LatestVitals(ctx, "jane_doe")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", latest.RecordDate.Format("2006-01-02"))
}

func TestLatestVitalsNoRecords(t *testing.T) {
	svc := NewService(newFakeVitalsRepo(), newFakeHistoryRepo())

	_, err := svc.LatestVitals(context.Background(), "jane_doe")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestHistoryIsIndependentOfVitals(t *testing.T) {
	vitals := newFakeVitalsRepo()
	history := newFakeHistoryRepo()
	svc := NewService(vitals, history)
	ctx := context.Background()

	_, err := svc.SaveHistory(ctx, "jane_doe", &model.SaveHistoryRequest{
		Weight:     62.5,
		Height:     168,
		BP:         "120/80",
		Sugar:      "95",
		RecordDate: "2026-03-01",
	})
	require.NoError(t, err)

	// The ledger write never touches the vitals table.
	assert.Empty(t, vitals.records)

	recs, err := svc.History(ctx, "jane_doe")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "95", recs[0].Sugar)
}

func TestHistoryListsNewestFirst(t *testing.T) {
	svc := NewService(newFakeVitalsRepo(), newFakeHistoryRepo())
	ctx := context.Background()

	for _, day := range []string{"2026-03-01", "2026-03-03", "2026-03-02"} {
		_, err := svc.SaveHistory(ctx, "jane_doe", &model.SaveHistoryRequest{
			Weight:     60,
			Height:     168,
			BP:         "120/80",
			Sugar:      "95",
			RecordDate: day,
		})
		require.NoError(t, err)
	}

	recs, err := svc.History(ctx, "jane_doe")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "2026-03-03", recs[0].RecordDate.Format("2006-01-02"))
	assert.Equal(t, "2026-03-01", recs[2].RecordDate.Format("2006-01-02"))
}
