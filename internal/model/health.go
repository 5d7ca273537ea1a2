package model

import "time"

// HealthRecord is a per-user, per-day vitals and symptoms snapshot.
// At most one row exists per (username, record_date); later saves for
// the same day overwrite in place.
type HealthRecord struct {
	HealthID   int64     `json:"health_id" db:"health_id"`
	Username   string    `json:"username" db:"username"`
	RecordDate time.Time `json:"record_date" db:"record_date"`
	Weight     float64   `json:"weight" db:"weight"`
	Height     float64   `json:"height" db:"height"`
	BP         string    `json:"bp" db:"bp"`
	Symptoms   string    `json:"symptoms" db:"symptoms"`
	PreMeds    string    `json:"pre_meds" db:"pre_meds"`
}

// HealthHistoryRecord is the secondary vitals ledger. It shares the
// upsert-by-day rule with HealthRecord but lives in its own table and
// tracks sugar instead of symptoms.
type HealthHistoryRecord struct {
	HistoryID  int64     `json:"history_id" db:"history_id"`
	Username   string    `json:"username" db:"username"`
	RecordDate time.Time `json:"record_date" db:"record_date"`
	Weight     float64   `json:"weight" db:"weight"`
	Height     float64   `json:"height" db:"height"`
	BP         string    `json:"bp" db:"bp"`
	Sugar      string    `json:"sugar" db:"sugar"`
}

// SaveVitalsRequest represents a health-data entry. RecordDate is
// optional and defaults to today.
type SaveVitalsRequest struct {
	Weight     float64 `json:"weight" binding:"required,gt=0"`
	Height     float64 `json:"height" binding:"required,gt=0"`
	BP         string  `json:"bp" binding:"required"`
	Symptoms   string  `json:"symptoms"`
	PreMeds    string  `json:"pre_meds"`
	RecordDate string  `json:"record_date" binding:"omitempty,datetime=2006-01-02"`
}

// SaveHistoryRequest represents a health-history entry.
type SaveHistoryRequest struct {
	Weight     float64 `json:"weight" binding:"required,gt=0"`
	Height     float64 `json:"height" binding:"required,gt=0"`
	BP         string  `json:"bp" binding:"required"`
	Sugar      string  `json:"sugar" binding:"required"`
	RecordDate string  `json:"record_date" binding:"omitempty,datetime=2006-01-02"`
}
