package repository

import (
	"context"
	"errors"

	"github.com/medqueue/hospital-api/internal/model"
)

// Sentinel errors surfaced by every repository. Callers distinguish
// an absent row from a store failure by these identities; a valid
// empty list is an empty slice, never an error.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository persists user accounts keyed by username.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// HealthRepository persists the per-day vitals/symptoms snapshots.
type HealthRepository interface {
	Upsert(ctx context.Context, rec *model.HealthRecord) error
	GetLatest(ctx context.Context, username string) (*model.HealthRecord, error)
}

// HealthHistoryRepository persists the secondary vitals ledger.
type HealthHistoryRepository interface {
	Upsert(ctx context.Context, rec *model.HealthHistoryRecord) error
	List(ctx context.Context, username string) ([]*model.HealthHistoryRecord, error)
}

// AppointmentRepository persists append-only booking records.
type AppointmentRepository interface {
	Exists(ctx context.Context, username string, key model.AppointmentKey) (bool, error)
	Create(ctx context.Context, appt *model.Appointment) error
	// CreateIfAbsent runs the existence check and the insert in a
	// single transaction and returns ErrDuplicate when the six-tuple
	// is already booked.
	CreateIfAbsent(ctx context.Context, appt *model.Appointment) error
	ListByUser(ctx context.Context, username string) ([]*model.Appointment, error)
}
