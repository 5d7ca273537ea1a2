package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

const existsQuery = `
	SELECT EXISTS (
		SELECT 1 FROM booked_appointments
		WHERE username = $1 AND hospital = $2 AND department = $3 AND doctor = $4
		AND appointment_date = $5 AND appointment_time = $6
	)
`

const insertQuery = `
	INSERT INTO booked_appointments (
		username, hospital, department, doctor,
		appointment_date, appointment_time, booking_time
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING appointment_id
`

func (r *appointmentRepository) Exists(ctx context.Context, username string, key model.AppointmentKey) (exists bool, err error) {
	start := time.Now()
	defer func() { r.track("appointment_exists", start, err) }()

	if err = r.db.GetContext(ctx, &exists, existsQuery,
		username,
		key.Hospital,
		key.Department,
		key.Doctor,
		key.AppointmentDate,
		key.AppointmentTime,
	); err != nil {
		err = fmt.Errorf("failed to check appointment existence: %w", err)
		return false, err
	}
	return exists, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appt *model.Appointment) (err error) {
	start := time.Now()
	defer func() { r.track("appointment_create", start, err) }()

	if err = r.db.GetContext(ctx, &appt.AppointmentID, insertQuery,
		appt.Username,
		appt.Hospital,
		appt.Department,
		appt.Doctor,
		appt.AppointmentDate,
		appt.AppointmentTime,
		appt.BookingTime,
	); err != nil {
		if err = translateError(err); errors.Is(err, repository.ErrDuplicate) {
			return err
		}
		err = fmt.Errorf("failed to create appointment: %w", err)
		return err
	}
	return nil
}

// CreateIfAbsent performs the existence check and the insert inside a
// single transaction so two concurrent bookings of the same tuple
// cannot both pass the check. The unique six-tuple index backstops it.
func (r *appointmentRepository) CreateIfAbsent(ctx context.Context, appt *model.Appointment) (err error) {
	start := time.Now()
	defer func() { r.track("appointment_create_if_absent", start, err) }()

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, existsQuery,
			appt.Username,
			appt.Hospital,
			appt.Department,
			appt.Doctor,
			appt.AppointmentDate,
			appt.AppointmentTime,
		); err != nil {
			return fmt.Errorf("failed to check appointment existence: %w", err)
		}
		if exists {
			return repository.ErrDuplicate
		}

		if err := tx.GetContext(ctx, &appt.AppointmentID, insertQuery,
			appt.Username,
			appt.Hospital,
			appt.Department,
			appt.Doctor,
			appt.AppointmentDate,
			appt.AppointmentTime,
			appt.BookingTime,
		); err != nil {
			if err = translateError(err); errors.Is(err, repository.ErrDuplicate) {
				return err
			}
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil
	})
	return err
}

func (r *appointmentRepository) ListByUser(ctx context.Context, username string) (appts []*model.Appointment, err error) {
	start := time.Now()
	defer func() { r.track("appointment_list", start, err) }()

	query := `
		SELECT appointment_id, username, hospital, department, doctor,
		       appointment_date, appointment_time, booking_time
		FROM booked_appointments
		WHERE username = $1
		ORDER BY appointment_date DESC, appointment_time DESC
	`

	if err = r.db.SelectContext(ctx, &appts, query, username); err != nil {
		err = fmt.Errorf("failed to list appointments: %w", err)
		return nil, err
	}
	return appts, nil
}
