package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medqueue/hospital-api/internal/email"
	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
	"github.com/medqueue/hospital-api/internal/service/directory"
	apperrors "github.com/medqueue/hospital-api/pkg/errors"
	"github.com/medqueue/hospital-api/pkg/logger"
	"github.com/medqueue/hospital-api/pkg/metrics"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	shortTimeLayout = "15:04"
	clockLayout     = "03:04 PM"
)

type Service struct {
	repo     repository.AppointmentRepository
	users    repository.UserRepository
	dir      *directory.Service
	emailSvc email.Service
	log      *logger.Logger
	m        *metrics.Metrics
}

func NewService(repo repository.AppointmentRepository, users repository.UserRepository,
	dir *directory.Service, emailSvc email.Service, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		dir:      dir,
		emailSvc: emailSvc,
		log:      log,
		m:        m,
	}
}

// Book validates the tuple against the static directory and inserts
// it unless the identical booking already exists. The existence check
// and the insert share one transaction.
func (s *Service) Book(ctx context.Context, username string, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	apptDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.BadRequest("date must be YYYY-MM-DD", err)
	}

	apptTime, err := normalizeTime(req.Time)
	if err != nil {
		return nil, apperrors.BadRequest("time must be HH:MM or HH:MM:SS", err)
	}

	if !s.dir.HasDoctor(req.Hospital, req.Department, req.Doctor) {
		return nil, apperrors.BadRequest("no such doctor in the selected hospital and department", nil)
	}

	appt := &model.Appointment{
		Username:        username,
		Hospital:        req.Hospital,
		Department:      req.Department,
		Doctor:          req.Doctor,
		AppointmentDate: apptDate,
		AppointmentTime: apptTime,
		BookingTime:     time.Now(),
	}

	if err := s.repo.CreateIfAbsent(ctx, appt); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			if s.m != nil {
				s.m.DuplicateBookings.Inc()
			}
			return nil, apperrors.Conflict("this exact appointment is already saved", err)
		}
		return nil, apperrors.Internal(err)
	}

	if s.m != nil {
		s.m.AppointmentsBooked.Inc()
	}

	s.sendConfirmation(ctx, appt)

	return appt, nil
}

// Exists implements the advisory existence-then-insert protocol for
// callers that want to probe before booking.
func (s *Service) Exists(ctx context.Context, username string, req *model.BookAppointmentRequest) (bool, error) {
	apptDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return false, apperrors.BadRequest("date must be YYYY-MM-DD", err)
	}
	apptTime, err := normalizeTime(req.Time)
	if err != nil {
		return false, apperrors.BadRequest("time must be HH:MM or HH:MM:SS", err)
	}

	exists, err := s.repo.Exists(ctx, username, model.AppointmentKey{
		Hospital:        req.Hospital,
		Department:      req.Department,
		Doctor:          req.Doctor,
		AppointmentDate: apptDate,
		AppointmentTime: apptTime,
	})
	if err != nil {
		return false, apperrors.Internal(err)
	}
	return exists, nil
}

// List returns the user's bookings ordered by date then time, both
// descending, with values formatted for presentation.
func (s *Service) List(ctx context.Context, username string) ([]*model.AppointmentView, error) {
	appts, err := s.repo.ListByUser(ctx, username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	views := make([]*model.AppointmentView, 0, len(appts))
	for _, appt := range appts {
		views = append(views, toView(appt))
	}
	return views, nil
}

// sendConfirmation is best-effort: a failed mail never fails the
// booking.
func (s *Service) sendConfirmation(ctx context.Context, appt *model.Appointment) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.users.GetByUsername(ctx, appt.Username)
	if err != nil {
		s.log.Error(err, "failed to load user for booking confirmation", "username", appt.Username)
		return
	}
	if err := s.emailSvc.SendBookingConfirmation(user.Email, toView(appt)); err != nil {
		s.log.Error(err, "failed to send booking confirmation", "username", appt.Username)
	}
}

// toView formats stored values for display: dates as 2006-01-02 and
// times on a 12-hour clock. Values at rest stay 24-hour.
func toView(appt *model.Appointment) *model.AppointmentView {
	display := appt.AppointmentTime
	if t, err := time.Parse(timeLayout, appt.AppointmentTime); err == nil {
		display = t.Format(clockLayout)
	}
	return &model.AppointmentView{
		AppointmentID:   appt.AppointmentID,
		Hospital:        appt.Hospital,
		Department:      appt.Department,
		Doctor:          appt.Doctor,
		AppointmentDate: appt.AppointmentDate.Format(dateLayout),
		AppointmentTime: display,
		BookingTime:     appt.BookingTime.Format("2006-01-02 15:04:05"),
	}
}

// normalizeTime accepts HH:MM or HH:MM:SS and stores HH:MM:SS.
func normalizeTime(value string) (string, error) {
	if t, err := time.Parse(timeLayout, value); err == nil {
		return t.Format(timeLayout), nil
	}
	if t, err := time.Parse(shortTimeLayout, value); err == nil {
		return t.Format(timeLayout), nil
	}
	return "", fmt.Errorf("unrecognized time value %q", value)
}
