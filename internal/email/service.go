package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/medqueue/hospital-api/internal/config"
	"github.com/medqueue/hospital-api/internal/model"
)

// Service sends transactional mail. Callers treat every send as
// best-effort.
type Service interface {
	SendBookingConfirmation(to string, appt *model.AppointmentView) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendBookingConfirmation(to string, appt *model.AppointmentView) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your appointment is booked")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your appointment with %s (%s, %s) on %s at %s is confirmed.\n",
		appt.Doctor, appt.Department, appt.Hospital, appt.AppointmentDate, appt.AppointmentTime,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	return nil
}
