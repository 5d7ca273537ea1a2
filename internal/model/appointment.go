package model

import "time"

// Appointment is an append-only booking record. The natural key is
// the six-tuple (username, hospital, department, doctor, date, time);
// there is no update or delete operation.
type Appointment struct {
	AppointmentID   int64     `json:"appointment_id" db:"appointment_id"`
	Username        string    `json:"username" db:"username"`
	Hospital        string    `json:"hospital" db:"hospital"`
	Department      string    `json:"department" db:"department"`
	Doctor          string    `json:"doctor" db:"doctor"`
	AppointmentDate time.Time `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
	BookingTime     time.Time `json:"booking_time" db:"booking_time"`
}

// AppointmentKey identifies a booking without its surrogate ID. Doctor
// is matched by display name; the static directory guarantees names
// are unique within a department.
type AppointmentKey struct {
	Hospital        string
	Department      string
	Doctor          string
	AppointmentDate time.Time
	AppointmentTime string
}

// BookAppointmentRequest represents booking parameters. Date is
// 2006-01-02, Time is a 24-hour HH:MM or HH:MM:SS clock value.
type BookAppointmentRequest struct {
	Hospital   string `json:"hospital" binding:"required"`
	Department string `json:"department" binding:"required"`
	Doctor     string `json:"doctor" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Time       string `json:"time" binding:"required,clock"`
}

// AppointmentView is the presentation shape returned by list calls:
// the date is rendered 2006-01-02 and the time on a 12-hour clock.
type AppointmentView struct {
	AppointmentID   int64  `json:"appointment_id"`
	Hospital        string `json:"hospital"`
	Department      string `json:"department"`
	Doctor          string `json:"doctor"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	BookingTime     string `json:"booking_time"`
}
