package domain

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus validates a raw status value
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch s := AppointmentStatus(raw); s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return s, true
	default:
		return "", false
	}
}

// IsTransitionTarget true for statuses staff may set through the lifecycle manager
func (s AppointmentStatus) IsTransitionTarget() bool {
	for _, t := range TransitionTargets {
		if s == t {
			return true
		}
	}
	return false
}

// Appointment persisted reservation
type Appointment struct {
	ID            string
	BarberID      string
	ServiceID     string
	Date          time.Time // calendar day, midnight UTC
	Time          types.TimeString
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Status        AppointmentStatus

	// Joined data for the daily agenda
	ServiceName     string
	ServiceDuration int
	BarberName      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true while staff can still confirm or cancel the appointment
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsActive returns true if the appointment still occupies the barber's time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CalendarDate drops the clock and location, keeping the day the customer picked
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate parses YYYY-MM-DD into a calendar date
func ParseCalendarDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return CalendarDate(d), nil
}
