package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDay(t *testing.T) {
	assert.Equal(t, DailyStats{}, SummarizeDay(nil))
	assert.Equal(t, DailyStats{}, SummarizeDay([]*Appointment{}))

	day := []*Appointment{
		{Status: StatusPending},
		{Status: StatusConfirmed},
		{Status: StatusPending},
		{Status: StatusConfirmed},
		{Status: StatusPending},
	}
	assert.Equal(t, DailyStats{Pending: 3, Confirmed: 2, Total: 5}, SummarizeDay(day))

	day = append(day, &Appointment{Status: StatusCancelled}, &Appointment{Status: StatusCompleted})
	assert.Equal(t, DailyStats{Pending: 3, Confirmed: 2, Total: 7}, SummarizeDay(day))
}

func TestParseAppointmentStatus(t *testing.T) {
	s, ok := ParseAppointmentStatus("confirmed")
	require.True(t, ok)
	assert.True(t, s.IsTransitionTarget())

	s, ok = ParseAppointmentStatus("completed")
	require.True(t, ok)
	assert.False(t, s.IsTransitionTarget())

	_, ok = ParseAppointmentStatus("no_show")
	assert.False(t, ok)
}

func TestRole(t *testing.T) {
	assert.Equal(t, RoleStaff, ParseRole("staff"))
	assert.Equal(t, RoleNone, ParseRole("admin"))

	assert.True(t, RoleStaff.CanManageAppointments())
	assert.True(t, RoleOwner.CanManageAppointments())
	assert.False(t, RoleNone.CanManageAppointments())

	assert.True(t, RoleOwner.CanViewReports())
	assert.False(t, RoleStaff.CanViewReports())
}

func TestCalendarDateKeepsSelectedDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	picked := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	got := CalendarDate(picked)
	assert.Equal(t, "2025-03-10", got.Format(DateFormat))
	assert.Equal(t, time.UTC, got.Location())

	parsed, err := ParseCalendarDate("2025-03-10")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(got))

	_, err = ParseCalendarDate("10/03/2025")
	assert.Error(t, err)
}

func TestAppointmentPredicates(t *testing.T) {
	a := &Appointment{Status: StatusPending}
	assert.True(t, a.IsPending())
	assert.True(t, a.IsActive())

	a.Status = StatusCancelled
	assert.False(t, a.IsPending())
	assert.False(t, a.IsActive())
}
