package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberShop-BookingService/pkg/ptr"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

func completeDraft() BookingDraft {
	return BookingDraft{
		Service:  &Service{ID: "s1", Name: "Corte", Price: 50, DurationMinutes: 30},
		Provider: &Provider{ID: "p1", Name: "João"},
		Date:     ptr.Ptr(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		Time:     ptr.Ptr(types.TimeString("14:30")),
		Customer: CustomerData{Name: "Ana Silva", Phone: "(11) 98765-4321"},
	}
}

func TestStepErrors(t *testing.T) {
	tests := []struct {
		name   string
		step   Step
		mutate func(d *BookingDraft)
		fields []string
	}{
		{"service chosen", StepService, func(d *BookingDraft) {}, nil},
		{"service missing", StepService, func(d *BookingDraft) { d.Service = nil }, []string{FieldService}},
		{"barber chosen", StepProvider, func(d *BookingDraft) {}, nil},
		{"barber missing", StepProvider, func(d *BookingDraft) { d.Provider = nil }, []string{FieldBarber}},
		{"date and time chosen", StepDateTime, func(d *BookingDraft) {}, nil},
		{"date missing", StepDateTime, func(d *BookingDraft) { d.Date = nil }, []string{FieldDate}},
		{"time missing", StepDateTime, func(d *BookingDraft) { d.Time = nil }, []string{FieldTime}},
		{"both missing", StepDateTime, func(d *BookingDraft) { d.Date, d.Time = nil, nil }, []string{FieldDate, FieldTime}},
		{"customer ok", StepCustomer, func(d *BookingDraft) {}, nil},
		{"customer ok with email", StepCustomer, func(d *BookingDraft) { d.Customer.Email = "ana@mail.com" }, nil},
		{"short name", StepCustomer, func(d *BookingDraft) { d.Customer.Name = "  Al  " }, []string{FieldName}},
		{"short phone", StepCustomer, func(d *BookingDraft) { d.Customer.Phone = "119123" }, []string{FieldPhone}},
		{"bad email", StepCustomer, func(d *BookingDraft) { d.Customer.Email = "ana@mail" }, []string{FieldEmail}},
		{"everything wrong", StepCustomer, func(d *BookingDraft) {
			d.Customer = CustomerData{Name: "", Phone: "", Email: "x"}
		}, []string{FieldName, FieldPhone, FieldEmail}},
		{"summary has no predicate", StepSummary, func(d *BookingDraft) { *d = BookingDraft{} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(&d)

			var fields []string
			for _, fe := range d.StepErrors(tt.step) {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestDraftSessionNextBlockedIffPredicateFails(t *testing.T) {
	s := NewDraftSession("d1", time.Now())
	require.Equal(t, StepService, s.Step)

	errs, ok := s.Next()
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldService, errs[0].Field)
	assert.Equal(t, StepService, s.Step)
	assert.Equal(t, errs, s.FieldErrors)
	assert.Nil(t, s.Draft.Service, "failed validation must not touch the draft")

	full := completeDraft()
	s.Draft.Service = full.Service
	s.ClearFieldErrors(FieldService)
	assert.Empty(t, s.FieldErrors)

	_, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, StepProvider, s.Step)

	s.Draft = full
	for _, want := range []Step{StepDateTime, StepCustomer, StepSummary} {
		_, ok = s.Next()
		require.True(t, ok)
		assert.Equal(t, want, s.Step)
	}

	_, ok = s.Next()
	assert.False(t, ok, "summary is terminal")
	assert.Equal(t, StepSummary, s.Step)
}

func TestDraftSessionBackKeepsData(t *testing.T) {
	s := NewDraftSession("d1", time.Now())
	s.Draft = completeDraft()
	s.Step = StepSummary

	for _, want := range []Step{StepCustomer, StepDateTime, StepProvider, StepService} {
		require.True(t, s.Back())
		assert.Equal(t, want, s.Step)
	}
	assert.False(t, s.Back())
	assert.Equal(t, completeDraft(), s.Draft)
}

func TestClearFieldErrorsKeepsOtherFields(t *testing.T) {
	s := &DraftSession{FieldErrors: []FieldError{
		{Field: FieldName, Message: "n"},
		{Field: FieldPhone, Message: "p"},
	}}

	s.ClearFieldErrors(FieldPhone)
	assert.Equal(t, []FieldError{{Field: FieldName, Message: "n"}}, s.FieldErrors)

	s.ClearFieldErrors(FieldName)
	assert.Nil(t, s.FieldErrors)
}

func TestIsComplete(t *testing.T) {
	d := completeDraft()
	assert.True(t, d.IsComplete())

	d.Provider = nil
	assert.False(t, d.IsComplete())
	assert.Equal(t, FieldBarber, d.Validate()[0].Field)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "barber", StepProvider.String())
	assert.Equal(t, "unknown", Step(42).String())
	assert.True(t, StepSummary.IsTerminal())
}
