package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisit_AddLineItem(t *testing.T) {
	appointment := &Appointment{
		ID:           uuid.New(),
		PatientID:    uuid.New(),
		DoctorID:     uuid.New(),
		DepartmentID: uuid.New(),
		Status:       AppointmentStatusPending,
	}
	doctor := &Doctor{ID: appointment.DoctorID, Name: "Dr. Sari"}
	department := &Department{ID: appointment.DepartmentID, Name: "Internal Medicine"}
	visit := NewVisit(appointment, doctor, department, "drink water", time.Now())
	require.True(t, visit.TotalFee.IsZero())
	assert.Equal(t, "Dr. Sari", visit.DoctorName)
	assert.Equal(t, "Internal Medicine", visit.DepartmentName)

	drug := &Item{ID: uuid.New(), Name: "Paracetamol", Price: decimal.RequireFromString("10.50")}
	service := &Item{ID: uuid.New(), Name: "Consultation", Price: decimal.RequireFromString("4.50")}

	line := visit.AddLineItem(drug, 2)
	visit.AddLineItem(service, 1)

	assert.Equal(t, "21.00", line.TotalAmount.StringFixed(2))
	assert.Equal(t, visit.ID, line.VisitID)
	assert.Equal(t, "25.50", visit.TotalFee.StringFixed(2))
	assert.Len(t, visit.Items, 2)
	assert.Equal(t, appointment.ID, visit.AppointmentID)
	assert.Equal(t, appointment.DepartmentID, visit.DepartmentID)
}

func TestVisit_DecimalTotalsAreExact(t *testing.T) {
	visit := NewVisit(&Appointment{ID: uuid.New()}, &Doctor{}, &Department{}, "", time.Now())
	item := &Item{ID: uuid.New(), Name: "Vitamin C", Price: decimal.RequireFromString("0.10")}

	visit.AddLineItem(item, 3)

	assert.True(t, visit.TotalFee.Equal(decimal.RequireFromString("0.30")))
}

func TestVisit_ExceedsAmountLimit(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     bool
	}{
		{"well inside", "150000.00", 3, false},
		{"exactly the column maximum", "99999999.99", 1, false},
		{"line total overflows", "50000000.00", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visit := NewVisit(&Appointment{ID: uuid.New()}, &Doctor{}, &Department{}, "", time.Now())
			visit.AddLineItem(&Item{ID: uuid.New(), Price: decimal.RequireFromString(tt.price)}, tt.quantity)

			assert.Equal(t, tt.want, visit.ExceedsAmountLimit())
		})
	}

	t.Run("sum of fitting lines overflows the fee", func(t *testing.T) {
		visit := NewVisit(&Appointment{ID: uuid.New()}, &Doctor{}, &Department{}, "", time.Now())
		item := &Item{ID: uuid.New(), Price: decimal.RequireFromString("60000000.00")}
		visit.AddLineItem(item, 1)
		visit.AddLineItem(item, 1)

		assert.True(t, visit.ExceedsAmountLimit())
	})
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	pending := &Appointment{Status: AppointmentStatusPending}
	assert.True(t, pending.CanTransitionTo(AppointmentStatusVisited))
	assert.True(t, pending.CanTransitionTo(AppointmentStatusCancelled))
	assert.False(t, pending.CanTransitionTo(AppointmentStatusPending))

	for _, terminal := range []AppointmentStatus{AppointmentStatusVisited, AppointmentStatusCancelled} {
		a := &Appointment{Status: terminal}
		assert.False(t, a.CanTransitionTo(AppointmentStatusVisited), terminal)
		assert.False(t, a.CanTransitionTo(AppointmentStatusCancelled), terminal)
	}
}
