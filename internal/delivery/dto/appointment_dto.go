package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID     uuid.UUID `json:"doctor_id" validate:"required"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	VisitAt      time.Time `json:"visit_at" validate:"required"`
	IllnessDesc  string    `json:"illness_desc" validate:"max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	DoctorID       uuid.UUID `json:"doctor_id"`
	DepartmentID   uuid.UUID `json:"department_id"`
	DoctorName     string    `json:"doctor_name"`
	DepartmentName string    `json:"department_name"`
	VisitAt        time.Time `json:"visit_at"`
	Status         string    `json:"status"`
	IllnessDesc    string    `json:"illness_desc,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// DoctorAppointmentResponse is the doctor's view of an appointment with the
// patient's current contact details.
type DoctorAppointmentResponse struct {
	AppointmentResponse
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone,omitempty"`
}

type ReminderResponse struct {
	AppointmentID  uuid.UUID `json:"appointment_id"`
	VisitAt        time.Time `json:"visit_at"`
	HasReminder    bool      `json:"has_reminder"`
	MinutesUntil   int64     `json:"minutes_until"`
	DoctorName     string    `json:"doctor_name"`
	DepartmentName string    `json:"department_name"`
}
