package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusVisited   AppointmentStatus = "VISITED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is a patient's booking with a doctor. DoctorName and
// DepartmentName are copied at booking time and never refreshed.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DepartmentID   uuid.UUID         `gorm:"type:uuid;not null" json:"department_id"`
	DoctorName     string            `gorm:"type:varchar(64)" json:"doctor_name"`
	DepartmentName string            `gorm:"type:varchar(64)" json:"department_name"`
	VisitAt        time.Time         `gorm:"not null;index" json:"visit_at"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	IllnessDesc    string            `gorm:"type:varchar(500)" json:"illness_desc,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if appointment is still awaiting consultation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsVisited checks if the consultation has been completed
func (a *Appointment) IsVisited() bool {
	return a.Status == AppointmentStatusVisited
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of the current status.
// Only PENDING has successors.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if !a.IsPending() {
		return false
	}
	return next == AppointmentStatusVisited || next == AppointmentStatusCancelled
}
