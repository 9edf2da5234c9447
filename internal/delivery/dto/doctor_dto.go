package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateDoctorStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ON_DUTY OFF_DUTY"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Status      string               `json:"status"`
	AvatarURL   string               `json:"avatar_url,omitempty"`
	Deleted     bool                 `json:"deleted"`
	Departments []DepartmentResponse `json:"departments,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DutyStatusResponse struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	At       time.Time `json:"at"`
	Status   string    `json:"status"`
}
