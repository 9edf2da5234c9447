package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type ConsultationItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity"`
}

type CompleteConsultationRequest struct {
	DoctorAdvice string                    `json:"doctor_advice" validate:"max=2000"`
	Items        []ConsultationItemRequest `json:"items" validate:"dive"`
}

// Response DTOs

type CompleteConsultationResponse struct {
	VisitID uuid.UUID `json:"visit_id"`
}

type VisitItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ItemName    string          `json:"item_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type VisitResponse struct {
	ID             uuid.UUID           `json:"id"`
	AppointmentID  uuid.UUID           `json:"appointment_id"`
	PatientID      uuid.UUID           `json:"patient_id"`
	DoctorID       uuid.UUID           `json:"doctor_id"`
	DoctorName     string              `json:"doctor_name,omitempty"`
	DepartmentID   uuid.UUID           `json:"department_id"`
	DepartmentName string              `json:"department_name,omitempty"`
	VisitAt        time.Time           `json:"visit_at"`
	DoctorAdvice   string              `json:"doctor_advice"`
	TotalFee       decimal.Decimal     `json:"total_fee"`
	Items          []VisitItemResponse `json:"items,omitempty"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
