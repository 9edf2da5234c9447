package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a decimal(10,2) money column holds.
var MaxAmount = decimal.New(9999999999, -2)

// MaxLineQuantity caps a single visit line.
const MaxLineQuantity = 9999

// Visit is the billed record of a completed consultation, one per appointment.
type Visit struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_visits_appointment_id" json:"appointment_id"`
	PatientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DepartmentID   uuid.UUID       `gorm:"type:uuid;not null" json:"department_id"`
	DoctorName     string          `gorm:"type:varchar(64)" json:"doctor_name"`
	DepartmentName string          `gorm:"type:varchar(64)" json:"department_name"`
	VisitAt        time.Time       `gorm:"not null" json:"visit_at"`
	DoctorAdvice   string          `gorm:"type:text" json:"doctor_advice"`
	TotalFee       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_fee"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Items []VisitItem `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Visit) TableName() string {
	return "visits"
}

// VisitItem is a line on a visit. ItemName and UnitPrice are copies of the
// catalog entry at completion time.
type VisitItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VisitID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"visit_id"`
	ItemID      uuid.UUID       `gorm:"type:uuid;not null" json:"item_id"`
	ItemName    string          `gorm:"type:varchar(100);not null" json:"item_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
}

func (VisitItem) TableName() string {
	return "visit_items"
}

// NewVisit starts an empty visit for the appointment with a zero fee. The
// doctor and department names are copied so later renames leave the visit as billed.
func NewVisit(appointment *Appointment, doctor *Doctor, department *Department, advice string, visitAt time.Time) *Visit {
	return &Visit{
		ID:             uuid.New(),
		AppointmentID:  appointment.ID,
		PatientID:      appointment.PatientID,
		DoctorID:       appointment.DoctorID,
		DepartmentID:   appointment.DepartmentID,
		DoctorName:     doctor.Name,
		DepartmentName: department.Name,
		VisitAt:        visitAt,
		DoctorAdvice:   advice,
		TotalFee:       decimal.Zero,
	}
}

// AddLineItem snapshots the item's current name and price, appends the line
// and adds its total to TotalFee. quantity must be positive.
func (v *Visit) AddLineItem(item *Item, quantity int) VisitItem {
	line := VisitItem{
		VisitID:     v.ID,
		ItemID:      item.ID,
		ItemName:    item.Name,
		Quantity:    quantity,
		UnitPrice:   item.Price,
		TotalAmount: item.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	v.Items = append(v.Items, line)
	v.TotalFee = v.TotalFee.Add(line.TotalAmount)

	return line
}

// ExceedsAmountLimit reports whether the fee or any line total no longer fits
// the money columns.
func (v *Visit) ExceedsAmountLimit() bool {
	if v.TotalFee.GreaterThan(MaxAmount) {
		return true
	}
	for _, line := range v.Items {
		if line.TotalAmount.GreaterThan(MaxAmount) {
			return true
		}
	}
	return false
}
