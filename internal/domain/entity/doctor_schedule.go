package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule is a doctor-defined time window overriding availability
// while the admin duty flag is ON_DUTY.
type DoctorSchedule struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartAt   time.Time  `gorm:"not null" json:"start_at"`
	EndAt     time.Time  `gorm:"not null" json:"end_at"`
	Status    DutyStatus `gorm:"type:varchar(20);not null;default:'ON_DUTY'" json:"status"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// Covers reports whether at falls inside the window, both ends inclusive.
func (s *DoctorSchedule) Covers(at time.Time) bool {
	return !at.Before(s.StartAt) && !at.After(s.EndAt)
}
