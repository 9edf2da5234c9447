package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor carries the admin-controlled duty flag. Rows are soft-deleted.
type Doctor struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(64);not null" json:"name"`
	Status    DutyStatus     `gorm:"type:varchar(20);not null;default:'ON_DUTY'" json:"status"`
	AvatarURL string         `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	Schedules   []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	Departments []Department     `gorm:"many2many:doctor_departments" json:"departments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsDeleted checks if the doctor has been soft-deleted
func (d *Doctor) IsDeleted() bool {
	return d.DeletedAt.Valid
}
