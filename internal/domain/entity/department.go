package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department is a clinical unit. Disabled departments are hidden from the directory.
type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Enabled     *bool     `gorm:"not null;default:true" json:"enabled"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// DoctorDepartment links a doctor to a department they practise in.
type DoctorDepartment struct {
	DoctorID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"doctor_id"`
	DepartmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"department_id"`
}

func (DoctorDepartment) TableName() string {
	return "doctor_departments"
}
