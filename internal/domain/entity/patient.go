package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RealName  string    `gorm:"type:varchar(64);not null" json:"real_name"`
	Phone     string    `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Gender    string    `gorm:"type:char(1)" json:"gender,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

