package repository

import (
	"hospital-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitRepository interface {
	// Create inserts the visit together with its line items.
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Visit, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error)
}
