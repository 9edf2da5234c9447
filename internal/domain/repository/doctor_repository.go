package repository

import (
	"hospital-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	// FindByID includes soft-deleted doctors; callers check IsDeleted.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.DutyStatus) (int64, error)
	// FindAll lists live doctors with their departments; a nil status matches any.
	FindAll(db *gorm.DB, status *entity.DutyStatus) ([]entity.Doctor, error)
	FindByDepartmentID(db *gorm.DB, departmentID uuid.UUID, status *entity.DutyStatus) ([]entity.Doctor, error)
}

type DepartmentRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error)
	// FindAll returns enabled departments only.
	FindAll(db *gorm.DB) ([]entity.Department, error)
}

type PatientRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
}
