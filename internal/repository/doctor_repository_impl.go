package repository

import (
	"errors"

	"hospital-appointment-service/internal/domain/entity"
	domainRepo "hospital-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Unscoped().Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// UpdateStatus only touches live doctors; 0 affected rows means missing or deleted.
func (r *doctorRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.DutyStatus) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) FindAll(db *gorm.DB, status *entity.DutyStatus) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Preload("Departments", "enabled = ?", true)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("name").Find(&doctors).Error
	return doctors, err
}

func (r *doctorRepository) FindByDepartmentID(db *gorm.DB, departmentID uuid.UUID, status *entity.DutyStatus) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Preload("Departments", "enabled = ?", true).
		Joins("JOIN doctor_departments ON doctor_departments.doctor_id = doctors.id").
		Where("doctor_departments.department_id = ?", departmentID)
	if status != nil {
		query = query.Where("doctors.status = ?", *status)
	}
	err := query.Order("doctors.name").Find(&doctors).Error
	return doctors, err
}

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Where("enabled = ?", true).Order("name").Find(&departments).Error
	return departments, err
}

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
