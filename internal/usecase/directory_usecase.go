package usecase

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DirectoryUsecase is the booking-side view of departments and the doctors
// a patient can pick from. Only enabled departments and live ON_DUTY doctors
// are listed.
type DirectoryUsecase interface {
	ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	ListDepartmentDoctors(ctx context.Context, departmentID uuid.UUID) (*dto.DoctorListResponse, error)
	ListAvailableDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type directoryUsecase struct {
	txManager  repository.TxManager
	log        *logrus.Logger
	deptRepo   repository.DepartmentRepository
	doctorRepo repository.DoctorRepository
}

func NewDirectoryUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	deptRepo repository.DepartmentRepository,
	doctorRepo repository.DoctorRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		txManager:  txManager,
		log:        log,
		deptRepo:   deptRepo,
		doctorRepo: doctorRepo,
	}
}

func (u *directoryUsecase) ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.deptRepo.FindAll(u.txManager.Conn(ctx))
	if err != nil {
		u.log.Warnf("Failed to find departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}

func (u *directoryUsecase) ListDepartmentDoctors(ctx context.Context, departmentID uuid.UUID) (*dto.DoctorListResponse, error) {
	db := u.txManager.Conn(ctx)

	department, err := u.deptRepo.FindByID(db, departmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", departmentID, err)
		return nil, err
	}
	if department == nil || !department.IsEnabled() {
		return nil, ErrDepartmentNotFound
	}

	onDuty := entity.DutyStatusOnDuty
	doctors, err := u.doctorRepo.FindByDepartmentID(db, departmentID, &onDuty)
	if err != nil {
		u.log.Warnf("Failed to find doctors of department %s: %+v", departmentID, err)
		return nil, err
	}

	return converter.DoctorsToListResponse(doctors), nil
}

func (u *directoryUsecase) ListAvailableDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	onDuty := entity.DutyStatusOnDuty
	doctors, err := u.doctorRepo.FindAll(u.txManager.Conn(ctx), &onDuty)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToListResponse(doctors), nil
}
