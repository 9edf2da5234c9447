package usecase

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"
	"hospital-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DoctorUsecase is the administrator's view of doctors and their duty flag.
type DoctorUsecase interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	// ListDoctors returns every live doctor regardless of duty flag.
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctorStatus(ctx context.Context, adminID, doctorID uuid.UUID, req *dto.UpdateDoctorStatusRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	txManager    repository.TxManager
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		txManager:    txManager,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.txManager.Conn(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.txManager.Conn(ctx), nil)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToListResponse(doctors), nil
}

func (u *doctorUsecase) UpdateDoctorStatus(ctx context.Context, adminID, doctorID uuid.UUID, req *dto.UpdateDoctorStatusRequest) (*dto.DoctorResponse, error) {
	status := entity.DutyStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidDutyStatus
	}

	var doctor *entity.Doctor
	err := u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		doctor, err = u.doctorRepo.FindByID(tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
			return err
		}
		if doctor == nil || doctor.IsDeleted() {
			return ErrDoctorNotFound
		}

		affected, err := u.doctorRepo.UpdateStatus(tx, doctorID, status)
		if err != nil {
			u.log.Warnf("Failed to update status of doctor %s: %+v", doctorID, err)
			return err
		}
		if affected == 0 {
			return ErrDoctorNotFound
		}

		oldValue := map[string]interface{}{"status": doctor.Status}
		doctor.Status = status
		newValue := map[string]interface{}{"status": status}

		return u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorStatusUpdate, "doctor", doctorID.String(), oldValue, newValue)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Doctor duty flag updated: doctor=%s, status=%s, admin=%s", doctorID, status, adminID)
	return converter.DoctorToResponse(doctor), nil
}
