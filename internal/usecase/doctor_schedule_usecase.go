package usecase

import (
	"context"
	"time"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"
	"hospital-appointment-service/internal/infrastructure/metrics"
	"hospital-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DutyResolver answers whether a doctor can be booked at an instant.
type DutyResolver interface {
	ResolveStatus(ctx context.Context, doctorID uuid.UUID, at time.Time) (entity.DutyStatus, error)
}

type DoctorScheduleUsecase interface {
	DutyResolver
	CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	UpdateScheduleStatus(ctx context.Context, scheduleID, doctorID uuid.UUID, req *dto.UpdateScheduleStatusRequest) (*dto.ScheduleResponse, error)
	GetMySchedules(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	GetDoctorSchedules(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
}

type doctorScheduleUsecase struct {
	txManager     repository.TxManager
	log           *logrus.Logger
	scheduleRepo  repository.DoctorScheduleRepository
	doctorRepo    repository.DoctorRepository
	scheduleCache service.ScheduleCache
	auditService  service.AuditService
	metrics       *metrics.Collector
}

func NewDoctorScheduleUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorRepository,
	scheduleCache service.ScheduleCache,
	auditService service.AuditService,
	metrics *metrics.Collector,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		txManager:     txManager,
		log:           log,
		scheduleRepo:  scheduleRepo,
		doctorRepo:    doctorRepo,
		scheduleCache: scheduleCache,
		auditService:  auditService,
		metrics:       metrics,
	}
}

// ResolveStatus loads the doctor's flag and windows and applies entity.ResolveDutyStatus.
// Soft-deleted doctors still resolve; booking rejects them before asking.
func (u *doctorScheduleUsecase) ResolveStatus(ctx context.Context, doctorID uuid.UUID, at time.Time) (entity.DutyStatus, error) {
	doctor, err := u.doctorRepo.FindByID(u.txManager.Conn(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return "", err
	}
	if doctor == nil {
		return "", ErrDoctorNotFound
	}

	// The flag alone decides OFF_DUTY, no need to read windows.
	if doctor.Status == entity.DutyStatusOffDuty {
		return entity.DutyStatusOffDuty, nil
	}

	windows, err := u.loadWindows(ctx, doctorID)
	if err != nil {
		return "", err
	}

	return entity.ResolveDutyStatus(doctor.Status, windows, at), nil
}

func (u *doctorScheduleUsecase) loadWindows(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	windows, generation, found, cacheErr := u.scheduleCache.Get(ctx, doctorID)
	if cacheErr != nil {
		u.log.Warnf("Failed to read schedule cache for doctor %s, falling back to database: %+v", doctorID, cacheErr)
	}
	if found {
		u.metrics.RecordScheduleCache(true)
		return windows, nil
	}
	u.metrics.RecordScheduleCache(false)

	windows, err := u.scheduleRepo.FindByDoctorID(u.txManager.Conn(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	// Without a generation there is nothing safe to fill.
	if cacheErr != nil {
		return windows, nil
	}

	if err := u.scheduleCache.Set(ctx, doctorID, generation, windows); err != nil {
		u.log.Warnf("Failed to fill schedule cache for doctor %s: %+v", doctorID, err)
	}

	return windows, nil
}

func (u *doctorScheduleUsecase) invalidate(ctx context.Context, doctorID uuid.UUID) {
	if err := u.scheduleCache.Invalidate(ctx, doctorID); err != nil {
		u.log.Warnf("Failed to invalidate schedule cache for doctor %s: %+v", doctorID, err)
	}
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	status := entity.DutyStatusOnDuty
	if req.Status != "" {
		status = entity.DutyStatus(req.Status)
	}
	if !status.IsValid() {
		return nil, ErrInvalidDutyStatus
	}

	if req.EndAt.Before(req.StartAt) {
		return nil, ErrScheduleEndBeforeStart
	}

	schedule := &entity.DoctorSchedule{
		ID:       uuid.New(),
		DoctorID: doctorID,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Status:   status,
	}

	err := u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		doctor, err := u.doctorRepo.FindByID(tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
			return err
		}
		if doctor == nil || doctor.IsDeleted() {
			return ErrDoctorNotFound
		}

		if err := u.scheduleRepo.Create(tx, schedule); err != nil {
			u.log.Warnf("Failed to create schedule: %+v", err)
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionScheduleCreate, "doctor_schedule", schedule.ID.String(), converter.ScheduleToResponse(schedule))
	})
	if err != nil {
		return nil, err
	}

	u.invalidate(ctx, doctorID)

	u.log.Infof("Schedule created: id=%s, doctor=%s, status=%s", schedule.ID, doctorID, status)
	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) UpdateScheduleStatus(ctx context.Context, scheduleID, doctorID uuid.UUID, req *dto.UpdateScheduleStatusRequest) (*dto.ScheduleResponse, error) {
	status := entity.DutyStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidDutyStatus
	}

	var schedule *entity.DoctorSchedule
	err := u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		schedule, err = u.scheduleRepo.FindByID(tx, scheduleID)
		if err != nil {
			u.log.Warnf("Failed to find schedule %s: %+v", scheduleID, err)
			return err
		}
		if schedule == nil {
			return ErrScheduleNotFound
		}

		if schedule.DoctorID != doctorID {
			return ErrScheduleNotOwned
		}

		oldValue := converter.ScheduleToResponse(schedule)
		schedule.Status = status

		if err := u.scheduleRepo.Update(tx, schedule); err != nil {
			u.log.Warnf("Failed to update schedule %s: %+v", scheduleID, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionScheduleUpdate, "doctor_schedule", scheduleID.String(), oldValue, converter.ScheduleToResponse(schedule))
	})
	if err != nil {
		return nil, err
	}

	u.invalidate(ctx, doctorID)

	u.log.Infof("Schedule updated: id=%s, status=%s", scheduleID, status)
	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetMySchedules(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(u.txManager.Conn(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

// GetDoctorSchedules is the admin view; it requires the doctor to exist.
func (u *doctorScheduleUsecase) GetDoctorSchedules(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.txManager.Conn(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return u.GetMySchedules(ctx, doctorID)
}
