package usecase

import (
	"context"
	"time"

	"hospital-appointment-service/config"
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

type PatientAppointmentUsecase interface {
	CreateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID, patientID uuid.UUID) error
	GetReminder(ctx context.Context, appointmentID, patientID uuid.UUID) (*dto.ReminderResponse, error)
}

type patientAppointmentUsecase struct {
	txManager       repository.TxManager
	log             *logrus.Logger
	cfg             config.BookingConfig
	clock           Clock
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
	dutyResolver    DutyResolver
	auditService    service.AuditService
	metrics         *metrics.Collector
}

func NewPatientAppointmentUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	cfg config.BookingConfig,
	clock Clock,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	dutyResolver DutyResolver,
	auditService service.AuditService,
	metrics *metrics.Collector,
) PatientAppointmentUsecase {
	return &patientAppointmentUsecase{
		txManager:       txManager,
		log:             log,
		cfg:             cfg,
		clock:           clock,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
		dutyResolver:    dutyResolver,
		auditService:    auditService,
		metrics:         metrics,
	}
}

// bookingWindow returns the earliest and latest bookable instants: midnight
// MinDaysAhead days from today through 23:59:59 MaxDaysAhead days from today,
// in the hospital time zone.
func (u *patientAppointmentUsecase) bookingWindow() (time.Time, time.Time) {
	now := u.clock().In(u.cfg.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, u.cfg.Location)

	earliest := today.AddDate(0, 0, u.cfg.MinDaysAhead)
	latest := today.AddDate(0, 0, u.cfg.MaxDaysAhead+1).Add(-time.Second)

	return earliest, latest
}

// CreateAppointment books a PENDING appointment.
//
// Checks, in order:
// 1. visit time inside the booking window
// 2. doctor exists and is not deleted
// 3. department exists
// 4. doctor is ON_DUTY at the visit time
func (u *patientAppointmentUsecase) CreateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	earliest, latest := u.bookingWindow()
	if req.VisitAt.Before(earliest) || req.VisitAt.After(latest) {
		u.metrics.RecordAppointmentEvent(metrics.EventAppointmentRejected)
		return nil, ErrOutsideBookingWindow
	}

	conn := u.txManager.Conn(ctx)

	doctor, err := u.doctorRepo.FindByID(conn, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || doctor.IsDeleted() {
		return nil, ErrDoctorNotFound
	}

	department, err := u.departmentRepo.FindByID(conn, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	status, err := u.dutyResolver.ResolveStatus(ctx, doctor.ID, req.VisitAt)
	if err != nil {
		return nil, err
	}
	if status != entity.DutyStatusOnDuty {
		u.metrics.RecordAppointmentEvent(metrics.EventAppointmentRejected)
		return nil, ErrDoctorUnavailable
	}

	appointment := &entity.Appointment{
		ID:             uuid.New(),
		PatientID:      patientID,
		DoctorID:       doctor.ID,
		DepartmentID:   department.ID,
		DoctorName:     doctor.Name,
		DepartmentName: department.Name,
		VisitAt:        req.VisitAt,
		Status:         entity.AppointmentStatusPending,
		IllnessDesc:    req.IllnessDesc,
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			u.log.Warnf("Failed to create appointment: %+v", err)
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment))
	})
	if err != nil {
		return nil, err
	}

	u.metrics.RecordAppointmentEvent(metrics.EventAppointmentCreated)
	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s, visit_at=%s", appointment.ID, patientID, doctor.ID, req.VisitAt.Format(time.RFC3339))

	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns the patient's appointments, newest first
func (u *patientAppointmentUsecase) GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.txManager.Conn(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment moves a PENDING appointment owned by the patient to CANCELLED.
func (u *patientAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID, patientID uuid.UUID) error {
	err := u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		if appointment.PatientID != patientID {
			return ErrAppointmentNotOwned
		}

		if !appointment.CanTransitionTo(entity.AppointmentStatusCancelled) {
			return ErrOnlyPendingAppointmentsCancellable
		}

		// Conditional update: a concurrent completion or cancel leaves 0 rows.
		affected, err := u.appointmentRepo.TransitionStatus(tx, appointmentID, entity.AppointmentStatusPending, entity.AppointmentStatusCancelled)
		if err != nil {
			u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
			return err
		}
		if affected == 0 {
			return ErrOnlyPendingAppointmentsCancellable
		}

		oldValue := map[string]interface{}{"status": entity.AppointmentStatusPending}
		newValue := map[string]interface{}{"status": entity.AppointmentStatusCancelled}
		return u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), oldValue, newValue)
	})
	if err != nil {
		return err
	}

	u.metrics.RecordAppointmentEvent(metrics.EventAppointmentCancelled)
	u.log.Infof("Appointment cancelled: id=%s, patient=%s", appointmentID, patientID)

	return nil
}

// GetReminder reports whether a pending appointment starts within the reminder lead time.
func (u *patientAppointmentUsecase) GetReminder(ctx context.Context, appointmentID, patientID uuid.UUID) (*dto.ReminderResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.txManager.Conn(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.PatientID != patientID {
		return nil, ErrAppointmentNotOwned
	}

	until := appointment.VisitAt.Sub(u.clock())

	return &dto.ReminderResponse{
		AppointmentID:  appointment.ID,
		VisitAt:        appointment.VisitAt,
		HasReminder:    appointment.IsPending() && until > 0 && until <= u.cfg.ReminderLead,
		MinutesUntil:   int64(until / time.Minute),
		DoctorName:     appointment.DoctorName,
		DepartmentName: appointment.DepartmentName,
	}, nil
}
