package usecase

import (
	"context"
	"fmt"

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

type DoctorAppointmentUsecase interface {
	GetMyAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointmentDetail(ctx context.Context, appointmentID, doctorID uuid.UUID) (*dto.DoctorAppointmentResponse, error)
	CompleteConsultation(ctx context.Context, appointmentID, doctorID uuid.UUID, req *dto.CompleteConsultationRequest) (*dto.CompleteConsultationResponse, error)
}

type doctorAppointmentUsecase struct {
	txManager       repository.TxManager
	log             *logrus.Logger
	clock           Clock
	appointmentRepo repository.AppointmentRepository
	visitRepo       repository.VisitRepository
	itemRepo        repository.ItemRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
	auditService    service.AuditService
	metrics         *metrics.Collector
}

func NewDoctorAppointmentUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	clock Clock,
	appointmentRepo repository.AppointmentRepository,
	visitRepo repository.VisitRepository,
	itemRepo repository.ItemRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	auditService service.AuditService,
	metrics *metrics.Collector,
) DoctorAppointmentUsecase {
	return &doctorAppointmentUsecase{
		txManager:       txManager,
		log:             log,
		clock:           clock,
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
		itemRepo:        itemRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
		auditService:    auditService,
		metrics:         metrics,
	}
}

func (u *doctorAppointmentUsecase) GetMyAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.txManager.Conn(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *doctorAppointmentUsecase) GetAppointmentDetail(ctx context.Context, appointmentID, doctorID uuid.UUID) (*dto.DoctorAppointmentResponse, error) {
	conn := u.txManager.Conn(ctx)

	appointment, err := u.appointmentRepo.FindByID(conn, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotAssigned
	}

	patient, err := u.patientRepo.FindByID(conn, appointment.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", appointment.PatientID, err)
		return nil, err
	}

	return converter.AppointmentToDoctorResponse(appointment, patient), nil
}

// CompleteConsultation turns a PENDING appointment into a billed visit in one
// transaction. Any failure leaves neither the visit nor the status change behind.
//
// Flow:
// 1. Load the appointment, check it is assigned to the doctor and still PENDING
// 2. Load patient, doctor (deleted included) and department
// 3. Price each line item from the catalog, snapshotting name and price.
//    Quantities and totals must fit the visit_items and visits columns
// 4. Insert the visit with its lines
// 5. Conditionally move the appointment PENDING -> VISITED
// 6. Audit
func (u *doctorAppointmentUsecase) CompleteConsultation(ctx context.Context, appointmentID, doctorID uuid.UUID, req *dto.CompleteConsultationRequest) (*dto.CompleteConsultationResponse, error) {
	var visit *entity.Visit

	err := u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		// Step 1: appointment state
		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		if appointment.DoctorID != doctorID {
			return ErrAppointmentNotAssigned
		}

		if !appointment.CanTransitionTo(entity.AppointmentStatusVisited) {
			return ErrAppointmentNotAwaitingConsultation
		}

		// Step 2: participants
		doctor, department, err := u.loadParticipants(tx, appointment)
		if err != nil {
			return err
		}

		// Step 3: line items
		visit = entity.NewVisit(appointment, doctor, department, req.DoctorAdvice, u.clock())
		for _, line := range req.Items {
			item, err := u.itemRepo.FindByID(tx, line.ItemID)
			if err != nil {
				u.log.Warnf("Failed to find item %s: %+v", line.ItemID, err)
				return err
			}
			if item == nil {
				return fmt.Errorf("%w: %s", ErrItemNotFound, line.ItemID)
			}

			if line.Quantity <= 0 {
				return ErrInvalidQuantity
			}
			if line.Quantity > entity.MaxLineQuantity {
				return ErrQuantityTooLarge
			}

			visit.AddLineItem(item, line.Quantity)
		}
		if visit.ExceedsAmountLimit() {
			return ErrFeeTooLarge
		}

		// Step 4: visit record
		if err := u.visitRepo.Create(tx, visit); err != nil {
			if isDuplicateKeyError(err) {
				return ErrAppointmentNotAwaitingConsultation
			}
			u.log.Warnf("Failed to create visit for appointment %s: %+v", appointmentID, err)
			return err
		}

		// Step 5: status transition, 0 rows means someone else got there first
		affected, err := u.appointmentRepo.TransitionStatus(tx, appointmentID, entity.AppointmentStatusPending, entity.AppointmentStatusVisited)
		if err != nil {
			u.log.Warnf("Failed to mark appointment %s visited: %+v", appointmentID, err)
			return err
		}
		if affected == 0 {
			return ErrAppointmentNotAwaitingConsultation
		}

		// Step 6: audit
		newValue := map[string]interface{}{
			"visit_id":   visit.ID,
			"total_fee":  visit.TotalFee.StringFixed(2),
			"item_count": len(visit.Items),
		}
		return u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionConsultationComplete, "visit", visit.ID.String(), newValue)
	})
	if err != nil {
		return nil, err
	}

	fee, _ := visit.TotalFee.Float64()
	u.metrics.RecordAppointmentEvent(metrics.EventAppointmentVisited)
	u.metrics.RecordConsultationFee(fee)
	u.log.Infof("Consultation completed: appointment=%s, visit=%s, total_fee=%s", appointmentID, visit.ID, visit.TotalFee.StringFixed(2))

	return &dto.CompleteConsultationResponse{VisitID: visit.ID}, nil
}

// loadParticipants checks the patient still exists and returns the doctor and
// department whose names the visit copies.
func (u *doctorAppointmentUsecase) loadParticipants(tx *gorm.DB, appointment *entity.Appointment) (*entity.Doctor, *entity.Department, error) {
	patient, err := u.patientRepo.FindByID(tx, appointment.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", appointment.PatientID, err)
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, ErrDoctorNotFound
	}

	department, err := u.departmentRepo.FindByID(tx, appointment.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", appointment.DepartmentID, err)
		return nil, nil, err
	}
	if department == nil {
		return nil, nil, ErrDepartmentNotFound
	}

	return doctor, department, nil
}
