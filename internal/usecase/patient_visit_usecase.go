package usecase

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PatientVisitUsecase interface {
	GetMyVisits(ctx context.Context, patientID uuid.UUID) (*dto.VisitListResponse, error)
	GetVisitDetail(ctx context.Context, visitID, patientID uuid.UUID) (*dto.VisitResponse, error)
}

type patientVisitUsecase struct {
	txManager repository.TxManager
	log       *logrus.Logger
	visitRepo repository.VisitRepository
}

func NewPatientVisitUsecase(txManager repository.TxManager, log *logrus.Logger, visitRepo repository.VisitRepository) PatientVisitUsecase {
	return &patientVisitUsecase{
		txManager: txManager,
		log:       log,
		visitRepo: visitRepo,
	}
}

func (u *patientVisitUsecase) GetMyVisits(ctx context.Context, patientID uuid.UUID) (*dto.VisitListResponse, error) {
	visits, err := u.visitRepo.FindByPatientID(u.txManager.Conn(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find visits for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.VisitListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *patientVisitUsecase) GetVisitDetail(ctx context.Context, visitID, patientID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.txManager.Conn(ctx), visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	if visit.PatientID != patientID {
		return nil, ErrVisitNotOwned
	}

	return converter.VisitToResponse(visit), nil
}
