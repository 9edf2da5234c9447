package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpdateDoctorStatus(t *testing.T) {
	adminID := uuid.New()

	t.Run("sets flag and audits", func(t *testing.T) {
		doctorRepo := new(mockDoctorRepository)
		audit := &recordingAuditService{}
		doctor := &entity.Doctor{ID: uuid.New(), Name: "Dr. Sari", Status: entity.DutyStatusOnDuty}
		doctorRepo.On("FindByID", doctor.ID).Return(doctor, nil)
		doctorRepo.On("UpdateStatus", doctor.ID, entity.DutyStatusOffDuty).Return(int64(1), nil)

		uc := NewDoctorUsecase(&fakeTxManager{}, newTestLogger(), doctorRepo, audit)

		resp, err := uc.UpdateDoctorStatus(context.Background(), adminID, doctor.ID, &dto.UpdateDoctorStatusRequest{Status: "OFF_DUTY"})
		require.NoError(t, err)
		assert.Equal(t, "OFF_DUTY", resp.Status)
		assert.Equal(t, []string{entity.AuditActionDoctorStatusUpdate}, audit.actions)
		doctorRepo.AssertExpectations(t)
	})

	t.Run("deleted doctor", func(t *testing.T) {
		doctorRepo := new(mockDoctorRepository)
		doctor := &entity.Doctor{
			ID:        uuid.New(),
			Status:    entity.DutyStatusOnDuty,
			DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
		}
		doctorRepo.On("FindByID", doctor.ID).Return(doctor, nil)

		uc := NewDoctorUsecase(&fakeTxManager{}, newTestLogger(), doctorRepo, &recordingAuditService{})

		_, err := uc.UpdateDoctorStatus(context.Background(), adminID, doctor.ID, &dto.UpdateDoctorStatusRequest{Status: "OFF_DUTY"})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
		doctorRepo.AssertNotCalled(t, "UpdateStatus", doctor.ID, entity.DutyStatusOffDuty)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		doctorRepo := new(mockDoctorRepository)
		unknown := uuid.New()
		doctorRepo.On("FindByID", unknown).Return(nil, nil)

		uc := NewDoctorUsecase(&fakeTxManager{}, newTestLogger(), doctorRepo, &recordingAuditService{})

		_, err := uc.UpdateDoctorStatus(context.Background(), adminID, unknown, &dto.UpdateDoctorStatusRequest{Status: "ON_DUTY"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewDoctorUsecase(&fakeTxManager{}, newTestLogger(), new(mockDoctorRepository), &recordingAuditService{})

		_, err := uc.UpdateDoctorStatus(context.Background(), adminID, uuid.New(), &dto.UpdateDoctorStatusRequest{Status: "AWAY"})
		assert.ErrorIs(t, err, ErrInvalidDutyStatus)
	})
}

func TestGetDoctor_IncludesDeleted(t *testing.T) {
	doctorRepo := new(mockDoctorRepository)
	doctor := &entity.Doctor{
		ID:        uuid.New(),
		Name:      "Dr. Retired",
		Status:    entity.DutyStatusOffDuty,
		DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	}
	doctorRepo.On("FindByID", doctor.ID).Return(doctor, nil)

	uc := NewDoctorUsecase(&fakeTxManager{}, newTestLogger(), doctorRepo, &recordingAuditService{})

	resp, err := uc.GetDoctor(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.True(t, resp.Deleted)
	assert.Equal(t, "OFF_DUTY", resp.Status)
}

func TestListDoctors_AllLiveDoctors(t *testing.T) {
	doctorRepo := new(mockDoctorRepository)
	cardiology := entity.Department{ID: uuid.New(), Name: "Cardiology"}
	doctorRepo.On("FindAll", (*entity.DutyStatus)(nil)).Return([]entity.Doctor{
		{ID: uuid.New(), Name: "Dr. Budi", Status: entity.DutyStatusOffDuty},
		{ID: uuid.New(), Name: "Dr. Sari", Status: entity.DutyStatusOnDuty, Departments: []entity.Department{cardiology}},
	}, nil)

	uc := NewDoctorUsecase(&fakeTxManager{}, newTestLogger(), doctorRepo, &recordingAuditService{})

	resp, err := uc.ListDoctors(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "OFF_DUTY", resp.Doctors[0].Status)
	assert.Empty(t, resp.Doctors[0].Departments)
	require.Len(t, resp.Doctors[1].Departments, 1)
	assert.Equal(t, "Cardiology", resp.Doctors[1].Departments[0].Name)
	doctorRepo.AssertExpectations(t)
}
