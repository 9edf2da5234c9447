package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"hospital-appointment-service/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestVisit() *entity.Visit {
	appointment := &entity.Appointment{
		ID:           uuid.New(),
		PatientID:    uuid.New(),
		DoctorID:     uuid.New(),
		DepartmentID: uuid.New(),
	}
	doctor := &entity.Doctor{ID: appointment.DoctorID, Name: "Dr. Sari"}
	department := &entity.Department{ID: appointment.DepartmentID, Name: "Cardiology"}

	visit := entity.NewVisit(appointment, doctor, department, "rest", consultationTime)
	visit.AddLineItem(&entity.Item{ID: uuid.New(), Name: "Amoxicillin", Price: decimal.RequireFromString("10.50")}, 2)
	visit.AddLineItem(&entity.Item{ID: uuid.New(), Name: "ECG", Price: decimal.RequireFromString("4.50")}, 1)
	return visit
}

func expectVisitInsert(mock sqlmock.Sqlmock, visit *entity.Visit) {
	mock.ExpectQuery(`INSERT INTO "visits" \(.*"doctor_name","department_name".*\) VALUES`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(visit.ID.String()))
	mock.ExpectQuery(`INSERT INTO "visit_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(uuid.New().String()).
			AddRow(uuid.New().String()))
}

func TestVisitRepository_Create_WritesVisitAndLines(t *testing.T) {
	db, mock := setupTestDB(t)
	visit := newTestVisit()

	mock.ExpectBegin()
	expectVisitInsert(mock, visit)
	mock.ExpectCommit()

	err := NewTxManager(db).WithinTransaction(context.Background(), func(tx *gorm.DB) error {
		return (&visitRepository{}).Create(tx, visit)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitRepository_Create_LostTransitionRollsBack(t *testing.T) {
	db, mock := setupTestDB(t)
	visit := newTestVisit()

	mock.ExpectBegin()
	expectVisitInsert(mock, visit)
	mock.ExpectExec(regexp.QuoteMeta(transitionSQL)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewTxManager(db).WithinTransaction(context.Background(), func(tx *gorm.DB) error {
		if err := (&visitRepository{}).Create(tx, visit); err != nil {
			return err
		}
		return transition(&appointmentRepository{}, visit.AppointmentID)(tx)
	})
	assert.ErrorIs(t, err, errAlreadyMoved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitRepository_Create_DuplicateAppointment(t *testing.T) {
	db, mock := setupTestDB(t)
	visit := newTestVisit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "visits"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_visits_appointment_id"})
	mock.ExpectRollback()

	err := NewTxManager(db).WithinTransaction(context.Background(), func(tx *gorm.DB) error {
		return (&visitRepository{}).Create(tx, visit)
	})

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitRepository_FindByID_LoadsItems(t *testing.T) {
	db, mock := setupTestDB(t)
	visitID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "visits" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_name", "department_name", "total_fee"}).
			AddRow(visitID.String(), "Dr. Sari", "Cardiology", "21.00"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "visit_items" WHERE "visit_items"."visit_id" = $1`)).
		WithArgs(visitID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "visit_id", "item_name", "quantity"}).
			AddRow(uuid.New().String(), visitID.String(), "Amoxicillin", 2))

	visit, err := (&visitRepository{}).FindByID(db, visitID)
	require.NoError(t, err)
	require.NotNil(t, visit)
	assert.Equal(t, "Dr. Sari", visit.DoctorName)
	assert.Equal(t, "Cardiology", visit.DepartmentName)
	assert.Equal(t, "21.00", visit.TotalFee.StringFixed(2))
	require.Len(t, visit.Items, 1)
	assert.Equal(t, 2, visit.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
