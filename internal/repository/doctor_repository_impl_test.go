package repository

import (
	"regexp"
	"testing"

	"hospital-appointment-service/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository_FindByID_IncludesDeleted(t *testing.T) {
	db, mock := setupTestDB(t)
	id := uuid.New()

	// Anchored so a deleted_at filter would fail the match.
	mock.ExpectQuery(`^SELECT \* FROM "doctors" WHERE id = \$1 ORDER BY "doctors"\."id" LIMIT .+$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "deleted_at"}).
			AddRow(id.String(), "Dr. Retired", "OFF_DUTY", consultationTime))

	doctor, err := (&doctorRepository{}).FindByID(db, id)
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.True(t, doctor.IsDeleted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	doctor, err := (&doctorRepository{}).FindByID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, doctor)
}

func TestDoctorRepository_UpdateStatus_LiveDoctorsOnly(t *testing.T) {
	db, mock := setupTestDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "doctors" SET "status"=$1,"updated_at"=$2 WHERE id = $3 AND "doctors"."deleted_at" IS NULL`)).
		WithArgs("OFF_DUTY", sqlmock.AnyArg(), id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := (&doctorRepository{}).UpdateStatus(db, id, entity.DutyStatusOffDuty)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_FindByDepartmentID(t *testing.T) {
	db, mock := setupTestDB(t)
	departmentID := uuid.New()
	doctorID := uuid.New()
	onDuty := entity.DutyStatusOnDuty

	mock.ExpectQuery(`FROM "doctors" JOIN doctor_departments ON doctor_departments\.doctor_id = doctors\.id ` +
		`WHERE doctor_departments\.department_id = \$1 AND doctors\.status = \$2 AND "doctors"\."deleted_at" IS NULL ` +
		`ORDER BY doctors\.name`).
		WithArgs(departmentID.String(), "ON_DUTY").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).
			AddRow(doctorID.String(), "Dr. Sari", "ON_DUTY"))
	mock.ExpectQuery(`SELECT \* FROM "doctor_departments" WHERE "doctor_departments"\."doctor_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"doctor_id", "department_id"}).
			AddRow(doctorID.String(), departmentID.String()))
	mock.ExpectQuery(`SELECT \* FROM "departments" WHERE "departments"\."id" = \$1 AND enabled = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "enabled"}).
			AddRow(departmentID.String(), "Cardiology", true))

	doctors, err := (&doctorRepository{}).FindByDepartmentID(db, departmentID, &onDuty)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Sari", doctors[0].Name)
	require.Len(t, doctors[0].Departments, 1)
	assert.Equal(t, "Cardiology", doctors[0].Departments[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_FindAll_AnyStatus(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectQuery(`^SELECT \* FROM "doctors" WHERE "doctors"\."deleted_at" IS NULL ORDER BY name$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}))

	doctors, err := (&doctorRepository{}).FindAll(db, nil)
	require.NoError(t, err)
	assert.Empty(t, doctors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_FindAll_EnabledOnly(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "departments" WHERE enabled = $1 ORDER BY name`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "enabled"}).
			AddRow(uuid.New().String(), "Cardiology", true))

	departments, err := (&departmentRepository{}).FindAll(db)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.True(t, departments[0].IsEnabled())
	assert.NoError(t, mock.ExpectationsWereMet())
}
