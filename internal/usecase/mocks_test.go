package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"hospital-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// fakeTxManager runs the callback directly. Repositories in these tests ignore
// the handle, so nil is passed through.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Conn(ctx context.Context) *gorm.DB { return nil }

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	m.calls++
	return fn(nil)
}

// memoryAppointmentRepository keeps appointments in a map so status
// transitions behave like the conditional UPDATE in PostgreSQL.
type memoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]entity.Appointment
}

func newMemoryAppointmentRepository(appointments ...entity.Appointment) *memoryAppointmentRepository {
	repo := &memoryAppointmentRepository{appointments: make(map[uuid.UUID]entity.Appointment)}
	for _, a := range appointments {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (r *memoryAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *memoryAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryAppointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memoryAppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memoryAppointmentRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok || a.Status != from {
		return 0, nil
	}
	a.Status = to
	r.appointments[id] = a
	return 1, nil
}

func (r *memoryAppointmentRepository) status(id uuid.UUID) entity.AppointmentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appointments[id].Status
}

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.DutyStatus) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDoctorRepository) FindAll(db *gorm.DB, status *entity.DutyStatus) ([]entity.Doctor, error) {
	args := m.Called(status)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *mockDoctorRepository) FindByDepartmentID(db *gorm.DB, departmentID uuid.UUID, status *entity.DutyStatus) ([]entity.Doctor, error) {
	args := m.Called(departmentID, status)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

type mockDepartmentRepository struct {
	mock.Mock
}

func (m *mockDepartmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	args := m.Called(id)
	department, _ := args.Get(0).(*entity.Department)
	return department, args.Error(1)
}

func (m *mockDepartmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	args := m.Called()
	departments, _ := args.Get(0).([]entity.Department)
	return departments, args.Error(1)
}

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

type mockScheduleRepository struct {
	mock.Mock
}

func (m *mockScheduleRepository) Create(db *gorm.DB, schedule *entity.DoctorSchedule) error {
	args := m.Called(schedule)
	return args.Error(0)
}

func (m *mockScheduleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorSchedule, error) {
	args := m.Called(id)
	schedule, _ := args.Get(0).(*entity.DoctorSchedule)
	return schedule, args.Error(1)
}

func (m *mockScheduleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	args := m.Called(doctorID)
	schedules, _ := args.Get(0).([]entity.DoctorSchedule)
	return schedules, args.Error(1)
}

func (m *mockScheduleRepository) Update(db *gorm.DB, schedule *entity.DoctorSchedule) error {
	args := m.Called(schedule)
	return args.Error(0)
}

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*entity.Item)
	return item, args.Error(1)
}

func (m *mockItemRepository) FindEnabled(db *gorm.DB, itemType *entity.ItemType) ([]entity.Item, error) {
	args := m.Called(itemType)
	items, _ := args.Get(0).([]entity.Item)
	return items, args.Error(1)
}

type mockVisitRepository struct {
	mock.Mock
}

func (m *mockVisitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	args := m.Called(visit)
	return args.Error(0)
}

func (m *mockVisitRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Visit, error) {
	args := m.Called(id)
	visit, _ := args.Get(0).(*entity.Visit)
	return visit, args.Error(1)
}

func (m *mockVisitRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error) {
	args := m.Called(patientID)
	visits, _ := args.Get(0).([]entity.Visit)
	return visits, args.Error(1)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *mockAuditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	args := m.Called()
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}

func (m *mockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(id)
	log, _ := args.Get(0).(*entity.AuditLog)
	return log, args.Error(1)
}

// recordingAuditService collects the actions written through it.
type recordingAuditService struct {
	mu      sync.Mutex
	actions []string
	err     error
}

func (s *recordingAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.record(action)
}

func (s *recordingAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.record(action)
}

func (s *recordingAuditService) record(action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.actions = append(s.actions, action)
	return nil
}

type mockScheduleCache struct {
	mock.Mock
}

func (m *mockScheduleCache) Get(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSchedule, int64, bool, error) {
	args := m.Called(doctorID)
	windows, _ := args.Get(0).([]entity.DoctorSchedule)
	return windows, args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *mockScheduleCache) Set(ctx context.Context, doctorID uuid.UUID, generation int64, windows []entity.DoctorSchedule) error {
	args := m.Called(doctorID, generation, windows)
	return args.Error(0)
}

func (m *mockScheduleCache) Invalidate(ctx context.Context, doctorID uuid.UUID) error {
	args := m.Called(doctorID)
	return args.Error(0)
}

// resolverFunc adapts a function to DutyResolver.
type resolverFunc func(ctx context.Context, doctorID uuid.UUID, at time.Time) (entity.DutyStatus, error)

func (f resolverFunc) ResolveStatus(ctx context.Context, doctorID uuid.UUID, at time.Time) (entity.DutyStatus, error) {
	return f(ctx, doctorID, at)
}

func alwaysOnDuty() DutyResolver {
	return resolverFunc(func(context.Context, uuid.UUID, time.Time) (entity.DutyStatus, error) {
		return entity.DutyStatusOnDuty, nil
	})
}

func boolPtr(b bool) *bool { return &b }
