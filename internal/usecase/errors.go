package usecase

import (
	"errors"
	"fmt"
	"time"

	"hospital-appointment-service/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error kinds. Every business error below unwraps to exactly one of these, so
// callers can match either the kind or the specific error with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// NotFound
var (
	ErrDoctorNotFound      = newError(ErrNotFound, "doctor not found")
	ErrDepartmentNotFound  = newError(ErrNotFound, "department not found")
	ErrPatientNotFound     = newError(ErrNotFound, "patient not found")
	ErrAppointmentNotFound = newError(ErrNotFound, "appointment not found")
	ErrItemNotFound        = newError(ErrNotFound, "item not found")
	ErrScheduleNotFound    = newError(ErrNotFound, "schedule not found")
	ErrVisitNotFound       = newError(ErrNotFound, "visit not found")
	ErrAuditLogNotFound    = newError(ErrNotFound, "audit log not found")
)

// Forbidden
var (
	ErrAppointmentNotOwned    = newError(ErrForbidden, "appointment does not belong to you")
	ErrAppointmentNotAssigned = newError(ErrForbidden, "appointment is not assigned to you")
	ErrScheduleNotOwned       = newError(ErrForbidden, "schedule does not belong to you")
	ErrVisitNotOwned          = newError(ErrForbidden, "visit does not belong to you")
)

// InvalidState
var (
	ErrDoctorUnavailable                  = newError(ErrInvalidState, "doctor is not on duty at the requested time")
	ErrAppointmentNotAwaitingConsultation = newError(ErrInvalidState, "appointment is not awaiting consultation")
	ErrOnlyPendingAppointmentsCancellable = newError(ErrInvalidState, "only pending appointments may be cancelled")
)

// ValidationFailed
var (
	ErrOutsideBookingWindow   = newError(ErrValidation, "visit time is outside the booking window")
	ErrScheduleEndBeforeStart = newError(ErrValidation, "schedule end time is before start time")
	ErrInvalidQuantity        = newError(ErrValidation, "item quantity must be greater than zero")
	ErrQuantityTooLarge       = newError(ErrValidation, fmt.Sprintf("item quantity must not exceed %d", entity.MaxLineQuantity))
	ErrFeeTooLarge            = newError(ErrValidation, "consultation fee exceeds the billable maximum")
	ErrInvalidDutyStatus      = newError(ErrValidation, "status must be ON_DUTY or OFF_DUTY")
	ErrInvalidItemType        = newError(ErrValidation, "item type must be DRUG or SERVICE")
)

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Clock returns the current instant. Workflows take one so tests can pin time.
type Clock func() time.Time
