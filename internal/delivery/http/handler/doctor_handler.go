package handler

import (
	"net/http"
	"time"

	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
	"hospital-appointment-service/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	dutyResolver  usecase.DutyResolver
	validator     *validator.CustomValidator
	now           func() time.Time
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, dutyResolver usecase.DutyResolver, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		dutyResolver:  dutyResolver,
		validator:     validator,
		now:           time.Now,
	}
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) UpdateDoctorStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	var req dto.UpdateDoctorStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctorStatus(r.Context(), adminID, doctorID, &req)
	if err != nil {
		writeError(w, err, "Failed to update doctor status")
		return
	}

	response.Success(w, http.StatusOK, "Doctor status updated successfully", doctor)
}

// GetDutyStatus resolves the doctor's effective duty status at ?at= (RFC3339),
// defaulting to the current time.
func (h *DoctorHandler) GetDutyStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	at := h.now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(w, "Invalid at parameter, use RFC3339")
			return
		}
		at = parsed
	}

	status, err := h.dutyResolver.ResolveStatus(r.Context(), doctorID, at)
	if err != nil {
		writeError(w, err, "Failed to resolve duty status")
		return
	}

	response.Success(w, http.StatusOK, "Duty status resolved successfully", dto.DutyStatusResponse{
		DoctorID: doctorID,
		At:       at,
		Status:   string(status),
	})
}
