package handler

import (
	"net/http"

	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
	"hospital-appointment-service/pkg/validator"
)

type DoctorAppointmentHandler struct {
	appointmentUsecase usecase.DoctorAppointmentUsecase
	validator          *validator.CustomValidator
}

func NewDoctorAppointmentHandler(appointmentUsecase usecase.DoctorAppointmentUsecase, validator *validator.CustomValidator) *DoctorAppointmentHandler {
	return &DoctorAppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *DoctorAppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *DoctorAppointmentHandler) GetAppointmentDetail(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	appointmentID, ok := pathUUID(w, r, "id", "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointmentDetail(r.Context(), appointmentID, doctorID)
	if err != nil {
		writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *DoctorAppointmentHandler) CompleteConsultation(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	appointmentID, ok := pathUUID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.CompleteConsultationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.appointmentUsecase.CompleteConsultation(r.Context(), appointmentID, doctorID, &req)
	if err != nil {
		writeError(w, err, "Failed to complete consultation")
		return
	}

	response.Success(w, http.StatusCreated, "Consultation completed successfully", result)
}
