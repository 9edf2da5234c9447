package handler

import (
	"net/http"

	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
)

type VisitHandler struct {
	visitUsecase usecase.PatientVisitUsecase
}

func NewVisitHandler(visitUsecase usecase.PatientVisitUsecase) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
	}
}

func (h *VisitHandler) GetMyVisits(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	visits, err := h.visitUsecase.GetMyVisits(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) GetVisitDetail(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	visitID, ok := pathUUID(w, r, "id", "visit")
	if !ok {
		return
	}

	visit, err := h.visitUsecase.GetVisitDetail(r.Context(), visitID, patientID)
	if err != nil {
		writeError(w, err, "Failed to get visit")
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}
