package handler

import (
	"net/http"

	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

func (h *DirectoryHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.directoryUsecase.ListDepartments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *DirectoryHandler) ListDepartmentDoctors(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := pathUUID(w, r, "id", "department")
	if !ok {
		return
	}

	doctors, err := h.directoryUsecase.ListDepartmentDoctors(r.Context(), departmentID)
	if err != nil {
		writeError(w, err, "Failed to get department doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DirectoryHandler) ListAvailableDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.directoryUsecase.ListAvailableDoctors(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
