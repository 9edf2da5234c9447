package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Status:    string(doctor.Status),
		AvatarURL: doctor.AvatarURL,
		Deleted:   doctor.IsDeleted(),
		CreatedAt: doctor.CreatedAt,
		UpdatedAt: doctor.UpdatedAt,
	}
	if len(doctor.Departments) > 0 {
		resp.Departments = DepartmentsToResponses(doctor.Departments)
	}
	return resp
}

func DoctorsToListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = dto.DepartmentResponse{
			ID:          department.ID,
			Name:        department.Name,
			Description: department.Description,
		}
	}
	return responses
}
