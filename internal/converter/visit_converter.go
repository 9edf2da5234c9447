package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO. Line items are
// included only when loaded.
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	response := &dto.VisitResponse{
		ID:             visit.ID,
		AppointmentID:  visit.AppointmentID,
		PatientID:      visit.PatientID,
		DoctorID:       visit.DoctorID,
		DepartmentID:   visit.DepartmentID,
		DoctorName:     visit.DoctorName,
		DepartmentName: visit.DepartmentName,
		VisitAt:        visit.VisitAt,
		DoctorAdvice:   visit.DoctorAdvice,
		TotalFee:       visit.TotalFee,
	}

	if len(visit.Items) > 0 {
		response.Items = make([]dto.VisitItemResponse, len(visit.Items))
		for i, line := range visit.Items {
			response.Items[i] = dto.VisitItemResponse{
				ItemID:      line.ItemID,
				ItemName:    line.ItemName,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				TotalAmount: line.TotalAmount,
			}
		}
	}

	return response
}

// VisitsToResponses converts a slice of Visit entities to slice of VisitResponse DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i])
	}
	return responses
}
