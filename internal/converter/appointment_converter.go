package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Names come from the booking-time snapshot.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		DoctorID:       appointment.DoctorID,
		DepartmentID:   appointment.DepartmentID,
		DoctorName:     appointment.DoctorName,
		DepartmentName: appointment.DepartmentName,
		VisitAt:        appointment.VisitAt,
		Status:         string(appointment.Status),
		IllnessDesc:    appointment.IllnessDesc,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToDoctorResponse adds the patient's live contact details to the appointment
func AppointmentToDoctorResponse(appointment *entity.Appointment, patient *entity.Patient) *dto.DoctorAppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.DoctorAppointmentResponse{
		AppointmentResponse: *AppointmentToResponse(appointment),
	}
	if patient != nil {
		response.PatientName = patient.RealName
		response.PatientPhone = patient.Phone
	}

	return response
}
