package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// ItemsToResponses converts catalog items to ItemResponse DTOs
func ItemsToResponses(items []entity.Item) []dto.ItemResponse {
	responses := make([]dto.ItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.ItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Type:  string(item.Type),
			Price: item.Price,
			Unit:  item.Unit,
		}
	}
	return responses
}
