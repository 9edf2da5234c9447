package handler

import (
	"net/http"

	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
)

type ItemHandler struct {
	itemUsecase usecase.ItemUsecase
}

func NewItemHandler(itemUsecase usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{
		itemUsecase: itemUsecase,
	}
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemUsecase.ListItems(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, err, "Failed to get items")
		return
	}

	response.Success(w, http.StatusOK, "Items retrieved successfully", items)
}
