package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit,omitempty"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
