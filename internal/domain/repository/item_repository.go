package repository

import (
	"hospital-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Item, error)
	// FindEnabled lists enabled items, optionally narrowed to one type.
	FindEnabled(db *gorm.DB, itemType *entity.ItemType) ([]entity.Item, error)
}
