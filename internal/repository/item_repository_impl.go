package repository

import (
	"errors"

	"hospital-appointment-service/internal/domain/entity"
	domainRepo "hospital-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type itemRepository struct{}

func NewItemRepository() domainRepo.ItemRepository {
	return &itemRepository{}
}

func (r *itemRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindEnabled(db *gorm.DB, itemType *entity.ItemType) ([]entity.Item, error) {
	var items []entity.Item
	query := db.Where("enabled = ?", true)
	if itemType != nil {
		query = query.Where("type = ?", *itemType)
	}

	err := query.Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
