package usecase

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ItemUsecase interface {
	// ListItems returns enabled catalog items. An empty itemType lists every type.
	ListItems(ctx context.Context, itemType string) (*dto.ItemListResponse, error)
}

type itemUsecase struct {
	txManager repository.TxManager
	log       *logrus.Logger
	itemRepo  repository.ItemRepository
}

func NewItemUsecase(txManager repository.TxManager, log *logrus.Logger, itemRepo repository.ItemRepository) ItemUsecase {
	return &itemUsecase{
		txManager: txManager,
		log:       log,
		itemRepo:  itemRepo,
	}
}

func (u *itemUsecase) ListItems(ctx context.Context, itemType string) (*dto.ItemListResponse, error) {
	var filter *entity.ItemType
	if itemType != "" {
		t := entity.ItemType(itemType)
		if !t.IsValid() {
			return nil, ErrInvalidItemType
		}
		filter = &t
	}

	items, err := u.itemRepo.FindEnabled(u.txManager.Conn(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find items: %+v", err)
		return nil, err
	}

	return &dto.ItemListResponse{
		Items: converter.ItemsToResponses(items),
		Total: len(items),
	}, nil
}
