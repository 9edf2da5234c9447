package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType distinguishes drugs from billable services in the catalog
type ItemType string

const (
	ItemTypeDrug    ItemType = "DRUG"
	ItemTypeService ItemType = "SERVICE"
)

func (t ItemType) IsValid() bool {
	return t == ItemTypeDrug || t == ItemTypeService
}

// Item is a priced catalog entry. Price is the current list price; billed
// visits keep their own copy in VisitItem.
type Item struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name    string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Type    ItemType        `gorm:"type:varchar(20);not null" json:"type"`
	Price   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Unit    string          `gorm:"type:varchar(20)" json:"unit,omitempty"`
	Enabled *bool           `gorm:"not null;default:true" json:"enabled"`
}

func (Item) TableName() string {
	return "items"
}
