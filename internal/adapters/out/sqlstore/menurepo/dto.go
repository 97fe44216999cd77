// Package menurepo maps menu items to the menu table.
package menurepo

import (
	"fmt"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:       item.ID().Int64(),
		Name:     item.Name(),
		Quantity: item.Quantity(),
		Price:    item.Price().Decimal(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	item, err := decode(dto)
	if err != nil {
		return nil, fmt.Errorf("decode menu item %d: %v", dto.ID, err)
	}
	return item, nil
}

func decode(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, dto.Quantity, price)
}
