package queries

import (
	"context"
	"database/sql"

	"buttery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns all menu items in id order.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, quantity, price
		FROM menu
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func scanMenuItems(rows *sql.Rows) ([]MenuItemResponse, error) {
	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			id       int64
			name     string
			quantity int
			price    decimal.Decimal
		)
		if err := rows.Scan(&id, &name, &quantity, &price); err != nil {
			return nil, err
		}

		itemID, err := kernel.NewID(id)
		if err != nil {
			return nil, err
		}
		money, err := kernel.NewMoney(price)
		if err != nil {
			return nil, err
		}

		items = append(items, MenuItemResponse{
			ID:       itemID,
			Name:     name,
			Quantity: quantity,
			Price:    money,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
