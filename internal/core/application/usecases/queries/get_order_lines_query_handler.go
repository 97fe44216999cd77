package queries

import (
	"context"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderLinesQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderLinesQueryHandler(db *gorm.DB) GetOrderLinesQueryHandler {
	return GetOrderLinesQueryHandler{db: db}
}

// Handle returns the lines in menu id order, or an errs.ObjectNotFoundError
// for an unknown order.
func (h GetOrderLinesQueryHandler) Handle(ctx context.Context, query GetOrderLinesQuery) ([]OrderLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw("SELECT COUNT(1) FROM orders WHERE id = ?", query.OrderID().Int64()).
		Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT oi.menu_id, m.name, oi.quantity, m.price
		FROM order_items oi
		JOIN menu m ON m.id = oi.menu_id
		WHERE oi.order_id = ?
		ORDER BY oi.menu_id
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var (
			menuID   int64
			name     string
			quantity int
			price    decimal.Decimal
		)
		if err = rows.Scan(&menuID, &name, &quantity, &price); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.NewID(menuID)
		if idErr != nil {
			return nil, idErr
		}
		unit, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		qty, qtyErr := kernel.NewQuantity(quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}

		lines = append(lines, OrderLineResponse{
			ItemID:    itemID,
			Name:      name,
			Quantity:  quantity,
			UnitPrice: unit,
			Subtotal:  unit.Times(qty),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
