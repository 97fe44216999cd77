package queries

import (
	"context"

	"buttery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetSelectableItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetSelectableItemsQueryHandler(db *gorm.DB) GetSelectableItemsQueryHandler {
	return GetSelectableItemsQueryHandler{db: db}
}

func (h GetSelectableItemsQueryHandler) Handle(
	ctx context.Context,
	query GetSelectableItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT m.id, m.name, m.quantity, m.price
		FROM menu m
		WHERE m.id NOT IN (
			SELECT oi.menu_id
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.customer_name = ? AND o.status = ?
		)
		ORDER BY m.id
	`, query.CustomerName(), order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItems(rows)
}
