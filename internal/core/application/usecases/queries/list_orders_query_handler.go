package queries

import (
	"context"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order_details view. Orders without lines do
// not appear in the view and so are not listed.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		tx = tx.Raw(`
			SELECT order_id, customer_name, status, order_contents
			FROM order_details
			WHERE status IN ?
			ORDER BY order_id
		`, names)
	} else {
		tx = tx.Raw(`
			SELECT order_id, customer_name, status, order_contents
			FROM order_details
			ORDER BY order_id
		`)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]OrderDetailResponse, 0)
	for rows.Next() {
		var (
			id       int64
			customer string
			status   string
			contents string
		)
		if err = rows.Scan(&id, &customer, &status, &contents); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		// Names this release does not know, such as an archived "Completed",
		// are listed as Unknown.
		parsed, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			parsed = order.Unknown
		}

		details = append(details, OrderDetailResponse{
			OrderID:      orderID,
			CustomerName: customer,
			Status:       parsed,
			Contents:     contents,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
