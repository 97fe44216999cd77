package queries

import (
	"context"
	"database/sql"
	"errors"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerStatusQueryHandler(db *gorm.DB) GetCustomerStatusQueryHandler {
	return GetCustomerStatusQueryHandler{db: db}
}

// Handle returns an errs.ObjectNotFoundError when the customer never ordered.
func (h GetCustomerStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerStatusQuery,
) (CustomerStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerStatusResponse{}, err
	}

	var (
		id     int64
		status string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, status
		FROM orders
		WHERE customer_name = ?
		ORDER BY id DESC
		LIMIT 1
	`, query.CustomerName()).Row().Scan(&id, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerStatusResponse{}, errs.NewObjectNotFoundError("customer order", query.CustomerName())
	}
	if err != nil {
		return CustomerStatusResponse{}, err
	}

	orderID, err := kernel.NewID(id)
	if err != nil {
		return CustomerStatusResponse{}, err
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		parsed = order.Unknown
	}

	return CustomerStatusResponse{OrderID: orderID, Status: parsed}, nil
}
