package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetConversationQueryHandler struct {
	db *gorm.DB
}

func NewGetConversationQueryHandler(db *gorm.DB) GetConversationQueryHandler {
	return GetConversationQueryHandler{db: db}
}

func (h GetConversationQueryHandler) Handle(
	ctx context.Context,
	query GetConversationQuery,
) (ConversationResponse, error) {
	if err := query.Validate(); err != nil {
		return ConversationResponse{}, err
	}

	var (
		step      string
		itemID    sql.NullInt64
		orderID   sql.NullInt64
		updatedAt time.Time
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT step, item_id, order_id, updated_at
		FROM conversations
		WHERE customer_name = ?
	`, query.CustomerName()).Row().Scan(&step, &itemID, &orderID, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ConversationResponse{CustomerName: query.CustomerName(), Step: conversation.Idle}, nil
	}
	if err != nil {
		return ConversationResponse{}, err
	}

	parsed, err := conversation.ParseStep(step)
	if err != nil {
		return ConversationResponse{}, err
	}

	resp := ConversationResponse{
		CustomerName: query.CustomerName(),
		Step:         parsed,
		UpdatedAt:    updatedAt,
	}
	if itemID.Valid {
		if resp.SelectedItem, err = kernel.NewID(itemID.Int64); err != nil {
			return ConversationResponse{}, err
		}
	}
	if orderID.Valid {
		if resp.OrderID, err = kernel.NewID(orderID.Int64); err != nil {
			return ConversationResponse{}, err
		}
	}

	return resp, nil
}
