// Package conversationrepo stores the per-customer step of the ordering flow.
package conversationrepo

import (
	"fmt"
	"strconv"
	"time"

	"buttery/internal/adapters/out/sqlstore/orderrepo"
	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
)

type ConversationDTO struct {
	CustomerName   string    `gorm:"primaryKey"`
	CustomerChatID string    `gorm:"column:customer_chat_id;not null"`
	Step           string    `gorm:"not null"`
	ItemID         *int64    `gorm:"column:item_id"`
	OrderID        *int64    `gorm:"column:order_id"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (ConversationDTO) TableName() string {
	return "conversations"
}

func fromDomain(c *conversation.Conversation) ConversationDTO {
	return ConversationDTO{
		CustomerName:   c.CustomerName(),
		CustomerChatID: strconv.FormatInt(c.ChatID(), 10),
		Step:           c.Step().String(),
		ItemID:         optionalID(c.SelectedItem()),
		OrderID:        optionalID(c.OrderID()),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func toDomain(dto ConversationDTO) (*conversation.Conversation, error) {
	c, err := decode(dto)
	if err != nil {
		return nil, fmt.Errorf("decode conversation of %s: %v", dto.CustomerName, err)
	}
	return c, nil
}

func decode(dto ConversationDTO) (*conversation.Conversation, error) {
	chatID, err := orderrepo.ParseChatID(dto.CustomerChatID)
	if err != nil {
		return nil, err
	}

	step, err := conversation.ParseStep(dto.Step)
	if err != nil {
		return nil, err
	}

	itemID, err := requiredID(dto.ItemID)
	if err != nil {
		return nil, err
	}
	orderID, err := requiredID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return conversation.Restore(dto.CustomerName, chatID, step, itemID, orderID, dto.UpdatedAt)
}

func optionalID(id kernel.ID) *int64 {
	if id.IsZero() {
		return nil
	}
	v := id.Int64()
	return &v
}

func requiredID(v *int64) (kernel.ID, error) {
	if v == nil {
		return kernel.ID{}, nil
	}
	return kernel.NewID(*v)
}
