// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
)

// OrderDTO is a row of the orders table. The chat id is stored as text and the
// status by name, as in databases written by earlier releases.
type OrderDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName   string    `gorm:"not null"`
	CustomerChatID string    `gorm:"column:customer_chat_id;not null"`
	Status         string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table.
type OrderItemDTO struct {
	OrderID  int64 `gorm:"primaryKey;autoIncrement:false"`
	MenuID   int64 `gorm:"primaryKey;autoIncrement:false"`
	Quantity int   `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) (OrderDTO, []OrderItemDTO) {
	dto := OrderDTO{
		ID:             o.ID().Int64(),
		CustomerName:   o.CustomerName(),
		CustomerChatID: strconv.FormatInt(o.ChatID(), 10),
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
	}

	lines := o.Lines()
	items := make([]OrderItemDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItemDTO{
			OrderID:  dto.ID,
			MenuID:   l.ItemID().Int64(),
			Quantity: l.Quantity().Int(),
		})
	}

	return dto, items
}

// toDomain rebuilds an order from its rows. A row that does not decode is a
// storage fault, so the error keeps the text but not the domain error chain.
func toDomain(dto OrderDTO, items []OrderItemDTO) (*order.Order, error) {
	o, err := decode(dto, items)
	if err != nil {
		return nil, fmt.Errorf("decode order %d: %v", dto.ID, err)
	}
	return o, nil
}

func decode(dto OrderDTO, items []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	chatID, err := ParseChatID(dto.CustomerChatID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(items))
	for _, it := range items {
		itemID, idErr := kernel.NewID(it.MenuID)
		if idErr != nil {
			return nil, idErr
		}
		qty, qtyErr := kernel.NewQuantity(it.Quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}
		line, lineErr := order.NewLine(itemID, qty)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.CustomerName, chatID, status, dto.CreatedAt, lines)
}

// ParseChatID reads a stored chat id. Earlier releases wrote an empty string for
// orders entered by staff; that reads as 0, a customer without a chat.
func ParseChatID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
