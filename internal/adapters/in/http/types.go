package http

import "time"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MenuItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type Choice struct {
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type ChoicesResponse struct {
	Choices []Choice `json:"choices"`
}

type ChatRequest struct {
	ChatID int64 `json:"chat_id"`
}

type SelectItemRequest struct {
	ChatID int64  `json:"chat_id"`
	Item   string `json:"item"`
}

type QuantityRequest struct {
	ChatID   int64  `json:"chat_id"`
	Quantity string `json:"quantity"`
}

type ConfirmRequest struct {
	ChatID int64 `json:"chat_id"`
	More   bool  `json:"more"`
}

type PaymentProofRequest struct {
	ChatID     int64  `json:"chat_id"`
	Attachment string `json:"attachment"`
}

type ReceiptLine struct {
	ItemID    int64  `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type Receipt struct {
	OrderID  int64         `json:"order_id"`
	Customer string        `json:"customer"`
	Lines    []ReceiptLine `json:"lines"`
	Total    string        `json:"total"`
}

type QuantityResponse struct {
	OrderID  int64    `json:"order_id"`
	Item     Choice   `json:"item"`
	Quantity int      `json:"quantity"`
	Receipt  *Receipt `json:"receipt,omitempty"`
}

type ConfirmResponse struct {
	Choices []Choice `json:"choices,omitempty"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

type PaymentProofResponse struct {
	OrderID   int64 `json:"order_id"`
	Forwarded int   `json:"forwarded"`
}

type CustomerStatus struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type Conversation struct {
	Customer       string     `json:"customer"`
	Step           string     `json:"step"`
	SelectedItemID *int64     `json:"selected_item_id,omitempty"`
	OrderID        *int64     `json:"order_id,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type OrderDetail struct {
	OrderID  int64  `json:"order_id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Contents string `json:"contents"`
}

type OrderLine struct {
	ItemID    int64  `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
	Force  bool   `json:"force"`
}

type QuantityUpdate struct {
	Quantity int `json:"quantity"`
}

type ReduceRequest struct {
	Amount int `json:"amount"`
}
