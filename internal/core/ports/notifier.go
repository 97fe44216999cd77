package ports

import (
	"context"

	"buttery/internal/core/domain/model/kernel"
)

// Event names the reason a Notification is sent.
type Event string

const (
	// EventOrderReady tells the customer the order can be collected.
	EventOrderReady Event = "OrderReady"
	// EventPaymentProofReceived forwards a customer's payment proof to an admin chat.
	EventPaymentProofReceived Event = "PaymentProofReceived"
)

// Notification is handed to the transport that talks to customers and staff.
type Notification struct {
	Event           Event
	RecipientChatID int64
	OrderID         kernel.ID
	Customer        string
	Text            string
	// Attachment references the uploaded file; set for EventPaymentProofReceived only.
	Attachment string
}

// Notifier delivers notifications. Callers log failures and carry on;
// a failed delivery never changes order state.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
