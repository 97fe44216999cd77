package queries

import (
	"errors"
	"strings"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/errs"
	"buttery/internal/pkg/guard"
)

var ErrGetConversationQueryIsNotConstructed = errors.New(
	"GetConversationQuery must be created via NewGetConversationQuery constructor",
)

// GetConversationQuery tells a transport which input a customer's next free
// text message answers, also right after a restart.
type GetConversationQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

func NewGetConversationQuery(customerName string) (GetConversationQuery, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return GetConversationQuery{}, errs.NewValueIsRequiredError("customer name")
	}

	return GetConversationQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetConversationQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationQueryIsNotConstructed)
}

func (q GetConversationQuery) CustomerName() string {
	return q.customerName
}

// ConversationResponse has zero IDs where nothing is selected. A customer who
// never wrote is reported as Idle with a zero UpdatedAt.
type ConversationResponse struct {
	CustomerName string
	Step         conversation.Step
	SelectedItem kernel.ID
	OrderID      kernel.ID
	UpdatedAt    time.Time
}
