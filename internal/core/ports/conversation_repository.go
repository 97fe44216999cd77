package ports

import (
	"context"

	"buttery/internal/core/domain/model/conversation"
)

type ConversationRepository interface {
	// Get returns the customer's conversation or an errs.ObjectNotFoundError.
	Get(ctx context.Context, customerName string) (*conversation.Conversation, error)

	// Save inserts or overwrites the customer's conversation.
	Save(ctx context.Context, c *conversation.Conversation) error
}
