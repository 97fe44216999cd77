package conversationrepo

import (
	"context"
	"errors"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConversationRepository implements ports.ConversationRepository.
type GormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

func (r *GormConversationRepository) Get(ctx context.Context, customerName string) (*conversation.Conversation, error) {
	var dto ConversationDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_name = ?", customerName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", customerName)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the conversation keyed by customer name.
func (r *GormConversationRepository) Save(ctx context.Context, c *conversation.Conversation) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"customer_chat_id", "step", "item_id", "order_id", "updated_at",
		}),
	}).Create(&dto).Error
}
