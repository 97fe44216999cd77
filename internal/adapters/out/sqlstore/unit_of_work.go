// Package sqlstore persists menu items, orders and conversations with GORM.
//
// SQLite is the default store; Postgres is supported with the same tables.
// All writes go through a GormUnitOfWork. Units of work created by one factory
// share a single writer slot, so their transactions never interleave: a reserve
// of stock and the order line it belongs to commit together, or neither does.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	item, err := uow.MenuRepository().Get(ctx, itemID)
//	...
//	return uow.Commit(ctx)
package sqlstore

import (
	"context"

	"buttery/internal/adapters/out/sqlstore/conversationrepo"
	"buttery/internal/adapters/out/sqlstore/menurepo"
	"buttery/internal/adapters/out/sqlstore/orderrepo"
	"buttery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates units of work that share one writer slot.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	writeSlot chan struct{}
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		writeSlot: make(chan struct{}, 1),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		writeSlot: f.writeSlot,
	}
}

// GormUnitOfWork is a single write transaction. It is not safe for concurrent use;
// create one per command.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	writeSlot chan struct{}
}

// Begin waits for the writer slot and opens a transaction. A second Begin on an
// open unit of work is a no-op. If ctx ends while waiting, ctx.Err() is returned.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	select {
	case uow.writeSlot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		<-uow.writeSlot
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits and releases the writer slot.
// Without an open transaction it returns gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.release()
	return err
}

// Rollback discards the transaction and releases the writer slot.
// Without an open transaction it returns gorm.ErrInvalidTransaction, so it is
// safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.release()
	return err
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) ConversationRepository() ports.ConversationRepository {
	return conversationrepo.NewGormConversationRepository(uow.conn())
}

// conn returns the open transaction, or the plain connection outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) release() {
	uow.tx = nil
	<-uow.writeSlot
}
