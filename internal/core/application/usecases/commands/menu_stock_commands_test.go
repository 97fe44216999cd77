package commands_test

import (
	"context"
	"errors"
	"testing"

	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/ports"
	"buttery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.Item)
	return item, args.Error(1)
}

func (m *MockMenuRepository) GetByName(_ context.Context, _ string) (*menu.Item, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMenuRepository) GetAll(_ context.Context) ([]*menu.Item, error) {
	return nil, errors.New("not implemented in mock")
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

func TestRestockMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item, err := menu.RestoreItem(kernel.MustNewID(dumplings), "Chili Oil Dumplings", 2, kernel.MustMoney("3"))
	require.NoError(t, err)
	cmd, err := commands.NewRestockMenuItemCommand(item.ID(), 40)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(repo).Once(),
		repo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(i *menu.Item) bool { return i.Quantity() == 40 })).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestockMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRestockMenuItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRestockMenuItemCommand(kernel.MustNewID(dumplings), 5)
	require.NoError(t, err)

	uow := new(MockMenuUoW)
	factory := new(MockMenuUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(context.DeadlineExceeded).Once(),
	)

	h := commands.NewRestockMenuItemCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), context.DeadlineExceeded)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRestockMenuItemCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	item, err := menu.RestoreItem(kernel.MustNewID(dumplings), "Chili Oil Dumplings", 2, kernel.MustMoney("3"))
	require.NoError(t, err)
	cmd, err := commands.NewRestockMenuItemCommand(item.ID(), 0)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(repo).Once(),
		repo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		repo.On("Update", ctx, item).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestockMenuItemCommandHandler(factory)
	require.EqualError(t, h.Handle(ctx, cmd), "disk full")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewRestockMenuItemCommand_Invalid(t *testing.T) {
	_, err := commands.NewRestockMenuItemCommand(kernel.ID{}, -1)

	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMenuStockCommands_OnStore(t *testing.T) {
	t.Run("should overwrite stock, zero included", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewRestockMenuItemCommand(kernel.MustNewID(noodles), 0)
		require.NoError(t, err)

		require.NoError(t, commands.NewRestockMenuItemCommandHandler(f.menuUoW()).Handle(t.Context(), cmd))

		assert.Equal(t, 0, f.stock(t, noodles))
	})

	t.Run("should reduce stock down to zero at most", func(t *testing.T) {
		f := newFixture(t)
		h := commands.NewReduceMenuItemStockCommandHandler(f.menuUoW())

		cmd, err := commands.NewReduceMenuItemStockCommand(kernel.MustNewID(creamRoll), 4)
		require.NoError(t, err)
		require.NoError(t, h.Handle(t.Context(), cmd))
		assert.Equal(t, 6, f.stock(t, creamRoll))

		cmd, err = commands.NewReduceMenuItemStockCommand(kernel.MustNewID(creamRoll), 100)
		require.NoError(t, err)
		require.NoError(t, h.Handle(t.Context(), cmd))
		assert.Equal(t, 0, f.stock(t, creamRoll))
	})

	t.Run("should reject non-positive reductions", func(t *testing.T) {
		_, err := commands.NewReduceMenuItemStockCommand(kernel.MustNewID(egg), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report unknown items", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewRestockMenuItemCommand(kernel.MustNewID(99), 3)
		require.NoError(t, err)

		err = commands.NewRestockMenuItemCommandHandler(f.menuUoW()).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
