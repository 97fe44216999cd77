package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"buttery/internal/adapters/out/sqlstore"
	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	dumplings  int64 = 1
	noodles    int64 = 2
	egg        int64 = 3
	creamRoll  int64 = 4
	aliceChat  int64 = 1001
	bobChat    int64 = 2002
	adminChatA int64 = 9001
	adminChatB int64 = 9002
)

type menuRow struct {
	name     string
	quantity int
	price    string
}

var defaultMenu = []menuRow{
	{"Chili Oil Dumplings", 20, "3.00"},
	{"Scallion Oil Noodles", 15, "2.00"},
	{"Egg (for noodles)", 15, "0.50"},
	{"Mandarin Fresh Cream Roll", 10, "2.50"},
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW { return f() }

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW { return f() }

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type fixture struct {
	db       *gorm.DB
	store    *sqlstore.GormUnitOfWorkFactory
	logger   *slog.Logger
	notifier *MockNotifier
}

func newFixture(t *testing.T, rows ...menuRow) *fixture {
	t.Helper()

	db, err := sqlstore.OpenSQLite(sqlstore.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(t.Context(), db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	if len(rows) == 0 {
		rows = defaultMenu
	}
	for _, r := range rows {
		require.NoError(t, db.Exec("INSERT INTO menu (name, quantity, price) VALUES (?, ?, ?)",
			r.name, r.quantity, r.price).Error)
	}

	return &fixture{
		db:       db,
		store:    sqlstore.NewGormUnitOfWorkFactory(db),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifier: new(MockNotifier),
	}
}

func (f *fixture) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return f.store.CreateGorm() })
}

func (f *fixture) menuUoW() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW { return f.store.CreateGorm() })
}

func (f *fixture) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return f.store.CreateGorm() })
}

func (f *fixture) stock(t *testing.T, itemID int64) int {
	t.Helper()
	var quantity int
	require.NoError(t, f.db.Raw("SELECT quantity FROM menu WHERE id = ?", itemID).Scan(&quantity).Error)
	return quantity
}

func (f *fixture) countOrders(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Raw("SELECT COUNT(*) FROM orders").Scan(&n).Error)
	return n
}

func (f *fixture) step(t *testing.T, customer string) conversation.Step {
	t.Helper()
	uow := f.store.CreateGorm()
	c, err := uow.ConversationRepository().Get(t.Context(), customer)
	require.NoError(t, err)
	return c.Step()
}

func (f *fixture) loadOrder(t *testing.T, id kernel.ID) *order.Order {
	t.Helper()
	o, err := f.store.CreateGorm().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return o
}

// addOrder stores an order in the given status with its lines, bypassing the flow.
func (f *fixture) addOrder(
	t *testing.T,
	customer string,
	status order.Status,
	createdAt time.Time,
	lines map[int64]int,
) *order.Order {
	t.Helper()

	o, err := order.NewOrder(customer, aliceChat, createdAt)
	require.NoError(t, err)
	for item, qty := range lines {
		require.NoError(t, o.AddLine(kernel.MustNewID(item), kernel.MustQuantity(qty)))
	}
	require.NoError(t, o.ChangeStatus(status, false))

	uow := f.store.CreateGorm()
	require.NoError(t, uow.Begin(t.Context()))
	require.NoError(t, uow.OrderRepository().Add(t.Context(), o))
	require.NoError(t, uow.Commit(t.Context()))
	return o
}

func (f *fixture) saveConversation(t *testing.T, c *conversation.Conversation) {
	t.Helper()
	uow := f.store.CreateGorm()
	require.NoError(t, uow.Begin(t.Context()))
	require.NoError(t, uow.ConversationRepository().Save(t.Context(), c))
	require.NoError(t, uow.Commit(t.Context()))
}

func (f *fixture) startOrder(ctx context.Context, customer string, chatID int64) (commands.StartOrderResult, error) {
	cmd, err := commands.NewStartOrderCommand(customer, chatID)
	if err != nil {
		return commands.StartOrderResult{}, err
	}
	return commands.NewStartOrderCommandHandler(f.uow()).Handle(ctx, cmd)
}

func (f *fixture) selectItem(ctx context.Context, customer string, chatID int64, name string) (commands.Choice, error) {
	cmd, err := commands.NewSelectItemCommand(customer, chatID, name)
	if err != nil {
		return commands.Choice{}, err
	}
	return commands.NewSelectItemCommandHandler(f.uow()).Handle(ctx, cmd)
}

func (f *fixture) submitQuantity(
	ctx context.Context,
	customer string,
	chatID int64,
	text string,
) (commands.SubmitQuantityResult, error) {
	cmd, err := commands.NewSubmitQuantityCommand(customer, chatID, text)
	if err != nil {
		return commands.SubmitQuantityResult{}, err
	}
	return commands.NewSubmitQuantityCommandHandler(f.uow(), f.logger).Handle(ctx, cmd)
}

func (f *fixture) confirmOrMore(
	ctx context.Context,
	customer string,
	chatID int64,
	more bool,
) (commands.ConfirmOrMoreResult, error) {
	cmd, err := commands.NewConfirmOrMoreCommand(customer, chatID, more)
	if err != nil {
		return commands.ConfirmOrMoreResult{}, err
	}
	return commands.NewConfirmOrMoreCommandHandler(f.uow(), f.logger).Handle(ctx, cmd)
}

// pick runs one select-item and submit-quantity round for a customer whose flow
// waits for an item.
func (f *fixture) pick(t *testing.T, customer string, chatID int64, name, quantity string) commands.SubmitQuantityResult {
	t.Helper()
	_, err := f.selectItem(t.Context(), customer, chatID, name)
	require.NoError(t, err)
	result, err := f.submitQuantity(t.Context(), customer, chatID, quantity)
	require.NoError(t, err)
	return result
}
