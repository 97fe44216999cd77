package cmd

import (
	"log/slog"

	apihttp "buttery/internal/adapters/in/http"
	"buttery/internal/adapters/out/sqlstore"
	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/application/usecases/queries"
	"buttery/internal/core/ports"
	"buttery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *sqlstore.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: sqlstore.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) menuUoW() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSelectItemCommandHandler() commands.SelectItemCommandHandler {
	return commands.NewSelectItemCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSubmitQuantityCommandHandler() commands.SubmitQuantityCommandHandler {
	return commands.NewSubmitQuantityCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateConfirmOrMoreCommandHandler() commands.ConfirmOrMoreCommandHandler {
	return commands.NewConfirmOrMoreCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateSubmitPaymentProofCommandHandler() commands.SubmitPaymentProofCommandHandler {
	return commands.NewSubmitPaymentProofCommandHandler(c.uow(), c.notifier, c.config.AdminChatIDs, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoW(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRestockMenuItemCommandHandler() commands.RestockMenuItemCommandHandler {
	return commands.NewRestockMenuItemCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateReduceMenuItemStockCommandHandler() commands.ReduceMenuItemStockCommandHandler {
	return commands.NewReduceMenuItemStockCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateSeedMenuCommandHandler() commands.SeedMenuCommandHandler {
	return commands.NewSeedMenuCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateReleaseExpiredReservationsCommandHandler() commands.ReleaseExpiredReservationsCommandHandler {
	return commands.NewReleaseExpiredReservationsCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSelectableItemsQueryHandler() queries.GetSelectableItemsQueryHandler {
	return queries.NewGetSelectableItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerStatusQueryHandler() queries.GetCustomerStatusQueryHandler {
	return queries.NewGetCustomerStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConversationQueryHandler() queries.GetConversationQueryHandler {
	return queries.NewGetConversationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLinesQueryHandler() queries.GetOrderLinesQueryHandler {
	return queries.NewGetOrderLinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(apihttp.Handlers{
		StartOrder:         c.CreateStartOrderCommandHandler(),
		SelectItem:         c.CreateSelectItemCommandHandler(),
		SubmitQuantity:     c.CreateSubmitQuantityCommandHandler(),
		ConfirmOrMore:      c.CreateConfirmOrMoreCommandHandler(),
		SubmitPaymentProof: c.CreateSubmitPaymentProofCommandHandler(),
		TransitionStatus:   c.CreateTransitionOrderStatusCommandHandler(),
		RestockMenuItem:    c.CreateRestockMenuItemCommandHandler(),
		ReduceMenuItem:     c.CreateReduceMenuItemStockCommandHandler(),
		GetMenu:            c.CreateGetMenuQueryHandler(),
		GetSelectableItems: c.CreateGetSelectableItemsQueryHandler(),
		GetCustomerStatus:  c.CreateGetCustomerStatusQueryHandler(),
		GetConversation:    c.CreateGetConversationQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrderLines:      c.CreateGetOrderLinesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReleaseExpiredReservationsCommandHandler(),
		c.config.ReservationTTL,
		c.config.ReservationSweepSchedule,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
