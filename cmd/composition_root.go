package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/in/ws"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"dispatch/internal/notifier"
	"dispatch/internal/pkg/keyedlock"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one hub, one notifier and one
// keyed lock shared by all lifecycle handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locks      *keyedlock.KeyedLock
	hub        *ws.Hub
	pusher     *notifier.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	hub := ws.NewHub(logger)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      keyedlock.NewKeyedLock(),
		hub:        hub,
		pusher:     notifier.NewNotifier(hub, logger),
		logger:     logger,
	}
}

// Hub exposes the connection registry for the websocket gateway.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// CreateGateway builds the websocket gateway with the configured JWT secret.
func (c *CompositionRoot) CreateGateway() *ws.Gateway {
	return ws.NewGateway(c.hub, ws.NewTokenVerifier(c.config.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.locks, c.pusher)
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignOrderCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDeliveryStatusCommandHandler(f, c.locks, c.pusher)
}

func (c *CompositionRoot) CreateNotifyOrderCreatedCommandHandler() commands.NotifyOrderCreatedCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyOrderCreatedCommandHandler(f, c.pusher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	return commands.NewMarkNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateCleanupNotificationsCommandHandler() commands.CleanupNotificationsCommandHandler {
	return commands.NewCleanupNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetDeliveryPersonOrdersQueryHandler() queries.GetDeliveryPersonOrdersQueryHandler {
	return queries.NewGetDeliveryPersonOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreadCountQueryHandler() queries.GetUnreadCountQueryHandler {
	return queries.NewGetUnreadCountQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCleanupNotificationsCommandHandler(),
		c.config.NotificationRetentionDays,
		c.logger,
	)
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
