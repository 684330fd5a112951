package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/orderevent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ any, _ any) {}

// NotificationRepositoryIntegrationTestSuite exercises the GORM notification
// repository against a real PostgreSQL database.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *notificationrepo.GormNotificationRepository
}

// SetupSuite starts the PostgreSQL container, connects and migrates the schema.
func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&notificationrepo.NotificationDTO{})
	suite.Require().NoError(err)

	suite.repo = notificationrepo.NewGormNotificationRepository(db, noopTracker{})
}

// SetupTest truncates the notifications table before each test.
func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE notifications").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestAdd_PersistsAudienceColumns verifies admin rows are stored with a null
// audience id and member rows with their id.
func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_PersistsAudienceColumns() {
	admin := suite.addNotification(notification.NewAdminAudience(), false, time.Now().UTC())
	customerAudience, err := notification.NewCustomerAudience(7)
	suite.Require().NoError(err)
	customer := suite.addNotification(customerAudience, false, time.Now().UTC())

	var adminID *int64
	err = suite.db.Raw("SELECT audience_id FROM notifications WHERE id = ?", admin.ID()).Scan(&adminID).Error
	suite.Require().NoError(err)
	suite.Nil(adminID, "Admin rows carry a null audience id")

	var customerID *int64
	err = suite.db.Raw("SELECT audience_id FROM notifications WHERE id = ?", customer.ID()).Scan(&customerID).Error
	suite.Require().NoError(err)
	suite.Require().NotNil(customerID)
	suite.Equal(int64(7), *customerID)
}

// TestMarkRead verifies a single notification can be marked read only by its
// own audience, and only once.
func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkRead() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	customerAudience, err := notification.NewCustomerAudience(7)
	suite.Require().NoError(err)
	row := suite.addNotification(customerAudience, false, now)

	// Foreign audience cannot mark it
	otherAudience, err := notification.NewCustomerAudience(8)
	suite.Require().NoError(err)
	updated, err := suite.repo.MarkRead(ctx, row.ID(), otherAudience, now)
	suite.Require().NoError(err)
	suite.Equal(int64(0), updated, "Foreign audience should update nothing")

	// Owner marks it read
	updated, err = suite.repo.MarkRead(ctx, row.ID(), customerAudience, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), updated)

	// Second attempt is a no-op
	updated, err = suite.repo.MarkRead(ctx, row.ID(), customerAudience, now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(0), updated, "Already-read notification should update nothing")
}

// TestMarkManyRead verifies batch marking skips foreign and already-read ids.
func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkManyRead() {
	ctx := context.Background()
	now := time.Now().UTC()

	deliveryAudience, err := notification.NewDeliveryPersonAudience(3)
	suite.Require().NoError(err)
	customerAudience, err := notification.NewCustomerAudience(7)
	suite.Require().NoError(err)

	mine1 := suite.addNotification(deliveryAudience, false, now)
	mine2 := suite.addNotification(deliveryAudience, true, now)
	foreign := suite.addNotification(customerAudience, false, now)

	updated, err := suite.repo.MarkManyRead(
		ctx,
		[]uuid.UUID{mine1.ID(), mine2.ID(), foreign.ID()},
		deliveryAudience,
		now,
	)
	suite.Require().NoError(err)
	suite.Equal(int64(1), updated, "Only the owned unread notification should be updated")

	updated, err = suite.repo.MarkManyRead(ctx, nil, deliveryAudience, now)
	suite.Require().NoError(err)
	suite.Equal(int64(0), updated, "Empty id list is a no-op")
}

// TestMarkAllRead verifies the bulk update is scoped to one audience.
func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkAllRead() {
	ctx := context.Background()
	now := time.Now().UTC()

	admin := notification.NewAdminAudience()
	customerAudience, err := notification.NewCustomerAudience(7)
	suite.Require().NoError(err)

	suite.addNotification(admin, false, now)
	suite.addNotification(admin, false, now)
	suite.addNotification(admin, true, now)
	suite.addNotification(customerAudience, false, now)

	updated, err := suite.repo.MarkAllRead(ctx, admin, now)
	suite.Require().NoError(err)
	suite.Equal(int64(2), updated, "Only the admin's unread notifications should be updated")

	var customerUnread int64
	err = suite.db.Raw(
		"SELECT COUNT(*) FROM notifications WHERE audience_type = 'customer' AND is_read = FALSE",
	).Scan(&customerUnread).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), customerUnread, "Other audiences must be untouched")
}

// TestDeleteReadBefore verifies retention cleanup removes only old read rows.
func (suite *NotificationRepositoryIntegrationTestSuite) TestDeleteReadBefore() {
	ctx := context.Background()
	now := time.Now().UTC()
	old := now.Add(-48 * time.Hour)

	admin := notification.NewAdminAudience()
	suite.addNotification(admin, true, old)  // old and read: removed
	suite.addNotification(admin, false, old) // old but unread: kept
	suite.addNotification(admin, true, now)  // read but recent: kept

	removed, err := suite.repo.DeleteReadBefore(ctx, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	var remaining int64
	err = suite.db.Raw("SELECT COUNT(*) FROM notifications").Scan(&remaining).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), remaining)
}

// addNotification persists one notification row for the given audience.
func (suite *NotificationRepositoryIntegrationTestSuite) addNotification(
	audience notification.Audience,
	read bool,
	createdAt time.Time,
) *notification.Notification {
	row, err := notification.NewNotification(
		audience,
		"notification.order.statusChanged",
		notification.Payload{OrderNumber: "ORD-100", StatusKey: "in_delivery"},
		orderevent.TypeStatusChanged,
		100,
		createdAt,
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), row)
	suite.Require().NoError(err)

	if read {
		_, err = suite.repo.MarkRead(context.Background(), row.ID(), audience, createdAt)
		suite.Require().NoError(err)
	}

	return row
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
