package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

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

// AssignmentRepositoryIntegrationTestSuite exercises the GORM assignment
// repository against a real PostgreSQL database.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *assignmentrepo.GormAssignmentRepository
}

// SetupSuite starts the PostgreSQL container, connects and migrates the schema.
func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&assignmentrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.repo = assignmentrepo.NewGormAssignmentRepository(db, noopTracker{})
}

// SetupTest truncates the assignments table before each test.
func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE assignments").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestAddAndGetByOrder verifies the aggregate round-trips with all lifecycle
// timestamps intact.
func (suite *AssignmentRepositoryIntegrationTestSuite) TestAddAndGetByOrder() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	agg, err := assignment.NewAssignment(100, 3, now)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, agg)
	suite.Require().NoError(err)

	restored, err := suite.repo.GetByOrder(ctx, 100)
	suite.Require().NoError(err)
	suite.Equal(int64(100), restored.OrderID())
	suite.Equal(int64(3), restored.DeliveryPersonID())
	suite.Equal(assignment.ToDelivery, restored.Status())
	suite.Require().NotNil(restored.ConfirmedAt())
	suite.True(restored.ConfirmedAt().Equal(now))
	suite.Nil(restored.PickedUpAt())
	suite.Nil(restored.DeliveredAt())
	suite.Nil(restored.CanceledAt())
}

// TestAdd_DuplicateOrderFails verifies the one-assignment-per-order invariant
// is enforced at the database level.
func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderFails() {
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := assignment.NewAssignment(100, 3, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, first))

	second, err := assignment.NewAssignment(100, 4, now)
	suite.Require().NoError(err)
	err = suite.repo.Add(ctx, second)
	suite.Require().Error(err, "Second assignment for the same order should fail")
}

// TestUpdate_PersistsTransition verifies a status transition and its stamped
// timestamp survive the round trip.
func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	assignedAt := time.Now().UTC().Truncate(time.Microsecond)
	pickedUpAt := assignedAt.Add(10 * time.Minute)

	agg, err := assignment.NewAssignment(100, 3, assignedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, agg))

	applied, err := agg.Transition(3, assignment.InDelivery, pickedUpAt)
	suite.Require().NoError(err)
	suite.Require().True(applied)

	err = suite.repo.Update(ctx, agg)
	suite.Require().NoError(err)

	restored, err := suite.repo.GetByOrder(ctx, 100)
	suite.Require().NoError(err)
	suite.Equal(assignment.InDelivery, restored.Status())
	suite.Require().NotNil(restored.PickedUpAt())
	suite.True(restored.PickedUpAt().Equal(pickedUpAt))
	suite.Require().NotNil(restored.ConfirmedAt())
	suite.True(restored.ConfirmedAt().Equal(assignedAt), "ConfirmedAt should not move on later transitions")
}

// TestUpdate_MissingRowReportsNotFound verifies updating an absent assignment
// surfaces gorm.ErrRecordNotFound.
func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_MissingRowReportsNotFound() {
	ctx := context.Background()

	agg, err := assignment.NewAssignment(999, 3, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, agg)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByOrder_NotFound verifies the unassigned state maps to the domain
// not-found error.
func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetByOrder_NotFound() {
	_, err := suite.repo.GetByOrder(context.Background(), 404)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestDeleteByOrder verifies deletion reports whether a row was removed.
func (suite *AssignmentRepositoryIntegrationTestSuite) TestDeleteByOrder() {
	ctx := context.Background()

	agg, err := assignment.NewAssignment(100, 3, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, agg))

	removed, err := suite.repo.DeleteByOrder(ctx, 100)
	suite.Require().NoError(err)
	suite.True(removed, "Existing assignment should be removed")

	removed, err = suite.repo.DeleteByOrder(ctx, 100)
	suite.Require().NoError(err)
	suite.False(removed, "Deleting an unassigned order is a silent no-op")
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
