// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-order locking where
// the operation mutates an assignment, transaction management, and a
// best-effort live push strictly after commit.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/orderevent"
	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// The assignment mutation and its fanned-out notification rows are written in
// one transaction, so a crash can never leave the assignment updated with the
// notifications absent.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// LifecycleUoW manages transactions for the lifecycle commands that touch
	// the assignment, the order mirror, and the notification rows together.
	LifecycleUoW interface {
		TxManager
		AssignmentRepoFactory
		OrderRepoFactory
		NotificationRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// NotificationUoW manages transactions for notification-only operations
	// (read-state updates and retention cleanup).
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// LivePusher delivers an event and its persisted notifications to the live
// rooms of the addressed audiences. Implementations are best-effort: handlers
// call Push only after a successful commit and never inspect the outcome.
type LivePusher interface {
	Push(event orderevent.Event, notifications []*notification.Notification)
}
