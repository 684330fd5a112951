// Package services provides domain services that orchestrate business logic
// across multiple domain entities in the dispatch system.
//
// The package includes:
//   - NotificationFanout: expands one order lifecycle event into the
//     notifications each interested audience must receive
//
// Domain services stay pure: they coordinate aggregates and value objects
// without touching persistence or transport.
package services
