package ports

// LivePublisher pushes a named event to every connection currently in a room.
// Publishing to a room with no members is a safe no-op: the persisted
// notification row is the fallback delivery path. Implementations never block
// on slow receivers and never surface delivery failures to callers.
type LivePublisher interface {
	Publish(room string, event string, payload any)
}
