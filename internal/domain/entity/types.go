package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

const (
	// NoEntity is the zero id, never assigned
	NoEntity EntityID = 0

	// BodyID is the id of the single controllable body in a world
	BodyID EntityID = 1

	// SentryOwner marks projectiles fired by any sentry
	SentryOwner EntityID = math.MaxUint32
)

// firstDynamicID is where projectile and sentry ids start
const firstDynamicID EntityID = 2
