// Package actorid defines the dense actor identifier type shared by the
// ready-queue and the runtime core, kept in its own leaf package so that
// internal/readyqueue does not need to import the root bollywood package.
package actorid

// ActorID is a dense, non-negative identifier assigned monotonically from
// zero at spawn time. Identifiers are never reused within one Engine.
type ActorID uint64

// NoParent is the conventional spawner id used for the bootstrap HELLO sent
// to the first actor created by Engine.Create.
const NoParent ActorID = 0
