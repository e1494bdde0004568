package bollywood

import "github.com/lguibr/bollywood/internal/actorid"

// ActorID is a dense, non-negative actor identifier assigned monotonically
// from zero at spawn time. Identifiers are never reused within one Engine.
type ActorID = actorid.ActorID

// NoParent is the conventional spawner id carried by the bootstrap Hello
// message that Engine.Create sends to the first actor.
const NoParent = actorid.NoParent
