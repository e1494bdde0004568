package bollywood

// Kind identifies the meaning of a Message. Values below FirstUserKind are
// reserved by the runtime; everything else is defined by the client.
type Kind int

const (
	// Hello is delivered automatically to every newly spawned actor, with
	// Data set to the spawner's ActorID and NBytes zero.
	Hello Kind = 0
	// GoDie flips the receiving actor's status to dead. No user handler
	// runs for it; see Role.Prompts.
	GoDie Kind = 1
	// Spawn carries a *Role in Data and asks the runtime to create a new
	// actor of that role.
	Spawn Kind = 2

	// FirstUserKind is the lowest Kind value a client may define a
	// handler for.
	FirstUserKind Kind = 3
)

// Message is an immutable record copied by value into a mailbox on Send.
// The runtime does not own, copy, or interpret the payload referenced by
// Data, except when Kind is Spawn, where Data must be a *Role.
type Message struct {
	Kind   Kind
	NBytes int
	Data   any
}
