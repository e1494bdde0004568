package bollywood

// Handler processes exactly one message for an actor. state is a pointer
// to the actor's single mutable state slot: the handler may read and
// write through it across calls, and the runtime never interprets it.
// Handlers run to completion with no runtime lock held and with no
// preemption. The worker loop does not recover a panicking handler: the
// panic ends the whole process.
type Handler func(state *any, nbytes int, data any)

// Role is an immutable description of an actor's behavior: a table of
// handlers indexed by message Kind. NPrompts bounds the valid range of
// user-defined kinds this role accepts; dispatching a user-defined kind
// outside [0, NPrompts) is a fatal runtime error. Hello, GoDie and Spawn
// are handled whatever NPrompts is.
type Role struct {
	NPrompts int
	Prompts  []Handler
}

// handlerFor returns the handler registered for kind, or nil if kind is
// out of range or the role left that slot unset (which is a legal no-op,
// matching Hello's "if the role defines a handler... otherwise a no-op").
func (r *Role) handlerFor(kind Kind) Handler {
	if int(kind) < 0 || int(kind) >= r.NPrompts || int(kind) >= len(r.Prompts) {
		return nil
	}
	return r.Prompts[kind]
}
