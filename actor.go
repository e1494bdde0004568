package bollywood

// actorStatus is the liveness of an actor record.
type actorStatus int

const (
	alive actorStatus = iota
	dead
)

// schedulingState prevents an actor from appearing twice in the
// ready-queue, the invariant that enforces one-handler-at-a-time.
type schedulingState int

const (
	idle schedulingState = iota
	scheduled
)

// actorRecord is the runtime's view of one actor: its role, its single
// state slot, liveness, scheduling flag and mailbox. The Engine's table
// owns every actorRecord, one pointer per id; no actorRecord holds a reference to
// another, so growth (table doubling) is a plain slice append.
type actorRecord struct {
	role       *Role
	state      any
	status     actorStatus
	scheduling schedulingState
	mailbox    *mailbox
}

func newActorRecord(role *Role, queueLimit int) *actorRecord {
	return &actorRecord{
		role:       role,
		status:     alive,
		scheduling: idle,
		mailbox:    newMailbox(queueLimit),
	}
}
