package bollywood

import (
	"fmt"
	"os"
	"sync"

	"github.com/lguibr/bollywood/internal/gid"
	"github.com/lguibr/bollywood/internal/readyqueue"
)

// SendStatus is the result of Engine.Send.
type SendStatus int

const (
	// Accepted means the message was copied into the target mailbox.
	Accepted SendStatus = 0
	// Rejected means the Engine is not running, is shutting down, the
	// target actor is dead, or the copy could not be made.
	Rejected SendStatus = -1
	// UnknownActor means target does not refer to a known actor.
	UnknownActor SendStatus = -2
	// MailboxFull means the target mailbox was already at capacity.
	MailboxFull SendStatus = -3
)

// currentActor maps a worker goroutine's id (internal/gid) to the ActorID
// whose handler it is currently running, the Go analogue of cacti.c's
// served_actor[] array indexed via map_thread_to_index/pthread_self.
var currentActor sync.Map

// Self returns the id of the actor whose handler is currently running on
// the calling goroutine. It is undefined behavior to call it from outside
// a running handler.
func Self() ActorID {
	if v, ok := currentActor.Load(gid.Current()); ok {
		return v.(ActorID)
	}
	return 0
}

// Engine is the runtime singleton of one actor system: the worker pool,
// the actor table, the ready-queue and the mutex and two condition
// variables that serialize all of it. It is the Go counterpart of cacti.c's
// thread_pool_t.
type Engine struct {
	cfg config

	mu            sync.Mutex
	workAvailable *sync.Cond
	allDone       *sync.Cond

	table *actorTable
	ready *readyqueue.Queue

	started        bool
	shutdown       bool
	activeJoin     bool
	waitingWorkers int
	workingCount   int
	aliveActors    int

	signalCh chan os.Signal
}

// NewEngine constructs an Engine with the given tunables applied over the
// defaults (POOL_SIZE=3, ACTOR_QUEUE_LIMIT=1024, CAST_LIMIT=1<<20). The
// Engine does not start its workers until Create is called.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		cfg:   cfg,
		table: newActorTable(defaultTableCapacity, cfg.castLimit, cfg.actorQueueLimit),
		ready: readyqueue.New(defaultTableCapacity),
	}
	e.workAvailable = sync.NewCond(&e.mu)
	e.allDone = sync.NewCond(&e.mu)
	return e
}

// Create initializes the actor system: it spawns the fixed-size worker
// pool, creates the first actor with role, and enqueues the bootstrap
// Hello to it from the conventional no-parent id (0). It must be called
// at most once per Engine.
func (e *Engine) Create(role *Role) (ActorID, error) {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return 0, fmt.Errorf("bollywood: engine already created")
	}
	id, ok := e.table.spawn(role)
	if !ok {
		e.mu.Unlock()
		return 0, fmt.Errorf("bollywood: cast limit reached on create")
	}
	e.aliveActors++
	e.started = true
	e.workingCount = e.cfg.poolSize
	e.mu.Unlock()

	for i := 0; i < e.cfg.poolSize; i++ {
		go e.runWorker()
	}

	if e.cfg.handleSignals {
		e.installSignalHandling()
	}

	if status := e.Send(id, Message{Kind: Hello, NBytes: 0, Data: NoParent}); status != Accepted {
		return id, fmt.Errorf("bollywood: failed to enqueue bootstrap hello: status %d", status)
	}
	return id, nil
}

// Send delivers message to target, copying it by value into the target's
// mailbox. See SendStatus for the result codes.
func (e *Engine) Send(target ActorID, message Message) SendStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.shutdown {
		return Rejected
	}

	rec := e.table.get(target)
	if rec == nil {
		return UnknownActor
	}
	if rec.status == dead {
		return Rejected
	}

	wasEmpty := rec.mailbox.len() == 0
	if err := rec.mailbox.push(message); err != nil {
		return MailboxFull
	}

	if rec.scheduling == idle && wasEmpty {
		rec.scheduling = scheduled
		e.ready.PushBack(target)
		if e.waitingWorkers > 0 {
			e.workAvailable.Signal()
		}
	}
	return Accepted
}

// Join blocks the calling goroutine until every worker has exited, then
// releases the Engine's runtime resources. It must be called by a
// non-worker goroutine; first must refer to an actor that exists, or Join
// returns immediately without tearing anything down.
func (e *Engine) Join(first ActorID) {
	e.mu.Lock()
	if int(first) >= e.table.len() {
		e.mu.Unlock()
		fmt.Fprintln(os.Stderr, "bollywood: join: actor with specified id does not exist")
		return
	}

	e.activeJoin = true
	for e.workingCount > 0 {
		e.allDone.Wait()
	}
	e.activeJoin = false
	e.mu.Unlock()

	e.teardown()
}

// runWorker is the scheduler core's worker-pool loop (§4.4): pick a ready
// actor, dispatch exactly one message, update scheduling state, repeat.
func (e *Engine) runWorker() {
	for {
		e.mu.Lock()

		if e.shutdown {
			e.drainLocked()
			return
		}

		e.waitingWorkers++
		for e.ready.Len() == 0 && !e.shutdown {
			e.workAvailable.Wait()
		}
		e.waitingWorkers--

		if e.shutdown {
			e.drainLocked()
			return
		}

		id := e.ready.PopFront()
		rec := e.table.get(id)
		msg := rec.mailbox.pop()
		currentActor.Store(gid.Current(), id)

		checkDead := rec.status == dead || msg.Kind == GoDie
		if rec.mailbox.len() == 0 && checkDead {
			e.aliveActors--
		}

		switch {
		case msg.Kind == GoDie:
			rec.status = dead
			e.mu.Unlock()

		case msg.Kind == Spawn:
			e.handleSpawnLocked(id, msg)

		case msg.Kind == Hello:
			// A no-op unless the role opted into handling it (§4.5):
			// unlike an out-of-range user kind, an out-of-range or unset
			// Hello slot is never fatal.
			handler := rec.role.handlerFor(Hello)
			e.mu.Unlock()
			if handler != nil {
				handler(&rec.state, msg.NBytes, msg.Data)
			}

		case int(msg.Kind) >= 0 && int(msg.Kind) < rec.role.NPrompts:
			handler := rec.role.handlerFor(msg.Kind)
			e.mu.Unlock()
			if handler != nil {
				handler(&rec.state, msg.NBytes, msg.Data)
			}

		default:
			e.mu.Unlock()
			panic(fmt.Sprintf("bollywood: unknown message kind %d dispatched to actor %d", msg.Kind, id))
		}

		e.mu.Lock()
		if rec.mailbox.len() > 0 {
			rec.scheduling = scheduled
			e.ready.PushBack(id)
			if e.waitingWorkers > 0 {
				e.workAvailable.Signal()
			}
		} else {
			rec.scheduling = idle
		}

		if e.aliveActors == 0 {
			e.shutdown = true
			e.workAvailable.Broadcast()
		}
		e.mu.Unlock()
	}
}

// handleSpawnLocked implements the Spawn built-in (§4.5). It is called
// with e.mu held and releases it before returning, mirroring cacti.c's
// handle_spawn_msg.
func (e *Engine) handleSpawnLocked(spawnerID ActorID, msg Message) {
	defer e.mu.Unlock()

	role, ok := msg.Data.(*Role)
	if !ok || role == nil {
		return
	}

	newID, ok := e.table.spawn(role)
	if !ok {
		// CAST_LIMIT reached: silently dropped, per §4.5/§7.
		return
	}
	e.aliveActors++

	rec := e.table.get(newID)
	_ = rec.mailbox.push(Message{Kind: Hello, NBytes: 0, Data: spawnerID})
	rec.scheduling = scheduled
	e.ready.PushBack(newID)
	if e.waitingWorkers > 0 {
		e.workAvailable.Signal()
	}
}

// drainLocked implements the worker loop's exit path (§4.4 step 8,
// "Drain"). It is called with e.mu held and releases it before returning.
// The last worker to exit tears the runtime down itself when no Join is
// waiting; otherwise the waiting Join does it.
func (e *Engine) drainLocked() {
	e.workingCount--
	last := e.workingCount == 0
	if last {
		e.allDone.Signal()
	}
	tearDown := last && !e.activeJoin
	e.mu.Unlock()
	if tearDown {
		e.teardown()
	}
}
