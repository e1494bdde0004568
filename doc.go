// Package bollywood is a lightweight in-process actor runtime: isolated
// computational entities (actors) that communicate exclusively by
// asynchronous message passing, dispatched by a fixed-size worker pool.
//
// An Engine owns a growable actor table, a bounded mailbox per actor and
// a global ready-queue; a fixed number of worker goroutines multiplex the
// live actor population, guaranteeing that at most one handler per actor
// runs at any instant. Three message kinds are reserved by the runtime:
// Hello, GoDie and Spawn; everything else is user-defined.
package bollywood
