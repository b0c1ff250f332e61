// Package core is the state-synchronization and mutation engine behind
// the frontdesk console.
//
// The engine owns three in-memory collections (patients, doctors,
// appointments) in a [State], re-converges them against the clinic
// service with [Syncer.Refresh], and funnels every write through a
// [Dispatcher] operation that issues exactly one service call followed
// by one full refresh. [Gate] decides, from the persisted session
// slot alone, whether the console may run at all.
//
// Failure policy: a failed refresh or mutation is written to the log
// and otherwise swallowed; the collections keep their last fully
// consistent snapshot rather than going blank or partially updating.
// The one exception is login, whose errors reach the operator.
//
// The [State] is not synchronized and must stay confined to one
// goroutine. Network work may run elsewhere: [Syncer.Fetch] and the
// [Dispatcher] operations touch only the gateway and hand back a
// [Snapshot], which the owning goroutine applies with [State.Apply].
// There is no cross-operation ordering guarantee beyond what the
// caller serializes itself.
package core
