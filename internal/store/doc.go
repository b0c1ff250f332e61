// Package store persists the operator's session credential.
//
// The storage backend is BoltDB, an embedded key-value store. The only
// durable state frontdesk keeps is one opaque access token under a
// fixed key; it survives process restarts and is removed only by an
// explicit logout. Nothing else is cached locally: the collections on
// the console are re-read from the clinic service every time.
package store
