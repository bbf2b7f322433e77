package ecs

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// ==============================================
// TypeRegistry - process-wide component-id assignment
// ==============================================

// nextComponentID is the shared, process-wide monotonic counter. All
// Managers in the process draw component ids from this single source, so
// a given component type carries the same ComponentID no matter which
// Manager first instantiates it (spec invariant: "its id is constant for
// the process lifetime").
var nextComponentID atomic.Uint32

// typeIDs caches the ComponentID assigned to each component type after
// its first TypeID[T]() call, so steady-state lookups never touch the
// atomic counter.
var typeIDs sync.Map // map[reflect.Type]ComponentID

// TypeID returns the process-wide ComponentID for T, assigning one via
// atomic fetch-add on first use and caching it for every call after.
// Any two Managers that both store a T agree on its id; a Manager that
// never stores T never installs a pool for it, though its PoolRegistry
// still holds a nil slot at T's id once it stores a type with a higher id.
func TypeID[T any]() ComponentID {
	t := reflect.TypeOf((*T)(nil)).Elem()

	if v, ok := typeIDs.Load(t); ok {
		return v.(ComponentID)
	}

	id := ComponentID(nextComponentID.Add(1) - 1)
	actual, loaded := typeIDs.LoadOrStore(t, id)
	if loaded {
		// Another goroutine won the race to register T first; our id is
		// simply unused. The counter is monotone and never reused, so
		// this cannot collide with any id in use.
		return actual.(ComponentID)
	}
	return id
}
