package ecs

// Entity is the opaque, copyable handle users hold to reference a
// specific entity: (manager, handle index, captured version). The zero
// value is the null handle — Version == NullVersion — and always fails
// Validate.
type Entity struct {
	mgr         *Manager
	handleIndex HandleIndex
	version     Version
}

// Validate reports whether this handle still names a live entity: the
// HandleTable row it points at must still carry the exact version this
// handle captured. A stale handle (its entity died and Refresh ran), a
// null handle, or a handle from a different Manager all return false.
func (e Entity) Validate() bool {
	if e.mgr == nil || e.version == NullVersion {
		return false
	}
	return e.mgr.handles.records[e.handleIndex].Counter == e.version
}

// Destroy marks the entity dead. Per spec, this only flips the
// EntityRecord's Alive flag — version bump and component teardown are
// deferred to the next Refresh. Destroying an already-dead (but not yet
// refreshed) entity is a no-op, not an error.
func (e Entity) Destroy() {
	if !e.Validate() {
		panicInvalidHandle("Destroy")
	}
	pos := e.mgr.handles.records[e.handleIndex].EntityIndex
	rec := e.mgr.entities.records[pos]
	if !rec.Alive {
		return // already destroyed, not yet refreshed: no-op
	}
	rec.Alive = false
	e.mgr.entities.records[pos] = rec
	e.mgr.aliveCount--
}

// dataIndex validates e and returns the DataIndex its current
// EntityTable slot carries — the key every Pool uses to address this
// entity's components. Panics via panicInvalidHandle if e does not
// validate; every exported component accessor goes through this.
func (e Entity) dataIndex(op string) EntityIndex {
	if !e.Validate() {
		panicInvalidHandle(op)
	}
	pos := e.mgr.handles.records[e.handleIndex].EntityIndex
	return e.mgr.entities.records[pos].DataIndex
}

// ==============================================
// Generic component operations
//
// Go has no generic methods, so operations parameterised on a component
// type are free functions taking the Entity first, mirroring the shape
// lazyecs uses for Get[T]/Set[T] in the example pack.
// ==============================================

// Add constructs v as e's component of type T and returns a reference to
// the stored copy. Panics if e already owns a T (spec §7: duplicate
// AddComponent is a precondition violation).
func Add[T any](e Entity, v T) *T {
	idx := e.dataIndex("Add")
	pool := poolFor[T](&e.mgr.pools, "Add")
	if pool.has(idx) {
		panicComponentExists("Add")
	}
	return pool.add(idx, v)
}

// Get returns a reference to e's component of type T. Panics if e does
// not own one (spec §7: GetComponent on a missing component is fatal).
func Get[T any](e Entity) *T {
	idx := e.dataIndex("Get")
	pool := existingPoolFor[T](&e.mgr.pools)
	if pool == nil {
		panicComponentNotFound("Get")
	}
	v := pool.get(idx)
	if v == nil {
		panicComponentNotFound("Get")
	}
	return v
}

// Has reports whether e owns a component of type T.
func Has[T any](e Entity) bool {
	idx := e.dataIndex("Has")
	pool := existingPoolFor[T](&e.mgr.pools)
	return pool != nil && pool.has(idx)
}

// HasAll2 reports whether e owns components of both A and B.
func HasAll2[A, B any](e Entity) bool {
	return Has[A](e) && Has[B](e)
}

// HasAll3 reports whether e owns components of A, B, and C.
func HasAll3[A, B, C any](e Entity) bool {
	return Has[A](e) && Has[B](e) && Has[C](e)
}

// Remove removes e's component of type T. No-op (idempotent) if e does
// not own one — spec §7 makes RemoveComponent idempotent by design.
func Remove[T any](e Entity) {
	idx := e.dataIndex("Remove")
	pool := existingPoolFor[T](&e.mgr.pools)
	if pool == nil {
		return
	}
	pool.remove(idx)
}

// RemoveAll2 removes e's components of both A and B, independently
// idempotent per type.
func RemoveAll2[A, B any](e Entity) {
	Remove[A](e)
	Remove[B](e)
}
