package ecs

// ForEach1 invokes fn for every live entity that owns a component of
// type A, in ascending entity-id order (spec §4.5). Adding or removing
// components of the iterated types from within fn is unspecified
// behavior per spec — callers must defer structural mutation to after
// the pass, or call Refresh between passes.
func ForEach1[A any](m *Manager, fn func(Entity, *A)) {
	pa := existingPoolFor[A](&m.pools)
	if pa == nil {
		return
	}
	forEachAlive(m, func(e Entity, idx EntityIndex) {
		if a := pa.get(idx); a != nil {
			fn(e, a)
		}
	})
}

// ForEach2 invokes fn for every live entity that owns components of both
// A and B.
func ForEach2[A, B any](m *Manager, fn func(Entity, *A, *B)) {
	pa := existingPoolFor[A](&m.pools)
	pb := existingPoolFor[B](&m.pools)
	if pa == nil || pb == nil {
		return
	}
	forEachAlive(m, func(e Entity, idx EntityIndex) {
		a := pa.get(idx)
		if a == nil {
			return
		}
		b := pb.get(idx)
		if b == nil {
			return
		}
		fn(e, a, b)
	})
}

// ForEach3 invokes fn for every live entity that owns components of A,
// B, and C.
func ForEach3[A, B, C any](m *Manager, fn func(Entity, *A, *B, *C)) {
	pa := existingPoolFor[A](&m.pools)
	pb := existingPoolFor[B](&m.pools)
	pc := existingPoolFor[C](&m.pools)
	if pa == nil || pb == nil || pc == nil {
		return
	}
	forEachAlive(m, func(e Entity, idx EntityIndex) {
		a := pa.get(idx)
		if a == nil {
			return
		}
		b := pb.get(idx)
		if b == nil {
			return
		}
		c := pc.get(idx)
		if c == nil {
			return
		}
		fn(e, a, b, c)
	})
}

// forEachAlive walks every entity allocated since construction or the
// last Clear — [0, sizeNext) — in ascending EntityTable position order.
// Before any Refresh that is creation order; Refresh's compaction can move
// a later-created entity into a lower position, so afterwards it is
// neither creation order nor DataIndex order. It does not consult
// EntityRecord.Alive: per spec
// invariant 5, a destroyed entity's components "remain queryable ...
// until refresh tears them down", so Destroy is not the membership
// boundary ForEach honors — Refresh is. Membership is therefore decided
// entirely by pool presence, which visit's caller checks.
//
// It snapshots sizeNext up front — spec §5: "ForEach observes a snapshot
// of live entities at the moment of the call; it does not see entities
// destroyed during iteration" (destruction only flips Alive, which this
// loop ignores anyway; what it must not observe is entities *created*
// during the callback, hence capturing the bound before iterating).
func forEachAlive(m *Manager, visit func(Entity, EntityIndex)) {
	bound := m.entities.sizeNext
	for pos := 0; pos < bound; pos++ {
		rec := m.entities.records[pos]
		h := m.handles.records[rec.HandleIndex]
		e := Entity{mgr: m, handleIndex: rec.HandleIndex, version: h.Counter}
		visit(e, rec.DataIndex)
	}
}
