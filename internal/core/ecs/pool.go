package ecs

import "log"

// closer is implemented by component types that own a resource needing
// explicit teardown (the scripting package's Script component wraps a
// Lua VM this way). Pool.remove and Pool.virtualRemove call Close before
// recycling the backing slot.
type closer interface {
	Close() error
}

// poolEraser is the type-erased face of a Pool[T], used by Manager.Refresh
// to sweep a dead entity's components without knowing any T at the call
// site (spec §4.1/§9).
type poolEraser interface {
	virtualRemove(EntityIndex)
	has(EntityIndex) bool
}

// Pool stores components of a single type T in a contiguous backing
// buffer, indexed indirectly through an offsets table keyed by
// EntityIndex. Insertion, removal, and lookup are all O(1); removal
// leaves the dense buffer's other live elements untouched, trading
// iteration-by-pool-order for insertion stability (spec §4.1 "why the
// design").
type Pool[T any] struct {
	buffer    []T
	offsets   []uint32 // EntityIndex -> slot in buffer, or invalidOffset
	freeSlots []uint32 // FIFO queue of vacated buffer slots
}

// NewPool creates an empty pool with capacity for at least one element.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		buffer: make([]T, 0, 1),
	}
}

// newPoolWithCapacity creates an empty pool pre-sized to hold at least
// capacity elements before the backing buffer must grow once. Used by
// poolFor to honor ManagerConfig.InitialPoolCapacity; capacity <= 0
// falls back to NewPool's single-element default.
func newPoolWithCapacity[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		return NewPool[T]()
	}
	return &Pool[T]{
		buffer: make([]T, 0, capacity),
	}
}

// add constructs v in place at a pool slot and records the slot in
// offsets[id]. Precondition (enforced by the Manager, not here): id does
// not already own a T.
func (p *Pool[T]) add(id EntityIndex, v T) *T {
	idx := uint32(id)
	if uint32(len(p.offsets)) <= idx {
		grown := make([]uint32, idx+1)
		copy(grown, p.offsets)
		for i := len(p.offsets); i < len(grown); i++ {
			grown[i] = invalidOffset
		}
		p.offsets = grown
	}

	slot := p.allocSlot()
	p.buffer[slot] = v
	p.offsets[idx] = slot
	return &p.buffer[slot]
}

// allocSlot returns a buffer slot for a new element, reusing the oldest
// freed slot (FIFO) before growing the buffer. Growth doubles (size+1) so
// repeated single-element churn does not reallocate every insert.
func (p *Pool[T]) allocSlot() uint32 {
	if len(p.freeSlots) > 0 {
		slot := p.freeSlots[0]
		p.freeSlots = p.freeSlots[1:]
		return slot
	}

	if len(p.buffer) == cap(p.buffer) {
		newCap := 2 * (len(p.buffer) + 1)
		grown := make([]T, len(p.buffer), newCap)
		copy(grown, p.buffer)
		p.buffer = grown
	}
	p.buffer = p.buffer[:len(p.buffer)+1]
	return uint32(len(p.buffer) - 1)
}

// remove runs T's destructor (if it implements closer) and frees the
// backing slot. No-op if id is absent — idempotent per spec §4.1/§7.
func (p *Pool[T]) remove(id EntityIndex) {
	idx := uint32(id)
	if idx >= uint32(len(p.offsets)) || p.offsets[idx] == invalidOffset {
		return
	}

	slot := p.offsets[idx]
	p.closeSlot(slot)
	var zero T
	p.buffer[slot] = zero
	p.freeSlots = append(p.freeSlots, slot)
	p.offsets[idx] = invalidOffset
}

// virtualRemove implements poolEraser for Manager.Refresh's type-erased
// sweep of a dead entity's components.
func (p *Pool[T]) virtualRemove(id EntityIndex) {
	p.remove(id)
}

// closeSlot runs the component's destructor if it has one. Per spec §7,
// a destructor failure is logged and then fatal: a failed Close leaves
// the pool's bookkeeping (offsets, free list) in an inconsistent state if
// we proceeded, risking a double-free on the next allocation of that
// slot.
func (p *Pool[T]) closeSlot(slot uint32) {
	c, ok := any(&p.buffer[slot]).(closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.Panicf("ecs: component destructor failed, aborting to avoid double-free: %v", err)
	}
}

// get returns a reference to id's component, or nil if absent.
func (p *Pool[T]) get(id EntityIndex) *T {
	idx := uint32(id)
	if idx >= uint32(len(p.offsets)) || p.offsets[idx] == invalidOffset {
		return nil
	}
	return &p.buffer[p.offsets[idx]]
}

// has reports whether id currently owns a T in this pool.
func (p *Pool[T]) has(id EntityIndex) bool {
	idx := uint32(id)
	return idx < uint32(len(p.offsets)) && p.offsets[idx] != invalidOffset
}

// len returns the number of live components currently stored.
func (p *Pool[T]) len() int {
	return len(p.buffer) - len(p.freeSlots)
}

// closeAll runs every live element's destructor. Called by Manager.Clear
// and by Manager teardown so a pool never leaks resources held by its
// components (spec §3 Pool lifecycle: "destroyed with the Manager").
func (p *Pool[T]) closeAll() {
	for idx, off := range p.offsets {
		if off == invalidOffset {
			continue
		}
		p.closeSlot(off)
		var zero T
		p.buffer[off] = zero
		p.offsets[idx] = invalidOffset
	}
	p.freeSlots = p.freeSlots[:0]
	p.buffer = p.buffer[:0]
}
