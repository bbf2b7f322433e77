package ecs

// PoolRegistry maps a ComponentID to its type-erased pool. It grows
// lazily: the first AddComponent of a given T extends the slice to
// id+1 and installs a freshly constructed Pool[T]; every other index
// holds a nil poolEraser, which all callers must treat as "no pool
// installed" rather than dereference. The registry owns every pool it
// holds; destroying the owning Manager tears them all down.
type PoolRegistry struct {
	pools []poolEraser // indexed by ComponentID

	poolCapacity int // ManagerConfig.InitialPoolCapacity; pre-sizes a pool's buffer on install
	maxTypes     int // ManagerConfig.MaxComponentTypes; 0 means unbounded
}

// poolFor returns the PoolRegistry's Pool[T], lazily growing the slice
// and constructing the pool on first use. Package-level rather than a
// method because Go methods cannot carry their own type parameters. op
// names the caller for panicTooManyComponentTypes's diagnostic.
func poolFor[T any](r *PoolRegistry, op string) *Pool[T] {
	idx := int(TypeID[T]())
	if idx >= len(r.pools) {
		grown := make([]poolEraser, idx+1)
		copy(grown, r.pools)
		r.pools = grown
	}
	if r.pools[idx] == nil {
		if r.maxTypes > 0 && r.installedCount() >= r.maxTypes {
			panicTooManyComponentTypes(op)
		}
		r.pools[idx] = newPoolWithCapacity[T](r.poolCapacity)
	}
	return r.pools[idx].(*Pool[T])
}

// existingPoolFor returns the PoolRegistry's Pool[T] without creating it,
// or nil if T has never been stored in this registry. Used by read-only
// paths (Get/Has) that must not allocate a pool just to report absence.
func existingPoolFor[T any](r *PoolRegistry) *Pool[T] {
	idx := int(TypeID[T]())
	if idx >= len(r.pools) || r.pools[idx] == nil {
		return nil
	}
	return r.pools[idx].(*Pool[T])
}

// sweep removes every component owned by id across all installed pools.
// Called once per reclaimed entity during Manager.Refresh; each pool's
// virtualRemove is already a no-op for an entity it never stored.
func (r *PoolRegistry) sweep(id EntityIndex) {
	for _, p := range r.pools {
		if p != nil {
			p.virtualRemove(id)
		}
	}
}

// closeAll tears down every live component in every pool. Used by
// Manager.Clear (which does not itself invoke refresh's sweep) and by
// Manager destruction.
func (r *PoolRegistry) closeAll() {
	for _, p := range r.pools {
		if closeable, ok := p.(interface{ closeAll() }); ok {
			closeable.closeAll()
		}
	}
}

// installedCount returns the number of component types actually stored
// in this registry, excluding the null-pool sentinel slots the global,
// process-wide TypeID counter can leave sparse within any one Manager
// (spec invariant 6). len(r.pools) alone would report "highest id used
// + 1", which grows with unrelated component types registered by other
// Managers in the process — not a useful "how many types does this
// Manager hold" count.
func (r *PoolRegistry) installedCount() int {
	n := 0
	for _, p := range r.pools {
		if p != nil {
			n++
		}
	}
	return n
}
