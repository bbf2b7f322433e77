package ecs

import "muscle-dreamer/internal/core/ecs/config"

// Manager owns an EntityTable, a HandleTable, and a PoolRegistry, and is
// the sole entry point for creating entities, dispatching component
// operations, and running Refresh. Per spec §5, a Manager is
// single-threaded: every method here assumes it is called from one
// goroutine at a time.
type Manager struct {
	entities EntityTable
	handles  HandleTable
	pools    PoolRegistry

	aliveCount int
}

// NewManager creates a Manager with the package's default configuration.
func NewManager() *Manager {
	return NewManagerWithConfig(config.DefaultManagerConfig())
}

// NewManagerWithConfig creates a Manager whose EntityTable/HandleTable
// are pre-sized to cfg.InitialEntityCapacity, avoiding the first growth
// for workloads whose entity count is known ahead of time. Every pool
// this Manager installs is pre-sized to cfg.InitialPoolCapacity, and
// AddComponent of a never-before-seen type panics once cfg.MaxComponentTypes
// distinct types are already installed (0 means unbounded).
func NewManagerWithConfig(cfg config.ManagerConfig) *Manager {
	m := &Manager{}
	if cfg.InitialEntityCapacity > 0 {
		growTablesTo(&m.entities, &m.handles, cfg.InitialEntityCapacity)
	}
	m.pools.poolCapacity = cfg.InitialPoolCapacity
	m.pools.maxTypes = cfg.MaxComponentTypes
	return m
}

// growTablesTo grows the tables directly to at least n slots, used only
// for the constructor's up-front sizing hint. Steady-state growth always
// goes through growTables' (capacity+10)*2 policy.
func growTablesTo(et *EntityTable, ht *HandleTable, n int) {
	for len(et.records) < n {
		growTables(et, ht)
	}
}

// CreateEntity allocates a new entity, claiming EntityTable slot
// sizeNext and bumping that slot's handle counter (spec §4.3: the
// version bump happens on allocation, so the first live handle for any
// slot carries counter == 1, never the reserved NullVersion).
func (m *Manager) CreateEntity() Entity {
	if m.entities.sizeNext >= len(m.entities.records) {
		growTables(&m.entities, &m.handles)
	}

	pos := EntityIndex(m.entities.sizeNext)
	m.entities.sizeNext++

	rec := m.entities.records[pos]
	rec.Alive = true
	m.entities.records[pos] = rec

	h := m.handles.records[rec.HandleIndex]
	h.Counter++
	h.EntityIndex = pos
	m.handles.records[rec.HandleIndex] = h

	m.aliveCount++

	return Entity{mgr: m, handleIndex: rec.HandleIndex, version: h.Counter}
}

// EntityCount returns the number of currently alive entities. Destroy
// decrements it immediately (it is a logical count, not a physical one —
// physical reclamation is Refresh's job), so entity_count reflects
// Destroy calls even before the next Refresh.
func (m *Manager) EntityCount() int {
	return m.aliveCount
}

// Refresh partitions [0, sizeNext) into a compacted live prefix and a
// reclaimed dead suffix: a two-pointer sweep, as specified in spec §4.4.
// Every dead slot visited — whether skipped by the right-to-left scan or
// swapped out of the live prefix — has its handle's version bumped
// exactly once and its components swept exactly once. Live entities may
// move to a new EntityTable position to compact the prefix, but their
// handle's Counter is untouched, so outstanding handles to survivors
// keep validating (spec's resolved §4.4/§9 semantics: bump on death
// only).
func (m *Manager) Refresh() {
	et := &m.entities
	dead := 0
	alive := et.sizeNext - 1

	for {
		for dead < et.sizeNext && et.records[dead].Alive {
			dead++
		}
		for alive >= dead && !et.records[alive].Alive {
			m.reclaim(EntityIndex(alive))
			alive--
		}
		if dead > alive {
			break
		}

		m.reclaim(EntityIndex(dead))
		m.swapEntityRecords(dead, alive)
		dead++
		alive--
	}

	et.size = dead
	et.sizeNext = dead
}

// reclaim bumps pos's handle version and sweeps pos's components. Called
// once per dead slot during Refresh; it does not touch EntityRecord.Alive
// (already false by the time a slot reaches reclaim).
func (m *Manager) reclaim(pos EntityIndex) {
	rec := m.entities.records[pos]
	h := m.handles.records[rec.HandleIndex]
	h.Counter++
	m.handles.records[rec.HandleIndex] = h
	m.pools.sweep(rec.DataIndex)
}

// swapEntityRecords exchanges the EntityRecords at a and b and fixes up
// both HandleRecords so HandleTable[record.HandleIndex].EntityIndex keeps
// pointing at the record's new position (spec invariant 2).
func (m *Manager) swapEntityRecords(a, b int) {
	et := &m.entities
	et.records[a], et.records[b] = et.records[b], et.records[a]

	ra := et.records[a]
	ha := m.handles.records[ra.HandleIndex]
	ha.EntityIndex = EntityIndex(a)
	m.handles.records[ra.HandleIndex] = ha

	rb := et.records[b]
	hb := m.handles.records[rb.HandleIndex]
	hb.EntityIndex = EntityIndex(b)
	m.handles.records[rb.HandleIndex] = hb
}

// Clear tears down every live component (running any closer.Close each
// owns), then resets size and sizeNext to 0 and re-initializes every
// EntityRecord/HandleRecord to the post-grow default (NullVersion,
// self-referencing indices). Every outstanding Entity handle fails
// Validate afterward, since Clear does not preserve any HandleRecord's
// Counter.
func (m *Manager) Clear() {
	m.pools.closeAll()
	resetTables(&m.entities, &m.handles)
	m.aliveCount = 0
}

// Close tears down every live component across all pools. Call it when
// the Manager itself is being discarded, so components holding external
// resources (file handles, the scripting package's Lua VMs) release them
// deterministically instead of waiting on the garbage collector.
func (m *Manager) Close() {
	m.pools.closeAll()
}

// Stats reports point-in-time counts, grounded on the teacher's small
// StorageStats-style structs used for debugging rather than a full
// metrics pipeline (spec's Non-goals exclude a scheduler/metrics layer,
// but a one-call snapshot is the minimum ambient observability any
// library like this carries).
type Stats struct {
	EntityCount     int
	EntityCapacity  int
	PendingRefresh  int // entities created since the last Refresh (slots in [size, sizeNext))
	ComponentTypes  int
}

// Stats returns a snapshot of the Manager's current bookkeeping.
func (m *Manager) Stats() Stats {
	return Stats{
		EntityCount:    m.aliveCount,
		EntityCapacity: len(m.entities.records),
		PendingRefresh: m.entities.sizeNext - m.entities.size,
		ComponentTypes: m.pools.installedCount(),
	}
}
