package ecs

// EntityTable holds one EntityRecord per live-or-reusable slot. Indices
// [0, size) are the compacted live prefix as of the last Refresh;
// indices [size, sizeNext) are entities allocated since then (still
// alive, or destroyed-but-not-yet-reclaimed).
type EntityTable struct {
	records  []EntityRecord
	size     int
	sizeNext int
}

// HandleTable holds one HandleRecord per handle chain. Parallel in
// capacity to the EntityTable; the two always grow together.
type HandleTable struct {
	records []HandleRecord
}

// growTables grows both tables together, per spec: new capacity is
// (capacity + 10) * 2, and every new slot starts self-referential —
// data_index and handle_index both equal the slot's own position — with
// NullVersion on its handle row. Self-reference is what lets CreateEntity
// treat "brand new slot" and "slot vacated by a past entity" identically:
// both already carry a valid (data_index, handle_index) pairing.
func growTables(et *EntityTable, ht *HandleTable) {
	oldCap := len(et.records)
	newCap := (oldCap + 10) * 2

	grownEntities := make([]EntityRecord, newCap)
	copy(grownEntities, et.records)
	grownHandles := make([]HandleRecord, newCap)
	copy(grownHandles, ht.records)

	for i := oldCap; i < newCap; i++ {
		grownEntities[i] = EntityRecord{
			Alive:       false,
			DataIndex:   EntityIndex(i),
			HandleIndex: HandleIndex(i),
		}
		grownHandles[i] = HandleRecord{
			EntityIndex: EntityIndex(i),
			Counter:     NullVersion,
		}
	}

	et.records = grownEntities
	ht.records = grownHandles
}

// reset reinitializes every slot of both tables to the same
// self-referential, NullVersion default growTables gives a freshly
// grown slot, and zeroes size/sizeNext. Used by Manager.Clear after it has
// torn down every pool's components; resetTables itself only wipes the
// index.
func resetTables(et *EntityTable, ht *HandleTable) {
	for i := range et.records {
		et.records[i] = EntityRecord{
			Alive:       false,
			DataIndex:   EntityIndex(i),
			HandleIndex: HandleIndex(i),
		}
		ht.records[i] = HandleRecord{
			EntityIndex: EntityIndex(i),
			Counter:     NullVersion,
		}
	}
	et.size = 0
	et.sizeNext = 0
}
