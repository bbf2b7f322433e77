package ecs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs/config"
)

type mgrTestPosition struct{ X, Y float64 }
type mgrTestVelocity struct{ X, Y float64 }

func TestManager_CreateEntity(t *testing.T) {
	t.Run("TC001: three created entities all validate and report distinct handle indices", func(t *testing.T) {
		m := NewManager()

		e1 := m.CreateEntity()
		e2 := m.CreateEntity()
		e3 := m.CreateEntity()

		assert.True(t, e1.Validate())
		assert.True(t, e2.Validate())
		assert.True(t, e3.Validate())
		assert.NotEqual(t, e1.handleIndex, e2.handleIndex)
		assert.NotEqual(t, e2.handleIndex, e3.handleIndex)
		assert.Equal(t, 3, m.EntityCount())
	})

	t.Run("TC002: the first live handle on a slot carries version 1, never the null version", func(t *testing.T) {
		m := NewManager()

		e := m.CreateEntity()

		assert.NotEqual(t, NullVersion, e.version)
		assert.Equal(t, Version(1), e.version)
	})
}

func TestManager_DestroyThenRefresh(t *testing.T) {
	t.Run("TC003: spec scenario 2 — destroy is deferred until refresh", func(t *testing.T) {
		m := NewManager()
		e := m.CreateEntity()
		Add(e, mgrTestPosition{X: 1, Y: 2})

		e.Destroy()

		assert.True(t, e.Validate())
		assert.True(t, Has[mgrTestPosition](e))

		m.Refresh()

		assert.False(t, e.Validate())
		assert.Equal(t, 0, m.EntityCount())
	})
}

func TestManager_VersionReuseCollision(t *testing.T) {
	t.Run("TC004: spec scenario 3 — a reused slot never validates the old handle", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		e1.Destroy()
		m.Refresh()

		e2 := m.CreateEntity()

		assert.False(t, e1.Validate())
		assert.True(t, e2.Validate())
		assert.NotEqual(t, e1.version, e2.version)
	})
}

func TestManager_Refresh_CompactsLivePrefix(t *testing.T) {
	t.Run("TC005: surviving handles keep validating after compaction", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		e2 := m.CreateEntity()
		e3 := m.CreateEntity()
		e2.Destroy()

		m.Refresh()

		assert.True(t, e1.Validate())
		assert.False(t, e2.Validate())
		assert.True(t, e3.Validate())
		assert.Equal(t, 2, m.EntityCount())
	})

	t.Run("TC006: refresh is idempotent", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		e2 := m.CreateEntity()
		e2.Destroy()
		m.Refresh()
		countAfterFirst := m.EntityCount()
		e1Valid := e1.Validate()

		m.Refresh()

		assert.Equal(t, countAfterFirst, m.EntityCount())
		assert.Equal(t, e1Valid, e1.Validate())
	})

	t.Run("TC007: refresh on an empty manager does nothing", func(t *testing.T) {
		m := NewManager()

		assert.NotPanics(t, func() { m.Refresh() })
		assert.Equal(t, 0, m.EntityCount())
	})

	t.Run("TC008: refresh when every entity is alive keeps them all live", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		e2 := m.CreateEntity()

		m.Refresh()

		assert.True(t, e1.Validate())
		assert.True(t, e2.Validate())
		assert.Equal(t, 2, m.EntityCount())
	})

	t.Run("TC009: refresh when every entity is dead empties the manager", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		e2 := m.CreateEntity()
		e1.Destroy()
		e2.Destroy()

		m.Refresh()

		assert.False(t, e1.Validate())
		assert.False(t, e2.Validate())
		assert.Equal(t, 0, m.EntityCount())
	})
}

func TestManager_Refresh_ReclaimsComponents(t *testing.T) {
	t.Run("TC010: a destroyed entity's components are swept by refresh", func(t *testing.T) {
		m := NewManager()
		e := m.CreateEntity()
		Add(e, mgrTestPosition{X: 3, Y: 4})
		e.Destroy()

		m.Refresh()

		pool := existingPoolFor[mgrTestPosition](&m.pools)
		require.NotNil(t, pool)
		assert.Equal(t, 0, pool.len())
	})
}

func TestManager_EntityCount(t *testing.T) {
	t.Run("TC011: entity count decrements immediately on Destroy, before refresh", func(t *testing.T) {
		m := NewManager()
		e := m.CreateEntity()
		m.CreateEntity()

		e.Destroy()

		assert.Equal(t, 1, m.EntityCount())
	})
}

func TestManager_Clear(t *testing.T) {
	t.Run("TC012: clear invalidates every outstanding handle and resets the count", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		e2 := m.CreateEntity()

		m.Clear()

		assert.False(t, e1.Validate())
		assert.False(t, e2.Validate())
		assert.Equal(t, 0, m.EntityCount())
	})

	t.Run("TC013: clear tears down live components via their closer", func(t *testing.T) {
		m := NewManager()
		e := m.CreateEntity()
		Add(e, poolTestCloser{})

		m.Clear()

		// Clear ran pools.closeAll before resetting indices; verifying no
		// panic on a second Clear confirms the pool state was left consistent.
		assert.NotPanics(t, func() { m.Clear() })
	})

	t.Run("TC014: after clear a fresh CreateEntity starts a new version chain", func(t *testing.T) {
		m := NewManager()
		m.CreateEntity()
		m.Clear()

		e := m.CreateEntity()

		assert.True(t, e.Validate())
		assert.Equal(t, Version(1), e.version)
	})
}

func TestManager_Close(t *testing.T) {
	t.Run("TC015: close tears down live components without touching entity bookkeeping", func(t *testing.T) {
		m := NewManager()
		e := m.CreateEntity()
		Add(e, mgrTestPosition{X: 1, Y: 1})

		assert.NotPanics(t, func() { m.Close() })
		assert.True(t, e.Validate())
	})
}

func TestManager_Stats(t *testing.T) {
	t.Run("TC016: stats reports live count, capacity, pending refresh, and component types", func(t *testing.T) {
		m := NewManager()
		e1 := m.CreateEntity()
		m.CreateEntity()
		Add(e1, mgrTestPosition{})
		e1.Destroy()

		stats := m.Stats()

		assert.Equal(t, 1, stats.EntityCount)
		assert.GreaterOrEqual(t, stats.EntityCapacity, 2)
		assert.Equal(t, 2, stats.PendingRefresh)
		assert.Equal(t, 1, stats.ComponentTypes)
	})
}

func TestManager_Churn(t *testing.T) {
	t.Run("TC017: spec scenario 6 — repeated create/destroy/refresh keeps survivors valid", func(t *testing.T) {
		m := NewManager()
		var survivors []Entity

		for round := 0; round < 50; round++ {
			// Retire the previous round's survivors so each round's refresh
			// leaves exactly this round's 50 survivors alive.
			for _, e := range survivors {
				e.Destroy()
			}
			survivors = survivors[:0]

			entities := make([]Entity, 100)
			for i := range entities {
				entities[i] = m.CreateEntity()
			}

			destroyed := make(map[int]bool)
			perm := rand.Perm(100)
			for _, idx := range perm[:50] {
				entities[idx].Destroy()
				destroyed[idx] = true
			}

			m.Refresh()

			assert.Equal(t, 50, m.EntityCount())
			for i, e := range entities {
				if destroyed[i] {
					assert.False(t, e.Validate())
				} else {
					assert.True(t, e.Validate())
					survivors = append(survivors, e)
				}
			}
		}
	})
}

func TestManager_GrowsAcrossCapacity(t *testing.T) {
	t.Run("TC018: creating more entities than initial capacity grows the tables", func(t *testing.T) {
		m := NewManager()

		entities := make([]Entity, 500)
		for i := range entities {
			entities[i] = m.CreateEntity()
		}

		for _, e := range entities {
			assert.True(t, e.Validate())
		}
		assert.Equal(t, 500, m.EntityCount())
	})
}

func TestManager_ConfigSizingHints(t *testing.T) {
	t.Run("TC019: InitialPoolCapacity pre-sizes a component pool's buffer", func(t *testing.T) {
		m := NewManagerWithConfig(config.ManagerConfig{InitialPoolCapacity: 128})
		e := m.CreateEntity()

		Add(e, mgrTestPosition{X: 1, Y: 1})

		pool := existingPoolFor[mgrTestPosition](&m.pools)
		require.NotNil(t, pool)
		assert.GreaterOrEqual(t, cap(pool.buffer), 128)
	})

	t.Run("TC020: MaxComponentTypes caps the number of distinct component types", func(t *testing.T) {
		m := NewManagerWithConfig(config.ManagerConfig{MaxComponentTypes: 1})
		e := m.CreateEntity()
		Add(e, mgrTestPosition{})

		defer func() {
			rec := recover()
			err, ok := rec.(*ManagerError)
			assert.True(t, ok)
			assert.Equal(t, ErrTooManyComponentTypes, err.Code)
		}()
		Add(e, mgrTestVelocity{})
	})
}
