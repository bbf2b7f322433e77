package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth_TakeDamage(t *testing.T) {
	t.Run("TC001: damage reduces current health and reports the entity alive", func(t *testing.T) {
		h := NewHealth(100)

		dead := h.TakeDamage(30)

		assert.False(t, dead)
		assert.Equal(t, 70, h.Current)
	})

	t.Run("TC002: damage cannot take health below zero", func(t *testing.T) {
		h := NewHealth(10)

		dead := h.TakeDamage(999)

		assert.True(t, dead)
		assert.Equal(t, 0, h.Current)
	})

	t.Run("TC003: damage that exactly empties health reports dead", func(t *testing.T) {
		h := NewHealth(30)

		dead := h.TakeDamage(30)

		assert.True(t, dead)
		assert.Equal(t, 0, h.Current)
	})
}

func TestHealth_IsDead(t *testing.T) {
	t.Run("TC004: zero current health is dead", func(t *testing.T) {
		h := NewHealth(10)
		h.TakeDamage(10)

		assert.True(t, h.IsDead())
	})

	t.Run("TC005: positive current health is not dead", func(t *testing.T) {
		h := NewHealth(10)

		assert.False(t, h.IsDead())
	})
}

func TestNewHealth(t *testing.T) {
	t.Run("TC006: a new Health starts at full current health", func(t *testing.T) {
		h := NewHealth(250)

		assert.Equal(t, 250, h.Current)
		assert.Equal(t, 250, h.Max)
	})
}
