package components

// Health is deliberately thinner than the teacher's HealthComponent: no
// shield, invincibility flag, regeneration, or status-effect list, since
// the demo host never exercises any of that. It tracks exactly what
// cmd/ecsdemo needs to age out a spawned particle.
type Health struct {
	Current int
	Max     int
}

// NewHealth returns a Health at full current health.
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// TakeDamage reduces Current by amount, floored at zero, and reports
// whether the entity has died as a result.
func (h *Health) TakeDamage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

// IsDead reports whether Current has reached zero.
func (h *Health) IsDead() bool {
	return h.Current <= 0
}
