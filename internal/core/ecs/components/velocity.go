package components

import "muscle-dreamer/internal/core/ecs"

// Velocity is an entity's per-tick displacement, applied to Position
// by whatever system calls ecs.ForEach2[Position, Velocity].
type Velocity struct {
	ecs.Vector2
}
