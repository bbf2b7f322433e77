package components

import "muscle-dreamer/internal/core/ecs"

// Position is an entity's location in world space. It carries no
// behavior of its own — ecs.ForEach2[Position, Velocity] is what moves
// it — matching how the rest of this package keeps components as plain
// data operated on by the caller, not self-updating objects. Wrapping
// ecs.Vector2 rather than aliasing it keeps Position and Velocity
// distinct component types under ecs.TypeID.
type Position struct {
	ecs.Vector2
}
