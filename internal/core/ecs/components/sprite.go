package components

import "muscle-dreamer/internal/core/ecs"

// Sprite is the rendering data a draw system reads via
// ecs.ForEach2[Position, Sprite]: which texture to draw, its tint, draw
// order, and flip state. Trimmed from the teacher's SpriteComponent —
// the source-rect/atlas fields are not needed without the old
// world/render subsystem this was lifted from.
type Sprite struct {
	TextureID string
	Color     ecs.Color
	ZOrder    int
	Visible   bool
	FlipX     bool
	FlipY     bool
}

// NewSprite returns a Sprite bound to textureID, opaque white, visible,
// unflipped — the teacher's SpriteComponent defaults.
func NewSprite(textureID string) Sprite {
	return Sprite{
		TextureID: textureID,
		Color:     ecs.Color{R: 255, G: 255, B: 255, A: 255},
		Visible:   true,
	}
}
