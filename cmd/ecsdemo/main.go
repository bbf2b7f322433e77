// Command ecsdemo drives the ecs storage core with a real game loop, the
// way the teacher's cmd/game did for the now-removed placeholder Game —
// this is the thin host, not the substrate under test.
package main

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// demo owns one Manager and ticks it once per frame: spawn on click,
// integrate motion, draw, refresh.
type demo struct {
	mgr *ecs.Manager
}

func newDemo() *demo {
	return &demo{mgr: ecs.NewManager()}
}

func (d *demo) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.spawn(float64(x), float64(y))
	}

	ecs.ForEach2(d.mgr, func(_ ecs.Entity, pos *components.Position, vel *components.Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
		if pos.X < 0 || pos.X > screenWidth {
			vel.X = -vel.X
		}
		if pos.Y < 0 || pos.Y > screenHeight {
			vel.Y = -vel.Y
		}
	})

	ecs.ForEach2(d.mgr, func(e ecs.Entity, _ *components.Position, h *components.Health) {
		if h.TakeDamage(1) {
			e.Destroy()
		}
	})

	d.mgr.Refresh()
	return nil
}

func (d *demo) spawn(x, y float64) {
	e := d.mgr.CreateEntity()
	ecs.Add(e, components.Position{Vector2: ecs.Vector2{X: x, Y: y}})
	ecs.Add(e, components.Velocity{Vector2: ecs.Vector2{
		X: rand.Float64()*4 - 2,
		Y: rand.Float64()*4 - 2,
	}})
	ecs.Add(e, components.NewSprite("particle"))
	ecs.Add(e, components.NewHealth(300))
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	ecs.ForEach2(d.mgr, func(_ ecs.Entity, pos *components.Position, sp *components.Sprite) {
		if !sp.Visible {
			return
		}
		clr := color.RGBA{sp.Color.R, sp.Color.G, sp.Color.B, sp.Color.A}
		vector.DrawFilledRect(screen, float32(pos.X)-4, float32(pos.Y)-4, 8, 8, clr, false)
	})

	ebitenutil.DebugPrint(screen, "click to spawn entities")
}

func (d *demo) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ecsdemo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newDemo()); err != nil {
		log.Fatal(err)
	}
}
