// Package render draws a physics world with ebiten.
package render

import (
	"image/color"
	"math"
	"time"

	"github.com/beka-birhanu/mazeball/infrastruture/physics"
	"github.com/beka-birhanu/mazeball/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	fadeInSeconds = 0.6
	discSize      = 64 // Side of the pre-rendered disc texture
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 24, A: 255}

	roleColors = map[layout.Role]color.RGBA{
		layout.RoleBoundary: {R: 90, G: 90, B: 110, A: 255},
		layout.RoleWall:     {R: 200, G: 90, B: 60, A: 255},
		layout.RoleGoal:     {R: 60, G: 200, B: 110, A: 255},
		layout.RoleStart:    {R: 70, G: 140, B: 230, A: 255},
		physics.RoleShape:   {R: 220, G: 200, B: 80, A: 255},
	}
)

// Option configures a Viewer.
type Option func(*Viewer)

// WithCollapseAfter collapses the maze walls once the given time has elapsed.
func WithCollapseAfter(d time.Duration) Option {
	return func(v *Viewer) {
		v.collapseAfter = d
	}
}

// Viewer is an ebiten.Game stepping and drawing a physics world.
type Viewer struct {
	world         *physics.World
	width         int
	height        int
	elapsed       time.Duration
	collapseAfter time.Duration
	fades         map[*physics.Entity]*fade
	pixel         *ebiten.Image
	disc          *ebiten.Image
}

// fade tracks the fade-in of one entity.
type fade struct {
	tween *gween.Tween
	alpha float32
	done  bool
}

// NewViewer creates a viewer for a world laid out on a width x height field.
func NewViewer(world *physics.World, width, height float64, options ...Option) *Viewer {
	v := &Viewer{
		world:  world,
		width:  int(math.Ceil(width)),
		height: int(math.Ceil(height)),
		fades:  make(map[*physics.Entity]*fade),
		pixel:  ebiten.NewImage(1, 1),
		disc:   newDisc(discSize),
	}
	v.pixel.Fill(color.White)

	for _, opt := range options {
		opt(v)
	}
	return v
}

// Run opens a window and runs the viewer until the window closes.
func Run(v *Viewer, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// Update advances the simulation by one tick.
func (v *Viewer) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	v.world.Step(dt)
	v.elapsed += time.Duration(dt * float64(time.Second))

	if v.collapseAfter > 0 && v.elapsed >= v.collapseAfter {
		v.world.Collapse()
	}

	for _, e := range v.world.Entities() {
		f, ok := v.fades[e]
		if !ok {
			f = &fade{tween: gween.New(0, 1, fadeInSeconds, ease.OutCubic)}
			v.fades[e] = f
		}
		if !f.done {
			f.alpha, f.done = f.tween.Update(float32(dt))
		}
	}
	return nil
}

// Draw renders every entity with its role color.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, e := range v.world.Entities() {
		alpha := float32(1)
		if f, ok := v.fades[e]; ok {
			alpha = f.alpha
		}

		src := v.pixel
		scaleX, scaleY := e.Spec.Size.X, e.Spec.Size.Y
		if e.Spec.Shape == layout.ShapeCircle {
			src = v.disc
			scaleX /= discSize
			scaleY /= discSize
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(-e.Spec.Size.X/2, -e.Spec.Size.Y/2)
		op.GeoM.Rotate(e.Angle())
		pos := e.Position()
		op.GeoM.Translate(pos.X, pos.Y)

		c := roleColors[e.Spec.Role]
		op.ColorScale.Scale(
			float32(c.R)/255*alpha,
			float32(c.G)/255*alpha,
			float32(c.B)/255*alpha,
			alpha,
		)
		screen.DrawImage(src, op)
	}
}

// Layout keeps the logical screen at the play-field size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

// newDisc renders a white filled circle into a size x size image.
func newDisc(size int) *ebiten.Image {
	pix := make([]byte, 4*size*size)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy > r*r {
				continue
			}
			i := 4 * (y*size + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
		}
	}

	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}
