// Package scene draws the game world onto a character grid.
// Terminal implements the game's display collaborator: the game creates,
// moves, rotates and removes visuals, and the platform calls Draw once per frame.
package scene

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/cubehop/internal/core"
)

// Visual characters and colors for rendering
const (
	GroundChar    = '░'
	ObstacleChar  = '█'
	playerColor   = core.ColorBrightGreen
	obstacleColor = core.ColorBrightRed
	groundColor   = core.ColorYellow
)

// playerShades cycles as the player cube spins, a quarter turn per shade.
var playerShades = []rune{'█', '▓', '▒', '▓'}

// Camera maps the world's z = 0 plane onto the screen.
type Camera struct {
	CenterX    float64 // World x at the screen's horizontal center
	CenterY    float64 // World y at the screen's vertical center
	HalfHeight float64 // World units from the center to the top edge
	CellAspect float64 // Cell height / cell width
	GroundY    float64 // Floor plane height, drawn down to the bottom edge
}

// DefaultCamera frames the spawn height range and a little below the floor.
func DefaultCamera() Camera {
	return Camera{
		CenterX:    0,
		CenterY:    1.5,
		HalfHeight: 4,
		CellAspect: 2,
		GroundY:    -0.5,
	}
}

type visual struct {
	kind core.VisualKind
	pos  core.Vec3
	half float64
	rotX float64
	rotY float64
}

// Terminal is a scene rendered as text.
type Terminal struct {
	camera  Camera
	half    float64
	visuals map[core.Handle]*visual
	next    core.Handle
	score   int
	best    int
	title   string
	status  string
}

// NewTerminal creates an empty scene. half is the half-extent of every cube.
func NewTerminal(camera Camera, half float64) *Terminal {
	return &Terminal{
		camera:  camera,
		half:    half,
		visuals: make(map[core.Handle]*visual),
	}
}

// CreateVisual adds a cube and returns its handle.
func (t *Terminal) CreateVisual(kind core.VisualKind, pos core.Vec3) core.Handle {
	t.next++
	t.visuals[t.next] = &visual{kind: kind, pos: pos, half: t.half}
	return t.next
}

// RemoveVisual drops a cube. Unknown handles are ignored.
func (t *Terminal) RemoveVisual(h core.Handle) {
	delete(t.visuals, h)
}

// SetPosition moves a cube.
func (t *Terminal) SetPosition(h core.Handle, pos core.Vec3) {
	if v, ok := t.visuals[h]; ok {
		v.pos = pos
	}
}

// SetRotation sets a cube's rotation around x and y.
func (t *Terminal) SetRotation(h core.Handle, rx, ry float64) {
	if v, ok := t.visuals[h]; ok {
		v.rotX = rx
		v.rotY = ry
	}
}

// WriteScore updates the score text.
func (t *Terminal) WriteScore(score int) {
	t.score = score
}

// SetBest updates the best-run text shown next to the score.
func (t *Terminal) SetBest(best int) {
	t.best = best
}

// SetTitle sets the name shown centered in the HUD row. Empty hides it.
func (t *Terminal) SetTitle(title string) {
	t.title = title
}

// SetStatus sets a centered banner, e.g. "PAUSED". Empty hides it.
func (t *Terminal) SetStatus(status string) {
	t.status = status
}

// Len returns the number of live visuals.
func (t *Terminal) Len() int {
	return len(t.visuals)
}

// Draw renders the scene into dst.
func (t *Terminal) Draw(dst *core.Screen) {
	dst.Clear()

	groundRow := t.row(dst, t.camera.GroundY)
	for y := core.Max(groundRow, 0); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, groundColor)
	}

	handles := make([]core.Handle, 0, len(t.visuals))
	for h := range t.visuals {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	// Obstacles first so the player is always on top
	for _, kind := range []core.VisualKind{core.VisualObstacle, core.VisualPlayer} {
		for _, h := range handles {
			if v := t.visuals[h]; v.kind == kind {
				t.drawCube(dst, v)
			}
		}
	}

	if t.title != "" {
		dst.DrawTextCentered(0, " "+t.title+" ")
	}
	hud := fmt.Sprintf(" Score: %d ", t.score)
	dst.DrawText(2, 0, hud)
	if t.best > 0 {
		best := fmt.Sprintf(" Best: %d ", t.best)
		dst.DrawText(dst.Width()-len(best)-2, 0, best)
	}

	if t.status != "" {
		t.drawBanner(dst, t.status)
	}
}

func (t *Terminal) drawCube(dst *core.Screen, v *visual) {
	left := t.col(dst, v.pos.X-v.half)
	right := t.col(dst, v.pos.X+v.half)
	top := t.row(dst, v.pos.Y+v.half)
	bottom := t.row(dst, v.pos.Y-v.half)

	glyph, color := ObstacleChar, obstacleColor
	if v.kind == core.VisualPlayer {
		glyph, color = shade(v.rotX+v.rotY), playerColor
	}

	// Always at least one cell, so tiny cameras still show every cube
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (t *Terminal) drawBanner(dst *core.Screen, text string) {
	w := len([]rune(text)) + 4
	h := 3
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, text)
}

// col maps a world x to a screen column.
func (t *Terminal) col(dst *core.Screen, x float64) int {
	unitsPerRow := (2 * t.camera.HalfHeight) / float64(dst.Height())
	colsPerUnit := t.camera.CellAspect / unitsPerRow
	return int(math.Round(float64(dst.Width())/2 + (x-t.camera.CenterX)*colsPerUnit))
}

// row maps a world y to a screen row; larger y is higher on screen.
func (t *Terminal) row(dst *core.Screen, y float64) int {
	rowsPerUnit := float64(dst.Height()) / (2 * t.camera.HalfHeight)
	return int(math.Round(float64(dst.Height())/2 - (y-t.camera.CenterY)*rowsPerUnit))
}

// shade picks the player glyph for a total spin angle.
func shade(angle float64) rune {
	quarter := int(math.Floor(angle / (math.Pi / 4)))
	n := len(playerShades)
	return playerShades[((quarter%n)+n)%n]
}
