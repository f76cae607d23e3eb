// Package termview draws arena snapshots on a terminal.
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

// Glyphs for each drawable
const (
	glyphPlatform = '='
	glyphBody     = '@'
	glyphCrouch   = 'm'
	glyphSentry   = 'S'
	glyphBorder   = '.'
)

var variantGlyphs = map[entity.Variant]rune{
	entity.VariantNormal:       'o',
	entity.VariantSplit:        '*',
	entity.VariantSplitSquared: '#',
}

var (
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleBody     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSentry   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorBlue)

	variantStyles = map[entity.Variant]tcell.Style{
		entity.VariantNormal:       tcell.StyleDefault.Foreground(tcell.ColorWhite),
		entity.VariantSplit:        tcell.StyleDefault.Foreground(tcell.ColorYellow),
		entity.VariantSplitSquared: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// Renderer maps arena pixels onto terminal cells of CellWidth x CellHeight pixels.
// Row 0 holds the status line; the arena starts on row 1.
type Renderer struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
}

// NewRenderer creates a renderer over an initialised screen
func NewRenderer(screen tcell.Screen, display *config.DisplayConfig) *Renderer {
	return &Renderer{
		screen: screen,
		cellW:  float64(max(display.CellWidth, 1)),
		cellH:  float64(max(display.CellHeight, 1)),
	}
}

// Cell returns the terminal cell holding arena point p
func (r *Renderer) Cell(p geom.Vec2) (col, row int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y/r.cellH)) + 1
}

// Draw renders one snapshot and shows it
func (r *Renderer) Draw(snap entity.Snapshot, status string) {
	r.screen.Clear()

	r.drawBorder(snap)
	for _, p := range snap.Platforms {
		r.fillRect(p, glyphPlatform, stylePlatform)
	}
	for _, s := range snap.Sentries {
		r.put(s.Pos, glyphSentry, styleSentry)
	}

	glyph := glyphBody
	if snap.Body.Crouching {
		glyph = glyphCrouch
	}
	r.fillRect(snap.Body.Rect, glyph, styleBody)

	for _, p := range snap.Projectiles {
		r.put(p.Pos, variantGlyphs[p.Variant], variantStyles[p.Variant])
	}

	line := fmt.Sprintf("tick %d  hp %d/%d  shots %d", snap.Tick, snap.Body.Health, snap.Body.MaxHealth, len(snap.Projectiles))
	if status != "" {
		line += "  " + status
	}
	r.text(0, 0, line, styleStatus)

	r.screen.Show()
}

// drawBorder marks the floor row below the arena
func (r *Renderer) drawBorder(snap entity.Snapshot) {
	cols := int(math.Ceil(snap.Width / r.cellW))
	_, row := r.Cell(geom.Vec2{Y: snap.Height})
	for c := 0; c < cols; c++ {
		r.screen.SetContent(c, row, glyphBorder, nil, styleBorder)
	}
}

// fillRect covers every cell the rect touches
func (r *Renderer) fillRect(rect geom.Rect, glyph rune, style tcell.Style) {
	c0, r0 := r.Cell(geom.Vec2{X: rect.Left(), Y: rect.Top()})
	c1, r1 := r.Cell(geom.Vec2{X: math.Nextafter(rect.Right(), rect.Left()), Y: math.Nextafter(rect.Bottom(), rect.Top())})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.setCell(col, row, glyph, style)
		}
	}
}

func (r *Renderer) put(p geom.Vec2, glyph rune, style tcell.Style) {
	col, row := r.Cell(p)
	r.setCell(col, row, glyph, style)
}

// setCell writes inside the screen and below the status line only
func (r *Renderer) setCell(col, row int, glyph rune, style tcell.Style) {
	w, h := r.screen.Size()
	if col < 0 || row < 1 || col >= w || row >= h {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}
