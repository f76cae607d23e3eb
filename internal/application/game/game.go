// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/splitshot/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	ticks   uint64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.ticks++

	next, err := g.current.Update()
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Ticks returns how many updates have run
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Run opens a window scaled by scale and runs the loop at tps updates per second
func (g *Game) Run(title string, tps int, scale float64) error {
	ebiten.SetTPS(tps)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(g.screenW)*scale), int(float64(g.screenH)*scale))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
