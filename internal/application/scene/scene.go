// Package scene defines the Scene interface for arena screens.
//
// The playing scene and its replay mode implement Scene; the game loop owns
// whichever one is current.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the run without an error
var ErrQuit = errors.New("quit requested")

// Scene represents an arena screen.
//
// The game loop calls Update once per fixed tick and Draw once per frame.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to stop cleanly, any other error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	OnExit()
}
