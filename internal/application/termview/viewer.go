package termview

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/splitshot/internal/application/system"
	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
)

var keyboardAim = geom.Vec2{X: 0, Y: -100}

// Source yields the intent for the next tick; ok is false when it has run out
type Source func() (in system.Intent, ok bool)

// Viewer steps a world at a fixed rate and draws it on a terminal
type Viewer struct {
	screen   tcell.Screen
	renderer *Renderer
	sim      *system.Simulation
	world    *entity.World
	keys     *KeyboardSource
	logger   *slog.Logger
	tps      int
}

// NewViewer creates a viewer over an initialised screen.
// The viewer finalises the screen when Run returns.
func NewViewer(screen tcell.Screen, sim *system.Simulation, world *entity.World, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	tuning := sim.Tuning()
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen, &tuning.Display),
		sim:      sim,
		world:    world,
		keys:     &KeyboardSource{},
		logger:   logger,
		tps:      max(tuning.Display.TPS, 1),
	}
}

// KeyboardIntent is a Source fed by terminal key presses.
// Terminals have no pointer, so shots aim straight up from the body.
func (v *Viewer) KeyboardIntent() (system.Intent, bool) {
	in, ok := v.keys.Next()
	if v.world.Body != nil {
		aim := v.world.Body.Center().Add(keyboardAim)
		in.AimX, in.AimY = aim.X, aim.Y
	}
	return in, ok
}

// Run steps the world once per tick until next runs out, ctx is done or the
// user quits with Esc, q or Ctrl-C
func (v *Viewer) Run(ctx context.Context, next Source) error {
	defer v.screen.Fini()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(v.tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if v.handleEvent(ev) {
				v.logger.Debug("viewer quit", "tick", v.world.Tick)
				return nil
			}

		case <-ticker.C:
			in, ok := next()
			if !ok {
				v.logger.Info("playback finished", "tick", v.world.Tick)
				return nil
			}
			v.sim.Step(v.world, in)
			v.renderer.Draw(v.sim.Snapshot(v.world), "")
		}
	}
}

// handleEvent feeds keys to the keyboard source and reports a quit request
func (v *Viewer) handleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		v.keys.Press(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

// KeyboardSource turns terminal key presses into one-tick intents.
// Terminals report presses, not held keys, so each press lasts one tick.
type KeyboardSource struct {
	pending system.Intent
}

// Press records a key for the next tick
func (k *KeyboardSource) Press(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.pending.Left = true
	case tcell.KeyRight:
		k.pending.Right = true
	case tcell.KeyDown:
		k.pending.Down = true
	case tcell.KeyUp:
		k.pending.Jump = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			k.pending.Left = true
		case 'd':
			k.pending.Right = true
		case 's':
			k.pending.Down = true
		case 'w', ' ':
			k.pending.Jump = true
		case 'j':
			k.pending.FirePrimary = true
		case 'k':
			k.pending.FireSecondary = true
		case 'l':
			k.pending.FireTertiary = true
		}
	}
}

// Next returns the pending intent and clears it; it never runs out
func (k *KeyboardSource) Next() (system.Intent, bool) {
	in := k.pending
	k.pending = system.Intent{}
	return in, true
}
