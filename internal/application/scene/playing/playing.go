// Package playing provides the arena scene: live play, recording and replay.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/splitshot/internal/application/replay"
	"github.com/younwookim/splitshot/internal/application/scene"
	"github.com/younwookim/splitshot/internal/application/state"
	"github.com/younwookim/splitshot/internal/application/system"
	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
	"github.com/younwookim/splitshot/internal/relay"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorBody     = color.RGBA{100, 200, 100, 255}
	colorSliding  = color.RGBA{150, 230, 150, 255}
	colorSentry   = color.RGBA{200, 100, 100, 255}
	colorGhost    = color.RGBA{120, 120, 220, 120}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}

	variantColors = map[entity.Variant]color.RGBA{
		entity.VariantNormal:       {240, 240, 240, 255},
		entity.VariantSplit:        {255, 180, 60, 255},
		entity.VariantSplitSquared: {230, 80, 230, 255},
	}
)

// Options configures a Playing scene
type Options struct {
	// RecordPath enables recording; an empty path disables it
	RecordPath string
	// Replay plays recorded intents instead of reading the input devices
	Replay *replay.ReplayData
	// Relay publishes the body each tick and draws the other peers
	Relay *relay.Client
	// Input overrides the ebiten input devices
	Input  *system.InputSystem
	Logger *slog.Logger
}

// Playing is the arena scene
type Playing struct {
	config *config.GameConfig
	sim    *system.Simulation
	world  *entity.World
	state  state.GameState
	input  *system.InputSystem
	logger *slog.Logger

	screenW int
	screenH int

	// Input recording and playback
	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer

	// Relay ghosts
	relay *relay.Client
	peers map[string]entity.BodyState

	lastReport system.CombatReport
}

// New creates a new Playing scene for the loaded arena
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	input := opts.Input
	if input == nil {
		input = system.NewInputSystem(cfg.Tuning.Display.Scale)
	}

	world, err := system.LoadArena(cfg.Arena, &cfg.Tuning.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", cfg.Arena.ID, err)
	}

	p := &Playing{
		config:     cfg,
		sim:        system.NewSimulation(cfg.Tuning, system.WithLogger(logger)),
		world:      world,
		state:      state.StatePlaying,
		input:      input,
		logger:     logger,
		screenW:    int(cfg.Arena.Size.Width),
		screenH:    int(cfg.Arena.Size.Height),
		recordPath: opts.RecordPath,
		relay:      opts.Relay,
	}

	if opts.Replay != nil {
		if opts.Replay.Arena != "" && opts.Replay.Arena != cfg.Arena.ID {
			logger.Warn("replay arena mismatch", "replay", opts.Replay.Arena, "arena", cfg.Arena.ID)
		}
		p.replayer = replay.NewReplayer(*opts.Replay)
	} else if p.recordPath != "" {
		p.recorder = replay.NewRecorder(cfg.Arena.ID)
		logger.Info("recording enabled", "path", p.recordPath)
	}

	return p, nil
}

// Update proceeds the arena by one tick (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if p.input.JustPressed(ebiten.KeyF10) {
		return nil, scene.ErrQuit
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if p.input.JustPressed(ebiten.KeyEscape) {
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver, state.StateReplayDone:
		if p.input.JustPressed(ebiten.KeyZ) || p.input.JustPressed(ebiten.KeySpace) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	if p.input.JustPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause()
		return
	}

	// F5: Save recording manually
	if p.input.JustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	in, ok := p.nextIntent()
	if !ok {
		p.state = state.StateReplayDone
		p.logger.Info("replay finished", "ticks", p.world.Tick)
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.lastReport = p.sim.Step(p.world, in)
	p.syncRelay()

	if !p.world.Body.IsAlive() {
		p.state = state.StateGameOver
		p.logger.Info("body destroyed", "tick", p.world.Tick)
		// Auto-save recording on game over
		p.saveRecording()
	}
}

// nextIntent reads the replay when one is loaded, the input devices otherwise
func (p *Playing) nextIntent() (system.Intent, bool) {
	if p.replayer != nil {
		return p.replayer.GetIntent()
	}
	return p.input.GetIntent(), true
}

// syncRelay publishes the body and picks up the newest peer map
func (p *Playing) syncRelay() {
	if p.relay == nil {
		return
	}
	if err := p.relay.Publish(p.world.Body.State()); err != nil && !errors.Is(err, relay.ErrBackpressure) {
		p.logger.Warn("failed to publish body", "err", err)
	}
	if peers, ok := p.relay.Latest(); ok {
		p.peers = peers
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		if !errors.Is(err, replay.ErrNoFrames) {
			p.logger.Error("failed to save recording", "err", err)
		}
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

func (p *Playing) restart() error {
	world, err := system.LoadArena(p.config.Arena, &p.config.Tuning.Body)
	if err != nil {
		return fmt.Errorf("failed to reload arena: %w", err)
	}
	p.world = world
	p.state = state.StatePlaying
	p.lastReport = system.CombatReport{}

	if p.replayer != nil {
		p.replayer.Reset()
	}
	if p.recorder != nil {
		p.recorder = replay.NewRecorder(p.config.Arena.ID)
		p.logger.Info("recording restarted")
	}
	return nil
}

// Draw renders the arena
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.sim.Snapshot(p.world)

	for _, r := range snap.Platforms {
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, colorPlatform)
	}
	p.drawGhosts(screen)
	p.drawSentries(screen, snap)
	p.drawBody(screen, snap)
	p.drawProjectiles(screen, snap)
	p.drawUI(screen, snap)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nSurvived %d ticks\n\nPress Z to restart", snap.Tick))
	case state.StateReplayDone:
		p.drawOverlay(screen, color.RGBA{0, 0, 60, 160},
			fmt.Sprintf("REPLAY DONE\n\n%d ticks\n\nPress Z to replay", snap.Tick))
	}
}

func (p *Playing) drawBody(screen *ebiten.Image, snap entity.Snapshot) {
	c := colorBody
	if snap.Body.Sliding {
		c = colorSliding
	}
	r := snap.Body.Rect
	ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, c)
}

func (p *Playing) drawSentries(screen *ebiten.Image, snap entity.Snapshot) {
	for _, s := range snap.Sentries {
		ebitenutil.DrawRect(screen, s.Pos.X-8, s.Pos.Y-8, 16, 16, colorSentry)
		ebitenutil.DrawRect(screen, s.Pos.X-3, s.Pos.Y-3, 6, 6, variantColors[s.Variant])
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, snap entity.Snapshot) {
	for _, proj := range snap.Projectiles {
		c := variantColors[proj.Variant]

		// Apply alpha for fading (pre-multiplied alpha)
		c = color.RGBA{
			uint8(float64(c.R) * proj.Alpha),
			uint8(float64(c.G) * proj.Alpha),
			uint8(float64(c.B) * proj.Alpha),
			uint8(float64(c.A) * proj.Alpha),
		}
		ebitenutil.DrawCircle(screen, proj.Pos.X, proj.Pos.Y, proj.Radius, c)
	}
}

// drawGhosts outlines every relay peer in a stable order
func (p *Playing) drawGhosts(screen *ebiten.Image) {
	ids := make([]string, 0, len(p.peers))
	for id := range p.peers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		g := p.peers[id]
		if g.Width <= 0 || g.Height <= 0 {
			continue
		}
		ebitenutil.DrawLine(screen, g.X, g.Y, g.X+g.Width, g.Y, colorGhost)
		ebitenutil.DrawLine(screen, g.X+g.Width, g.Y, g.X+g.Width, g.Y+g.Height, colorGhost)
		ebitenutil.DrawLine(screen, g.X+g.Width, g.Y+g.Height, g.X, g.Y+g.Height, colorGhost)
		ebitenutil.DrawLine(screen, g.X, g.Y+g.Height, g.X, g.Y, colorGhost)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, snap entity.Snapshot) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	if snap.Body.MaxHealth > 0 {
		ratio := float64(snap.Body.Health) / float64(snap.Body.MaxHealth)
		ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)
	}

	status := fmt.Sprintf("Tick: %d  Projectiles: %d  Peers: %d", snap.Tick, len(snap.Projectiles), len(p.peers))
	if p.replayer != nil {
		status += fmt.Sprintf("  Replay: %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | S: Crouch/Slide | Click/Q/E: Fire | ESC: Pause | F5: Save | F10: Quit")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("arena entered", "arena", p.config.Arena.ID)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the arena dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the current run state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the live world
func (p *Playing) World() *entity.World {
	return p.world
}
