package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputDevice is the subset of ebiten's input API the sampler reads
type InputDevice interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsKeyJustPressed(key ebiten.Key) bool
	CursorPosition() (x, y int)
}

// ebitenDevice reads the live ebiten input state
type ebitenDevice struct{}

func (ebitenDevice) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (ebitenDevice) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenDevice) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

func (ebitenDevice) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// InputSystem samples the keyboard and mouse into one Intent per tick
type InputSystem struct {
	device InputDevice
	scale  int
}

// NewInputSystem creates an input system reading ebiten directly.
// scale converts window pixels to arena pixels.
func NewInputSystem(scale int) *InputSystem {
	return NewInputSystemWithDevice(ebitenDevice{}, scale)
}

// NewInputSystemWithDevice creates an input system over any device
func NewInputSystemWithDevice(device InputDevice, scale int) *InputSystem {
	if scale <= 0 {
		scale = 1
	}
	return &InputSystem{device: device, scale: scale}
}

// GetIntent reads the current input state
func (s *InputSystem) GetIntent() Intent {
	d := s.device
	mx, my := d.CursorPosition()

	return Intent{
		Left:  d.IsKeyPressed(ebiten.KeyA) || d.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: d.IsKeyPressed(ebiten.KeyD) || d.IsKeyPressed(ebiten.KeyArrowRight),
		Down:  d.IsKeyPressed(ebiten.KeyS) || d.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:  d.IsKeyPressed(ebiten.KeyW) || d.IsKeyPressed(ebiten.KeyArrowUp),

		AimX: float64(mx) / float64(s.scale),
		AimY: float64(my) / float64(s.scale),

		FirePrimary:   d.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		FireSecondary: d.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || d.IsKeyJustPressed(ebiten.KeyQ),
		FireTertiary:  d.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) || d.IsKeyJustPressed(ebiten.KeyE),
	}
}

// JustPressed reports whether key went down this tick
func (s *InputSystem) JustPressed(key ebiten.Key) bool {
	return s.device.IsKeyJustPressed(key)
}
