package config

// TuningConfig is the root config for tuning.json.
// All speeds are pixels per tick, all durations are ticks.
type TuningConfig struct {
	Display    DisplayConfig    `json:"display"`
	Body       BodyConfig       `json:"body"`
	Projectile ProjectileConfig `json:"projectile"`
	Sentry     SentryConfig     `json:"sentry"`
}

type DisplayConfig struct {
	Scale int `json:"scale"`
	TPS   int `json:"tps"`

	// Terminal viewer: pixels per character cell
	CellWidth  int `json:"cellWidth"`
	CellHeight int `json:"cellHeight"`
}

type BodyConfig struct {
	Gravity        float64 `json:"gravity"`
	MoveSpeed      float64 `json:"moveSpeed"`
	JumpVelocity   float64 `json:"jumpVelocity"` // negative is up
	SlideFriction  float64 `json:"slideFriction"`
	SlideBoost     float64 `json:"slideBoost"`
	SlideStopSpeed float64 `json:"slideStopSpeed"`
	Width          float64 `json:"width"`
	StandHeight    float64 `json:"standHeight"`
	CrouchHeight   float64 `json:"crouchHeight"`
	MaxHealth      int     `json:"maxHealth"`
}

type ProjectileConfig struct {
	LaunchSpeed   float64 `json:"launchSpeed"`
	BounceFactor  float64 `json:"bounceFactor"`
	Friction      float64 `json:"friction"`
	RestSpeed     float64 `json:"restSpeed"` // components below this snap to zero after a bounce
	BounceLimit   int     `json:"bounceLimit"`
	ContactDamage int     `json:"contactDamage"`
}

type SentryConfig struct {
	FireRate     int `json:"fireRate"`
	SightSamples int `json:"sightSamples"`
}

// DefaultTuning returns the tuning shipped in configs/tuning.json
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			Scale:      1,
			TPS:        60,
			CellWidth:  10,
			CellHeight: 20,
		},
		Body: BodyConfig{
			Gravity:        0.5,
			MoveSpeed:      3,
			JumpVelocity:   -10,
			SlideFriction:  0.05,
			SlideBoost:     1.5,
			SlideStopSpeed: 0.2,
			Width:          20,
			StandHeight:    40,
			CrouchHeight:   20,
			MaxHealth:      100,
		},
		Projectile: ProjectileConfig{
			LaunchSpeed:   8,
			BounceFactor:  0.7,
			Friction:      0.9,
			RestSpeed:     0.05,
			BounceLimit:   5,
			ContactDamage: 5,
		},
		Sentry: SentryConfig{
			FireRate:     90,
			SightSamples: 10,
		},
	}
}
