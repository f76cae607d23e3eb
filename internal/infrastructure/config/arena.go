package config

// ArenaConfig is the root config for arena JSON files
type ArenaConfig struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Size      ArenaSizeConfig     `json:"size"`
	BodySpawn PositionConfig      `json:"bodySpawn"`
	Platforms []PlatformConfig    `json:"platforms"`
	Sentries  []SentrySpawnConfig `json:"sentries"`
}

type ArenaSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlatformConfig describes one platform; Bounds is required when VX is non-zero
type PlatformConfig struct {
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	VX     float64       `json:"vx,omitempty"`
	Bounds *BoundsConfig `json:"bounds,omitempty"`
}

type BoundsConfig struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
}

// SentrySpawnConfig places one sentry in an arena
type SentrySpawnConfig struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Variant  string  `json:"variant"`
	Cooldown int     `json:"cooldown"`
}
