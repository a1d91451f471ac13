package willowxr

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// DefaultPixelsPerUnit converts viewport pixels to world units for the quad size.
	DefaultPixelsPerUnit = 1024.0
	// DefaultHitDepth is the thickness of a surface's hit box.
	DefaultHitDepth = 0.1
	// DefaultCollisionLayer is the layer surface hit regions live on.
	DefaultCollisionLayer uint32 = 1

	// DefaultPrimaryAction is the button signal name that fires a click.
	DefaultPrimaryAction = "trigger_click"
	// DefaultRayLength is how far a dispatcher's ray reaches.
	DefaultRayLength = 5.0
	// DefaultRayFade is the ray visualizer fade duration in seconds.
	DefaultRayFade float32 = 0.1
)

var (
	// ErrNilViewport is returned when a surface is created without a UI target.
	ErrNilViewport = errors.New("willowxr: nil viewport")
	// ErrInvalidSurfaceSize is returned when the UI target has a zero or negative size.
	ErrInvalidSurfaceSize = errors.New("willowxr: surface size must be positive")
	// ErrInvalidPixelsPerUnit is returned for a non-positive pixels-per-unit scale.
	ErrInvalidPixelsPerUnit = errors.New("willowxr: pixels per unit must be positive")
	// ErrInvalidDepth is returned for a non-positive hit box depth.
	ErrInvalidDepth = errors.New("willowxr: hit depth must be positive")
	// ErrNoCollisionLayer is returned when a collision layer or mask is zero.
	ErrNoCollisionLayer = errors.New("willowxr: collision layer must be non-zero")
	// ErrInvalidRayLength is returned for a non-positive ray length.
	ErrInvalidRayLength = errors.New("willowxr: ray length must be positive")
	// ErrNilRaySource is returned when a dispatcher is created without a ray source.
	ErrNilRaySource = errors.New("willowxr: nil ray source")
)

// SurfaceConfig holds the setup-time parameters of one panel.
type SurfaceConfig struct {
	Name           string  `json:"name,omitempty"`
	PixelsPerUnit  float64 `json:"pixelsPerUnit,omitempty"`
	HitDepth       float64 `json:"hitDepth,omitempty"`
	CollisionLayer uint32  `json:"collisionLayer,omitempty"`
}

// DefaultSurfaceConfig returns a SurfaceConfig with every default applied.
func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{
		Name:           "surface",
		PixelsPerUnit:  DefaultPixelsPerUnit,
		HitDepth:       DefaultHitDepth,
		CollisionLayer: DefaultCollisionLayer,
	}
}

// withDefaults fills zero fields from DefaultSurfaceConfig.
func (c SurfaceConfig) withDefaults() SurfaceConfig {
	d := DefaultSurfaceConfig()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.PixelsPerUnit == 0 {
		c.PixelsPerUnit = d.PixelsPerUnit
	}
	if c.HitDepth == 0 {
		c.HitDepth = d.HitDepth
	}
	if c.CollisionLayer == 0 {
		c.CollisionLayer = d.CollisionLayer
	}
	return c
}

// Validate reports the first invalid field.
func (c SurfaceConfig) Validate() error {
	if c.PixelsPerUnit <= 0 {
		return fmt.Errorf("surface %q: %w (got %v)", c.Name, ErrInvalidPixelsPerUnit, c.PixelsPerUnit)
	}
	if c.HitDepth <= 0 {
		return fmt.Errorf("surface %q: %w (got %v)", c.Name, ErrInvalidDepth, c.HitDepth)
	}
	if c.CollisionLayer == 0 {
		return fmt.Errorf("surface %q: %w", c.Name, ErrNoCollisionLayer)
	}
	return nil
}

// validateTarget checks the UI surface a panel will drive.
func validateTarget(name string, ui UISurface) error {
	if ui == nil {
		return fmt.Errorf("surface %q: %w", name, ErrNilViewport)
	}
	w, h := ui.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("surface %q: %w (got %dx%d)", name, ErrInvalidSurfaceSize, w, h)
	}
	return nil
}

// LoadSurfaceConfig parses a JSON surface config. Missing fields take their
// defaults; the result is validated.
func LoadSurfaceConfig(jsonData []byte) (SurfaceConfig, error) {
	var cfg SurfaceConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return SurfaceConfig{}, fmt.Errorf("parse surface config: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return SurfaceConfig{}, fmt.Errorf("parse surface config: %w", err)
	}
	return cfg, nil
}

// DispatcherConfig holds the setup-time parameters of one ray source.
type DispatcherConfig struct {
	// PrimaryAction is the only button signal name that triggers a click.
	PrimaryAction string
	// RayLength is the ray's reach in world units.
	RayLength float64
	// CollisionMask selects which layers the ray can hit.
	CollisionMask uint32
	// RayFade is the visualizer fade duration in seconds. Zero snaps.
	RayFade float32
	// StrictLeave makes the dispatcher tell a surface when the ray stops
	// targeting it. Off by default: the surface is simply no longer fed.
	StrictLeave bool
}

// DefaultDispatcherConfig returns a DispatcherConfig with every default applied.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		PrimaryAction: DefaultPrimaryAction,
		RayLength:     DefaultRayLength,
		CollisionMask: DefaultCollisionLayer,
		RayFade:       DefaultRayFade,
	}
}

// Validate reports the first invalid field.
func (c DispatcherConfig) Validate() error {
	if c.RayLength <= 0 {
		return fmt.Errorf("dispatcher: %w (got %v)", ErrInvalidRayLength, c.RayLength)
	}
	if c.CollisionMask == 0 {
		return fmt.Errorf("dispatcher: %w", ErrNoCollisionLayer)
	}
	return nil
}
