package willowxr

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultSurfaceConfigValid(t *testing.T) {
	if err := DefaultSurfaceConfig().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	if err := DefaultDispatcherConfig().Validate(); err != nil {
		t.Errorf("dispatcher defaults invalid: %v", err)
	}
}

func TestLoadSurfaceConfig(t *testing.T) {
	cfg, err := LoadSurfaceConfig([]byte(`{"name": "menu", "pixelsPerUnit": 400}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "menu" || cfg.PixelsPerUnit != 400 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.HitDepth != DefaultHitDepth || cfg.CollisionLayer != DefaultCollisionLayer {
		t.Errorf("missing fields should take defaults: %+v", cfg)
	}
}

func TestLoadSurfaceConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"bad scale", `{"pixelsPerUnit": -2}`, ErrInvalidPixelsPerUnit},
		{"bad depth", `{"hitDepth": -1}`, ErrInvalidDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSurfaceConfig([]byte(tt.json))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "parse surface config: ") {
				t.Errorf("err = %q, want a parse prefix", err)
			}
		})
	}
}

func TestLoadSurfaceConfigInvalidJSON(t *testing.T) {
	if _, err := LoadSurfaceConfig([]byte(`{not json`)); err == nil {
		t.Error("expected an error")
	}
}

func TestDispatcherConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  DispatcherConfig
		want error
	}{
		{"zero length", DispatcherConfig{CollisionMask: 1}, ErrInvalidRayLength},
		{"zero mask", DispatcherConfig{RayLength: 1}, ErrNoCollisionLayer},
		{"ok", DispatcherConfig{RayLength: 1, CollisionMask: 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
