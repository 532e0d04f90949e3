package stats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bounds is one configurable lerp pair for a derived setting.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Tuning holds the lerp bounds that map stat axes to gameplay numbers.
// Every pair is overridable from the tuning file; the zero config falls
// back to Default().
type Tuning struct {
	BulletSpeed    Bounds  `yaml:"bullet_speed"`
	SpreadAngle    Bounds  `yaml:"spread_angle"`
	FireInterval   Bounds  `yaml:"fire_interval"`
	RecoilUpward   Bounds  `yaml:"recoil_upward"`
	RecoilKickback Bounds  `yaml:"recoil_kickback"`
	ReloadTime     Bounds  `yaml:"reload_time"`
	AimFOV         Bounds  `yaml:"aim_fov"`
	BaseDamage     float64 `yaml:"base_damage"`
}

// Default returns the built-in tuning used when no tuning file is supplied.
func Default() *Tuning {
	return &Tuning{
		BulletSpeed:    Bounds{Min: 50, Max: 300},
		SpreadAngle:    Bounds{Min: 0.2, Max: 6.0},
		FireInterval:   Bounds{Min: 0.08, Max: 1.2},
		RecoilUpward:   Bounds{Min: 0.5, Max: 6.0},
		RecoilKickback: Bounds{Min: 0.2, Max: 3.0},
		ReloadTime:     Bounds{Min: 0.8, Max: 4.0},
		AimFOV:         Bounds{Min: 20, Max: 55},
		BaseDamage:     10,
	}
}

// LoadTuning reads lerp bounds from a YAML file. An empty path means "no
// override" and yields Default(). A present but malformed or inverted
// config is a startup error, not something to limp along with.
func LoadTuning(path string) (*Tuning, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning %s: %w", path, err)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

func (t *Tuning) validate() error {
	pairs := []struct {
		name string
		b    Bounds
	}{
		{"bullet_speed", t.BulletSpeed},
		{"spread_angle", t.SpreadAngle},
		{"fire_interval", t.FireInterval},
		{"recoil_upward", t.RecoilUpward},
		{"recoil_kickback", t.RecoilKickback},
		{"reload_time", t.ReloadTime},
		{"aim_fov", t.AimFOV},
	}
	for _, p := range pairs {
		if p.b.Min > p.b.Max {
			return fmt.Errorf("%s: min %v greater than max %v", p.name, p.b.Min, p.b.Max)
		}
	}
	if t.BaseDamage <= 0 {
		return fmt.Errorf("base_damage must be positive, got %v", t.BaseDamage)
	}
	return nil
}
