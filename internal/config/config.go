package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/platterlab/internal/mechanism"
	"github.com/san-kum/platterlab/internal/vinyl"
)

const (
	DefaultDt            = 1.0 / 60
	DefaultFrames        = 3600
	DefaultMediaDuration = 180.0
)

type Config struct {
	Dt            float64 `yaml:"dt"`
	Frames        int     `yaml:"frames"`
	MediaDuration float64 `yaml:"media_duration"`

	Mechanism MechanismConfig `yaml:"mechanism"`
	Vinyl     VinylConfig     `yaml:"vinyl"`
}

type MechanismConfig struct {
	MinYaw          float64 `yaml:"min_yaw"`
	MaxYaw          float64 `yaml:"max_yaw"`
	HomeYaw         float64 `yaml:"home_yaw"`
	PlayThreshold   float64 `yaml:"play_threshold"`
	SnapBand        float64 `yaml:"snap_band"`
	ReturnRate      float64 `yaml:"return_rate"`
	DragSensitivity float64 `yaml:"drag_sensitivity"`
	RPMSlow         float64 `yaml:"rpm_slow"`
	RPMFast         float64 `yaml:"rpm_fast"`
	RateSlow        float64 `yaml:"rate_slow"`
	RateFast        float64 `yaml:"rate_fast"`
	SpinResponse    float64 `yaml:"spin_response"`
}

type VinylConfig struct {
	MaxDragRadius       float64 `yaml:"max_drag_radius"`
	PositionLerp        float64 `yaml:"position_lerp"`
	ApproachRate        float64 `yaml:"approach_rate"`
	DropRate            float64 `yaml:"drop_rate"`
	SwingVelocityFactor float64 `yaml:"swing_velocity_factor"`
	SwingMaxTilt        float64 `yaml:"swing_max_tilt"`
	SwingDamp           float64 `yaml:"swing_damp"`
	NubClearance        float64 `yaml:"nub_clearance"`
	TwistPolicy         string  `yaml:"twist_policy"` // "commit" or "zero"
	FinalTwist          float64 `yaml:"final_twist"`
}

func DefaultConfig() *Config {
	mp := mechanism.DefaultParams()
	vp := vinyl.DefaultParams()
	return &Config{
		Dt:            DefaultDt,
		Frames:        DefaultFrames,
		MediaDuration: DefaultMediaDuration,
		Mechanism: MechanismConfig{
			MinYaw:          mp.MinYaw,
			MaxYaw:          mp.MaxYaw,
			HomeYaw:         mp.HomeYaw,
			PlayThreshold:   mp.PlayThreshold,
			SnapBand:        mp.SnapBand,
			ReturnRate:      mp.ReturnRate,
			DragSensitivity: mp.DragSensitivity,
			RPMSlow:         mp.RPMSlow,
			RPMFast:         mp.RPMFast,
			RateSlow:        mp.RateSlow,
			RateFast:        mp.RateFast,
			SpinResponse:    mp.SpinResponse,
		},
		Vinyl: VinylConfig{
			MaxDragRadius:       vp.MaxDragRadius,
			PositionLerp:        vp.PositionLerp,
			ApproachRate:        vp.ApproachRate,
			DropRate:            vp.DropRate,
			SwingVelocityFactor: vp.SwingVelocityFactor,
			SwingMaxTilt:        vp.SwingMaxTilt,
			SwingDamp:           vp.SwingDamp,
			NubClearance:        vp.NubClearance,
			TwistPolicy:         "commit",
			FinalTwist:          vp.FinalTwist,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects geometry that would break the yaw/time mapping.
func (c *Config) Validate() error {
	m := c.Mechanism
	if m.MinYaw >= m.PlayThreshold {
		return fmt.Errorf("min_yaw %.2f must be below play_threshold %.2f", m.MinYaw, m.PlayThreshold)
	}
	if m.PlayThreshold >= m.HomeYaw {
		return fmt.Errorf("play_threshold %.2f must be below home_yaw %.2f", m.PlayThreshold, m.HomeYaw)
	}
	if m.HomeYaw > m.MaxYaw {
		return fmt.Errorf("home_yaw %.2f must not exceed max_yaw %.2f", m.HomeYaw, m.MaxYaw)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	switch c.Vinyl.TwistPolicy {
	case "", "commit", "zero":
	default:
		return fmt.Errorf("unknown twist_policy %q", c.Vinyl.TwistPolicy)
	}
	return nil
}

// MechanismParams projects the config onto the mechanism tunables,
// leaving unexposed knobs at their defaults.
func (c *Config) MechanismParams() mechanism.Params {
	p := mechanism.DefaultParams()
	m := c.Mechanism
	p.MinYaw = m.MinYaw
	p.MaxYaw = m.MaxYaw
	p.HomeYaw = m.HomeYaw
	p.PlayThreshold = m.PlayThreshold
	p.SnapBand = m.SnapBand
	p.ReturnRate = m.ReturnRate
	p.DragSensitivity = m.DragSensitivity
	p.RPMSlow = m.RPMSlow
	p.RPMFast = m.RPMFast
	p.RateSlow = m.RateSlow
	p.RateFast = m.RateFast
	p.SpinResponse = m.SpinResponse
	return p
}

// VinylParams projects the config onto the physics tunables.
func (c *Config) VinylParams() vinyl.Params {
	p := vinyl.DefaultParams()
	v := c.Vinyl
	p.MaxDragRadius = v.MaxDragRadius
	p.PositionLerp = v.PositionLerp
	p.ApproachRate = v.ApproachRate
	p.DropRate = v.DropRate
	p.SwingVelocityFactor = v.SwingVelocityFactor
	p.SwingMaxTilt = v.SwingMaxTilt
	p.SwingDamp = v.SwingDamp
	p.NubClearance = v.NubClearance
	p.FinalTwist = v.FinalTwist
	if v.TwistPolicy == "zero" {
		p.Twist = vinyl.TwistEaseZero
	} else {
		p.Twist = vinyl.TwistCommitFinal
	}
	return p
}
