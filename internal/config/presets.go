package config

// Presets are named tuning bundles. Each starts from the defaults and
// overrides the feel of the cord and the deck.
var Presets = map[string]func() *Config{
	"standard": DefaultConfig,
	"loose-cord": func() *Config {
		c := DefaultConfig()
		c.Vinyl.MaxDragRadius = 3.4
		c.Vinyl.SwingDamp = 0.07
		c.Vinyl.SwingMaxTilt = 0.6
		c.Vinyl.DropRate = 0.03
		return c
	},
	"tight-cord": func() *Config {
		c := DefaultConfig()
		c.Vinyl.MaxDragRadius = 1.6
		c.Vinyl.SwingDamp = 0.22
		c.Vinyl.SwingMaxTilt = 0.25
		c.Vinyl.TwistPolicy = "zero"
		return c
	},
	"club": func() *Config {
		c := DefaultConfig()
		c.Mechanism.SpinResponse = 6.0
		c.Mechanism.ReturnRate = 7.0
		c.Mechanism.DragSensitivity = 0.22
		return c
	},
}

// GetPreset returns a fresh config for the named preset, nil when the
// name is unknown.
func GetPreset(name string) *Config {
	mk, ok := Presets[name]
	if !ok {
		return nil
	}
	return mk()
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
