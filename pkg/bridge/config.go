package bridge

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ghodss/yaml"

	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

// Duration is a time.Duration that marshals as a Go duration string
// ("500ms") while still accepting plain nanosecond integers.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = Duration(n)
	return nil
}

// ProfileConfig enables one virtual output device and sets its identity.
type ProfileConfig struct {
	Enabled   bool   `json:"enabled"`
	Name      string `json:"name"`
	VendorID  uint16 `json:"vendorId"`
	ProductID uint16 `json:"productId"`
}

// Config is the bridge's own configuration. The SpaceControl daemon's
// profile file is separate and only forwarded, never parsed here.
type Config struct {
	LogLevel     string        `json:"logLevel"`
	LibraryPath  string        `json:"libraryPath"`
	UinputPath   string        `json:"uinputPath"`
	DeviceIndex  int           `json:"deviceIndex"`
	AxisScale    int32         `json:"axisScale"`
	PollInterval Duration      `json:"pollInterval"`
	TakeTimeout  Duration      `json:"takeTimeout"`
	Pointer      ProfileConfig `json:"pointer"`
	Gamepad      ProfileConfig `json:"gamepad"`
}

// DefaultConfig mirrors the identities spacenavd already knows: the pointer
// profile reports a 3Dconnexion SpaceMouse Enterprise, the gamepad a
// generic development id.
func DefaultConfig() Config {
	return Config{
		LogLevel:     "info",
		LibraryPath:  scontrol.DefaultLibraryPath,
		UinputPath:   "/dev/uinput",
		DeviceIndex:  0,
		AxisScale:    20,
		PollInterval: Duration(2 * time.Millisecond),
		TakeTimeout:  Duration(500 * time.Millisecond),
		Pointer: ProfileConfig{
			Enabled:   true,
			Name:      "SpaceController spacenavd",
			VendorID:  0x046d,
			ProductID: 0xc627,
		},
		Gamepad: ProfileConfig{
			Enabled:   false,
			Name:      "SpaceController Virtual Gamepad",
			VendorID:  0x1209,
			ProductID: 0x0001,
		},
	}
}

// LoadConfig reads the bridge config, falling back to defaults when the
// file does not exist. A file that exists but cannot be parsed is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	yamlB, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	jsonB, err := yaml.YAMLToJSON(yamlB)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := json.Unmarshal(jsonB, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	return cfg, nil
}
