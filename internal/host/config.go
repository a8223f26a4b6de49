package host

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ajanata/notepad"
)

const (
	configDir  = ".config/notepad"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointers and empty strings mean "keep the default".
type rawConfig struct {
	Framerate        *uint  `json:"framerate"`
	Flip             *bool  `json:"flip"`
	BootLogTimeout   string `json:"bootLogTimeout"`
	TransitionFrames *int   `json:"transitionFrames"`

	NoteBufferBytes *int `json:"noteBufferBytes"`
	PreviewBytes    *int `json:"previewBytes"`

	Buttons rawButtonsConfig `json:"buttons"`
	Scroll  rawScrollConfig  `json:"scroll"`
}

type rawButtonsConfig struct {
	MultiClickTimeout  string `json:"multiClickTimeout"`
	LongClickDelay     string `json:"longClickDelay"`
	MenuRepeatInterval string `json:"menuRepeatInterval"`
}

type rawScrollConfig struct {
	ClickDelta   *int   `json:"clickDelta"`
	LongDelta    *int   `json:"longDelta"`
	LongInterval string `json:"longInterval"`
	AutoDelta    *int   `json:"autoDelta"`
	AutoInterval string `json:"autoInterval"`
}

// ConfigPath is where LoadConfig looks when no path is given.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// LoadConfig reads a JSON config from path and merges it over notepad.DefaultConfig. An empty path means
// ConfigPath; a missing file there is not an error. Durations are strings like "250ms".
func LoadConfig(path string) (notepad.Config, error) {
	cfg := notepad.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = ConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := mergeConfig(&cfg, &raw); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func mergeConfig(cfg *notepad.Config, raw *rawConfig) error {
	if raw.Framerate != nil {
		cfg.Framerate = *raw.Framerate
	}
	if raw.Flip != nil {
		cfg.Flip = *raw.Flip
	}
	if raw.TransitionFrames != nil {
		cfg.TransitionFrames = *raw.TransitionFrames
	}
	if raw.NoteBufferBytes != nil {
		cfg.NoteBufferBytes = *raw.NoteBufferBytes
	}
	if raw.PreviewBytes != nil {
		cfg.PreviewBytes = *raw.PreviewBytes
	}
	if raw.Scroll.ClickDelta != nil {
		cfg.ScrollClickDelta = *raw.Scroll.ClickDelta
	}
	if raw.Scroll.LongDelta != nil {
		cfg.LongScrollDelta = *raw.Scroll.LongDelta
	}
	if raw.Scroll.AutoDelta != nil {
		cfg.AutoScrollDelta = *raw.Scroll.AutoDelta
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"bootLogTimeout", raw.BootLogTimeout, &cfg.BootLogTimeout},
		{"buttons.multiClickTimeout", raw.Buttons.MultiClickTimeout, &cfg.MultiClickTimeout},
		{"buttons.longClickDelay", raw.Buttons.LongClickDelay, &cfg.LongClickDelay},
		{"buttons.menuRepeatInterval", raw.Buttons.MenuRepeatInterval, &cfg.MenuRepeatInterval},
		{"scroll.longInterval", raw.Scroll.LongInterval, &cfg.LongScrollInterval},
		{"scroll.autoInterval", raw.Scroll.AutoInterval, &cfg.AutoScrollInterval},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = v
	}
	return nil
}
