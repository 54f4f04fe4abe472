//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the settings of kilt from
// ~/.config/kilt/settings.json. A missing file means defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/timburks/kilt/syntax"
)

// Display backends
const (
	DisplayVT100   = "vt100"
	DisplayTermbox = "termbox"
)

type Config struct {
	QuitTimes             int            `json:"quit_times"`
	MessageTimeoutSeconds int            `json:"message_timeout_seconds"`
	Display               string         `json:"display"`
	LogFile               string         `json:"log_file"`
	WatchFile             bool           `json:"watch_file"`
	Syntaxes              []syntax.Rules `json:"syntaxes"`
}

func Default() *Config {
	logFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		logFile = filepath.Join(home, ".kiltlog")
	}
	return &Config{
		QuitTimes:             3,
		MessageTimeoutSeconds: 5,
		Display:               DisplayVT100,
		LogFile:               logFile,
		WatchFile:             true,
	}
}

// MessageTimeout is how long a status message stays visible.
func (c *Config) MessageTimeout() time.Duration {
	return time.Duration(c.MessageTimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	switch c.Display {
	case DisplayVT100, DisplayTermbox:
	default:
		return fmt.Errorf("unknown display %q", c.Display)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative")
	}
	if c.MessageTimeoutSeconds <= 0 {
		return fmt.Errorf("message_timeout_seconds must be positive")
	}
	for i, rules := range c.Syntaxes {
		if rules.Name == "" || len(rules.FileMatch) == 0 && len(rules.Lexers) == 0 {
			return fmt.Errorf("syntax %d needs a name and a filematch or lexers list", i)
		}
	}
	return nil
}

func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kilt", "settings.json")
}

func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads settings from path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
