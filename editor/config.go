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
package editor

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config carries the tunable constants of an editing session.
type Config struct {
	// MaxBufferSize caps buffer growth in bytes. 0 means unbounded.
	MaxBufferSize int `yaml:"max_buffer_size"`

	// HistoryDepth bounds the undo stack.
	HistoryDepth int `yaml:"history_depth"`

	// TabWidth is the number of spaces a tab inserts.
	TabWidth int `yaml:"tab_width"`

	// KeepOldestSnapshots drops new saves when the history is full instead
	// of evicting the oldest snapshot.
	KeepOldestSnapshots bool `yaml:"keep_oldest_snapshots"`

	// SystemClipboard mirrors cut/copy/paste through the OS clipboard.
	SystemClipboard bool `yaml:"system_clipboard"`
}

func DefaultConfig() *Config {
	return &Config{
		HistoryDepth: 100,
		TabWidth:     4,
	}
}

// LoadConfig reads a YAML config file. With an empty path the standard
// locations are searched and a missing file yields the defaults; an explicit
// path that cannot be read is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		if !explicit {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}
	if cfg.HistoryDepth < 1 {
		cfg.HistoryDepth = DefaultConfig().HistoryDepth
	}
	if cfg.TabWidth < 1 {
		cfg.TabWidth = DefaultConfig().TabWidth
	}
	if cfg.MaxBufferSize < 0 {
		cfg.MaxBufferSize = 0
	}
	return cfg, nil
}

func findConfigFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		path := filepath.Join(xdg, "scrawl", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", "scrawl", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
