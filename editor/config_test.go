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
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HistoryDepth != 100 {
		t.Errorf("expected history depth 100, got %d", cfg.HistoryDepth)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", cfg.TabWidth)
	}
	if cfg.MaxBufferSize != 0 {
		t.Errorf("expected unbounded buffer, got %d", cfg.MaxBufferSize)
	}
	if cfg.KeepOldestSnapshots || cfg.SystemClipboard {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "history_depth: 10\ntab_width: 8\nmax_buffer_size: 4096\nkeep_oldest_snapshots: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup failed: %+v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %+v", err)
	}
	if cfg.HistoryDepth != 10 || cfg.TabWidth != 8 || cfg.MaxBufferSize != 4096 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.KeepOldestSnapshots {
		t.Errorf("expected keep_oldest_snapshots to be set")
	}
	if cfg.SystemClipboard {
		t.Errorf("unset fields keep their defaults")
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("an explicit missing config path must be an error")
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "history_depth: -1\ntab_width: 0\nmax_buffer_size: -100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup failed: %+v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %+v", err)
	}
	if cfg.HistoryDepth != 100 || cfg.TabWidth != 4 || cfg.MaxBufferSize != 0 {
		t.Errorf("invalid values must fall back to defaults: %+v", cfg)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history_depth: [not an int\n"), 0644); err != nil {
		t.Fatalf("setup failed: %+v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("malformed YAML must be an error")
	}
}
