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
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tott/editor"
)

// Config holds the editor settings read from the config file.
type Config struct {
	TapeSize     int    `yaml:"tape_size"`
	HistoryLimit int    `yaml:"history_limit"`
	Blank        string `yaml:"blank"`
}

func Default() Config {
	return Config{
		TapeSize:     editor.DefaultTapeSize,
		HistoryLimit: editor.DefaultHistoryLimit,
		Blank:        string(editor.DefaultBlank),
	}
}

// Path returns the user's config file location, ~/.tott.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tott.yaml"), nil
}

// Load reads settings from the given file. A missing file means
// defaults; a file that cannot be parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.TapeSize <= 0 {
		cfg.TapeSize = editor.DefaultTapeSize
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = editor.DefaultHistoryLimit
	}
	return cfg, nil
}

// BlankRune returns the configured blank symbol, or the default when the
// setting is empty.
func (c Config) BlankRune() rune {
	for _, r := range c.Blank {
		return r
	}
	return editor.DefaultBlank
}

// Options converts the settings into editor options.
func (c Config) Options() []editor.Option {
	return []editor.Option{
		editor.WithTapeSize(c.TapeSize),
		editor.WithHistoryLimit(c.HistoryLimit),
		editor.WithBlank(c.BlankRune()),
	}
}
