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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tott/editor"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, editor.DefaultTapeSize, cfg.TapeSize)
	assert.Equal(t, editor.DefaultHistoryLimit, cfg.HistoryLimit)
	assert.Equal(t, editor.DefaultBlank, cfg.BlankRune())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tott.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tape_size: 64\nhistory_limit: 16\nblank: \".\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.TapeSize)
	assert.Equal(t, 16, cfg.HistoryLimit)
	assert.Equal(t, '.', cfg.BlankRune())
	assert.Len(t, cfg.Options(), 3)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tott.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tape_size: 64\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.TapeSize)
	assert.Equal(t, editor.DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tott.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tape_size: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tott.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tape_size: -1\nhistory_limit: 0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, editor.DefaultTapeSize, cfg.TapeSize)
	assert.Equal(t, editor.DefaultHistoryLimit, cfg.HistoryLimit)
}
