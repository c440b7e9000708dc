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
package commander

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tott/editor"
	tott "tott/types"
)

func setup(t *testing.T) (*Commander, *editor.Editor) {
	t.Helper()
	e := editor.NewEditor(editor.WithTapeSize(40))
	return NewCommander(e), e
}

func keyEvent(k tott.Key) *tott.Event {
	return &tott.Event{Type: tott.EventKey, Key: k}
}

func charEvent(ch rune) *tott.Event {
	return &tott.Event{Type: tott.EventKey, Ch: ch}
}

func typeString(c *Commander, s string) {
	for _, ch := range s {
		if ch == ' ' {
			c.ProcessEvent(keyEvent(tott.KeySpace))
		} else {
			c.ProcessEvent(charEvent(ch))
		}
	}
}

func TestEditModeTyping(t *testing.T) {
	c, e := setup(t)
	typeString(c, "hi there")
	assert.Equal(t, "hi there", e.GetText())
	assert.Equal(t, 8, e.GetHead())
}

func TestEditModeBackspace(t *testing.T) {
	c, e := setup(t)
	typeString(c, "hi")
	c.ProcessEvent(keyEvent(tott.KeyBackspace2))
	assert.Equal(t, "h", e.GetText())
	assert.Equal(t, "deleted 'i'", c.GetMessage())

	c.ProcessEvent(keyEvent(tott.KeyBackspace2))
	c.ProcessEvent(keyEvent(tott.KeyBackspace2))
	assert.Equal(t, "nothing to delete", c.GetMessage())
}

func TestEditModeMovement(t *testing.T) {
	c, e := setup(t)
	typeString(c, "abc")
	c.ProcessEvent(keyEvent(tott.KeyArrowLeft))
	assert.Equal(t, 2, e.GetHead())
	c.ProcessEvent(keyEvent(tott.KeyHome))
	assert.Equal(t, 0, e.GetHead())
	c.ProcessEvent(keyEvent(tott.KeyArrowRight))
	assert.Equal(t, 1, e.GetHead())
	c.ProcessEvent(keyEvent(tott.KeyEnd))
	assert.Equal(t, 2, e.GetHead())
}

func TestEditModeUndoRedoKeys(t *testing.T) {
	c, e := setup(t)
	typeString(c, "abc")
	c.ProcessEvent(keyEvent(tott.KeyCtrlZ))
	assert.Equal(t, "ab", e.GetText())
	c.ProcessEvent(keyEvent(tott.KeyCtrlY))
	assert.Equal(t, "abc", e.GetText())

	c.ProcessEvent(keyEvent(tott.KeyCtrlY))
	assert.Equal(t, "nothing to redo", c.GetMessage())
}

func TestEditModeToggleKey(t *testing.T) {
	c, e := setup(t)
	c.ProcessEvent(keyEvent(tott.KeyCtrlT))
	assert.Equal(t, tott.ModeOverwrite, e.GetMode())
	assert.Equal(t, "mode: overwrite", c.GetMessage())
}

func TestCommandModeEntryAndEscape(t *testing.T) {
	c, _ := setup(t)
	c.ProcessEvent(charEvent(':'))
	assert.Equal(t, tott.ModeCommand, c.GetMode())
	typeString(c, "cou")
	assert.Equal(t, ":cou", c.GetMessageBarText(80))
	c.ProcessEvent(keyEvent(tott.KeyEsc))
	assert.Equal(t, tott.ModeEdit, c.GetMode())
}

func TestCommandCount(t *testing.T) {
	c, e := setup(t)
	e.TypeText("ab ab")
	c.ProcessEvent(charEvent(':'))
	typeString(c, "count")
	c.ProcessEvent(keyEvent(tott.KeyEnter))
	assert.Equal(t, "2 words, 5 characters", c.GetMessage())
	assert.Equal(t, tott.ModeEdit, c.GetMode())
}

func TestCommandReplace(t *testing.T) {
	c, e := setup(t)
	e.TypeText("ab ab")
	c.commandText = "replace ab xyz"
	c.performCommand()
	assert.Equal(t, "xyz xyz", e.GetText())
}

func TestCommandReplaceUsage(t *testing.T) {
	c, _ := setup(t)
	c.commandText = "replace ab"
	c.performCommand()
	assert.Equal(t, "usage: replace old new", c.GetMessage())
}

func TestCommandClearAndUndo(t *testing.T) {
	c, e := setup(t)
	e.TypeText("hello")
	c.commandText = "clear"
	c.performCommand()
	assert.Equal(t, "", e.GetText())

	c.commandText = "undo"
	c.performCommand()
	assert.Equal(t, "hello", e.GetText())
}

func TestCommandUndoEmpty(t *testing.T) {
	c, _ := setup(t)
	c.commandText = "undo"
	c.performCommand()
	assert.Equal(t, "nothing to undo", c.GetMessage())
}

func TestCommandMode(t *testing.T) {
	c, e := setup(t)
	c.commandText = "mode"
	c.performCommand()
	assert.Equal(t, tott.ModeOverwrite, e.GetMode())
	assert.Equal(t, "mode: overwrite", c.GetMessage())
}

func TestCommandQuit(t *testing.T) {
	c, _ := setup(t)
	require.True(t, c.IsRunning())
	c.ProcessEvent(charEvent(':'))
	c.ProcessEvent(charEvent('q'))
	c.ProcessEvent(keyEvent(tott.KeyEnter))
	assert.False(t, c.IsRunning())
}

func TestCommandWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tape.txt")

	c, e := setup(t)
	e.TypeText("saved text")
	c.commandText = "w " + path
	c.performCommand()
	assert.Equal(t, "saved "+path, c.GetMessage())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved text", string(b))

	c2, e2 := setup(t)
	c2.commandText = "r " + path
	c2.performCommand()
	assert.Equal(t, "saved text", e2.GetText())
}

func TestCommandWriteWithoutName(t *testing.T) {
	c, _ := setup(t)
	c.commandText = "w"
	c.performCommand()
	assert.Equal(t, "no file name", c.GetMessage())
}

func TestCommandReadMissing(t *testing.T) {
	c, _ := setup(t)
	c.commandText = "r " + filepath.Join(t.TempDir(), "missing.txt")
	c.performCommand()
	assert.Contains(t, c.GetMessage(), "source not found")
}

func TestMessageBarTruncation(t *testing.T) {
	c, _ := setup(t)
	c.message = "a very long status message"
	assert.Equal(t, "a very", c.GetMessageBarText(6))
}
