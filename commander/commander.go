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
	"fmt"
	"strings"

	tott "tott/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor      tott.Editor
	mode        int    // commander mode
	debug       bool   // debug mode displays information about events (key codes, etc)
	commandText string // command as it is being typed on the command line
	lispText    string // lisp command as it is being typed
	message     string // status message
}

func NewCommander(e tott.Editor) *Commander {
	c := &Commander{editor: e, mode: tott.ModeEdit}
	c.initLisp()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != tott.ModeQuit
}

func (c *Commander) ProcessEvent(event *tott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case tott.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *tott.Event) error {
	switch c.mode {
	case tott.ModeEdit:
		return c.processKeyEditMode(event)
	case tott.ModeCommand:
		return c.processKeyCommandMode(event)
	case tott.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *tott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tott.KeyEsc:
			c.message = ""
		case tott.KeyArrowLeft:
			e.MoveLeft()
		case tott.KeyArrowRight:
			e.MoveRight()
		case tott.KeyCtrlA, tott.KeyHome:
			e.MoveStart()
		case tott.KeyCtrlE, tott.KeyEnd:
			e.MoveEnd()
		case tott.KeyBackspace2:
			c.deleteBackward()
		case tott.KeyCtrlT:
			e.ToggleMode()
			c.message = "mode: " + tott.WriteModeName(e.GetMode())
		case tott.KeyCtrlZ:
			c.reportIfError(e.Undo())
		case tott.KeyCtrlY:
			c.reportIfError(e.Redo())
		case tott.KeySpace:
			e.TypeText(" ")
		}
	}
	if ch != 0 {
		switch ch {
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = tott.ModeCommand
			c.commandText = ""
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = tott.ModeLisp
			c.lispText = "("
		//
		// anything else lands on the tape
		//
		default:
			e.TypeText(string(ch))
		}
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *tott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tott.KeyEsc:
			c.mode = tott.ModeEdit
		case tott.KeyEnter:
			c.performCommand()
		case tott.KeyBackspace2:
			if len(c.commandText) > 0 {
				c.commandText = c.commandText[0 : len(c.commandText)-1]
			}
		case tott.KeySpace:
			c.commandText += " "
		}
	}
	if ch != 0 {
		c.commandText = c.commandText + string(ch)
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *tott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tott.KeyEsc:
			c.mode = tott.ModeEdit
		case tott.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = tott.ModeEdit
		case tott.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case tott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) performCommand() {
	e := c.editor

	parts := strings.Split(c.commandText, " ")
	if len(parts) > 0 {
		switch parts[0] {
		case "q", "quit":
			c.mode = tott.ModeQuit
			return
		case "w":
			var filename string
			if len(parts) == 2 {
				filename = parts[1]
			} else {
				filename = e.GetFileName()
			}
			c.writeFile(filename)
		case "wq":
			var filename string
			if len(parts) == 2 {
				filename = parts[1]
			} else {
				filename = e.GetFileName()
			}
			c.writeFile(filename)
			c.mode = tott.ModeQuit
			return
		case "r", "load":
			if len(parts) == 2 {
				c.reportIfError(e.ReadFile(parts[1]))
			}
		case "replace":
			if len(parts) == 3 {
				e.ReplaceText(parts[1], parts[2])
				c.message = fmt.Sprintf("replaced '%s' with '%s'", parts[1], parts[2])
			} else {
				c.message = "usage: replace old new"
			}
		case "clear":
			e.ClearAll()
			c.message = "cleared all text"
		case "count":
			words, chars := e.WordCount()
			c.message = fmt.Sprintf("%d words, %d characters", words, chars)
		case "mode":
			e.ToggleMode()
			c.message = "mode: " + tott.WriteModeName(e.GetMode())
		case "undo":
			c.reportIfError(e.Undo())
		case "redo":
			c.reportIfError(e.Redo())
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.debug = true
				} else if parts[1] == "off" {
					c.debug = false
					c.message = ""
				}
			}
		default:
			c.message = ""
		}
	}
	c.commandText = ""
	c.mode = tott.ModeEdit
}

func (c *Commander) deleteBackward() {
	deleted, err := c.editor.Backspace()
	if err != nil {
		c.message = err.Error()
		return
	}
	c.message = fmt.Sprintf("deleted '%c'", deleted)
}

func (c *Commander) writeFile(filename string) {
	if filename == "" {
		c.message = "no file name"
		return
	}
	if err := c.editor.WriteFile(filename); err != nil {
		c.message = err.Error()
		return
	}
	c.message = "saved " + filename
}

// recoverable editor errors surface on the message bar
func (c *Commander) reportIfError(err error) {
	if err != nil {
		c.message = err.Error()
	} else {
		c.message = ""
	}
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case tott.ModeCommand:
		line += ":" + c.commandText
	case tott.ModeLisp:
		line += c.lispText
	default:
		line += c.message
	}
	if len(line) > length {
		line = line[0:length]
	}
	return line
}
