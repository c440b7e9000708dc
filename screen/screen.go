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
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	tott "tott/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size tott.Size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e tott.Editor, c tott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize tott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	s.renderTape(e)
	s.renderInfoBar(e, c)
	s.renderMessageBar(c)
	termbox.Flush()
}

// renderTape wraps the full tape across the rows above the info bar,
// unused slots dimmed, with the hardware cursor on the head slot.
func (s *Screen) renderTape(e tott.Editor) {
	cols := s.size.Cols
	if cols <= 0 {
		return
	}
	rows := s.size.Rows - 2
	tape, _ := e.DisplayLines()
	visible := []rune(tape)
	for i := 0; i < e.GetTapeSize(); i++ {
		row := i / cols
		if row >= rows {
			break
		}
		col := i % cols
		ch := '.'
		color := termbox.ColorBlue
		if i < len(visible) {
			ch = visible[i]
			color = termbox.ColorWhite
		}
		termbox.SetCell(col, row, ch, color, termbox.ColorBlack)
	}
	termbox.SetCursor(e.GetHead()%cols, e.GetHead()/cols)
}

func (s *Screen) renderInfoBar(e tott.Editor, c tott.Commander) {
	finalText := fmt.Sprintf(" %d/%d ", e.GetHead(), e.GetTapeSize())
	text := " the tott editor - " + e.GetFileName() +
		" - " + tott.WriteModeName(e.GetMode()) + " "
	for len(text) < s.size.Cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, rune(ch),
			termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) renderMessageBar(c tott.Commander) {
	line := c.GetMessageBarText(s.size.Cols)
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *tott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &tott.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) tott.Key {
	switch k {
	case termbox.KeyArrowUp:
		return tott.KeyArrowUp
	case termbox.KeyArrowDown:
		return tott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return tott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return tott.KeyArrowRight
	case termbox.KeyBackspace:
		return tott.KeyBackspace2
	case termbox.KeyBackspace2:
		return tott.KeyBackspace2
	case termbox.KeyCtrlA:
		return tott.KeyCtrlA
	case termbox.KeyCtrlE:
		return tott.KeyCtrlE
	case termbox.KeyCtrlT:
		return tott.KeyCtrlT
	case termbox.KeyCtrlY:
		return tott.KeyCtrlY
	case termbox.KeyCtrlZ:
		return tott.KeyCtrlZ
	case termbox.KeyEnd:
		return tott.KeyEnd
	case termbox.KeyEnter:
		return tott.KeyEnter
	case termbox.KeyEsc:
		return tott.KeyEsc
	case termbox.KeyHome:
		return tott.KeyHome
	case termbox.KeySpace:
		return tott.KeySpace
	case termbox.KeyTab:
		return tott.KeyTab
	default:
		return tott.KeyUnsupported
	}
}
