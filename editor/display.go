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

import "strings"

// DisplayLines returns the visible tape and a caret line marking the
// head. This is a pure projection of the current state, shared by the
// screen and the show command.
func (e *Editor) DisplayLines() (string, string) {
	tape := e.tape.StringTo(e.visibleLength())
	caret := strings.Repeat(" ", e.head) + "^"
	return tape, caret
}
