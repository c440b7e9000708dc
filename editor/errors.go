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

import "errors"

// Errors returned by editor operations. All are recoverable; the editor's
// state is left completely unchanged when one is returned.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrNothingToDelete indicates a backspace with the head at slot 0.
	ErrNothingToDelete = errors.New("nothing to delete")

	// ErrSourceNotFound indicates a load source that does not exist.
	ErrSourceNotFound = errors.New("source not found")
)
