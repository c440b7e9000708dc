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

// Package editor implements the tape buffer engine. Text lives on a
// fixed-capacity tape of symbol slots with a single read/write head.
// Symbols are typed in insert or overwrite mode, and every edit is
// checkpointed as a deep-copy snapshot on a bounded undo stack, with a
// matching redo stack that typing invalidates.
package editor
