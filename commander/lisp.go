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
	"errors"
	"fmt"

	"github.com/steelseries/golisp"
)

// golisp primitives are registered in the global environment, so scripts
// always address the most recently created commander.
var (
	lispCommander *Commander
	registered    bool
)

func (c *Commander) initLisp() {
	lispCommander = c
	if registered {
		return
	}
	registered = true
	golisp.MakePrimitiveFunction("type-text", "1", typeTextImpl)
	golisp.MakePrimitiveFunction("delete-backward", "0", deleteBackwardImpl)
	golisp.MakePrimitiveFunction("move-left", "0", moveLeftImpl)
	golisp.MakePrimitiveFunction("move-right", "0", moveRightImpl)
	golisp.MakePrimitiveFunction("move-start", "0", moveStartImpl)
	golisp.MakePrimitiveFunction("move-end", "0", moveEndImpl)
	golisp.MakePrimitiveFunction("toggle-mode", "0", toggleModeImpl)
	golisp.MakePrimitiveFunction("undo", "0", undoImpl)
	golisp.MakePrimitiveFunction("redo", "0", redoImpl)
	golisp.MakePrimitiveFunction("clear-all", "0", clearAllImpl)
	golisp.MakePrimitiveFunction("replace-text", "2", replaceTextImpl)
	golisp.MakePrimitiveFunction("word-count", "0", wordCountImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", bufferTextImpl)
	golisp.MakePrimitiveFunction("show-tape", "0", showTapeImpl)
	golisp.MakePrimitiveFunction("write-file", "1", writeFileImpl)
	golisp.MakePrimitiveFunction("read-file", "1", readFileImpl)
}

func stringArg(d *golisp.Data, name string) (string, error) {
	if !golisp.StringP(d) {
		return "", errors.New(name + " requires a string argument")
	}
	return golisp.StringValue(d), nil
}

func typeTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArg(golisp.Car(args), "type-text")
	if err != nil {
		return nil, err
	}
	lispCommander.editor.TypeText(text)
	return nil, nil
}

func deleteBackwardImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	deleted, err := lispCommander.editor.Backspace()
	if err != nil {
		lispCommander.message = err.Error()
		return nil, nil
	}
	lispCommander.message = fmt.Sprintf("deleted '%c'", deleted)
	return golisp.StringWithValue(string(deleted)), nil
}

func moveLeftImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.MoveLeft()
	return nil, nil
}

func moveRightImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.MoveRight()
	return nil, nil
}

func moveStartImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.MoveStart()
	return nil, nil
}

func moveEndImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.MoveEnd()
	return nil, nil
}

func toggleModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.ToggleMode()
	return nil, nil
}

func undoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.reportIfError(lispCommander.editor.Undo())
	return nil, nil
}

func redoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.reportIfError(lispCommander.editor.Redo())
	return nil, nil
}

func clearAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.ClearAll()
	return nil, nil
}

func replaceTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	old, err := stringArg(golisp.Car(args), "replace-text")
	if err != nil {
		return nil, err
	}
	new, err := stringArg(golisp.Cadr(args), "replace-text")
	if err != nil {
		return nil, err
	}
	lispCommander.editor.ReplaceText(old, new)
	return nil, nil
}

func wordCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	words, chars := lispCommander.editor.WordCount()
	return golisp.StringWithValue(fmt.Sprintf("%d words, %d characters", words, chars)), nil
}

func bufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(lispCommander.editor.GetText()), nil
}

func showTapeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tape, caret := lispCommander.editor.DisplayLines()
	return golisp.StringWithValue(tape + "\n" + caret), nil
}

func writeFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArg(golisp.Car(args), "write-file")
	if err != nil {
		return nil, err
	}
	lispCommander.writeFile(path)
	return nil, nil
}

func readFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArg(golisp.Car(args), "read-file")
	if err != nil {
		return nil, err
	}
	lispCommander.reportIfError(lispCommander.editor.ReadFile(path))
	return nil, nil
}

// ParseEval evaluates a single lisp expression and returns its printed
// value, or an error description.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("error: %+v", err)
	}
	return golisp.String(value)
}

// ParseEvalFile runs a lisp script from a file and returns the printed
// value of its last expression.
func (c *Commander) ParseEvalFile(path string) string {
	value, err := golisp.ProcessFile(path)
	if err != nil {
		return fmt.Sprintf("error: %+v", err)
	}
	return golisp.String(value)
}
