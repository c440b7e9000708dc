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
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tott/commander"
	"tott/config"
	"tott/editor"
	"tott/screen"
)

// logger prints to stderr until the screen takes over the terminal.
var logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

var (
	evalScript string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tott [file]",
	Short: "tott – a tape text editor for terminals",
	Long: "tott edits text on a fixed-capacity tape with a read/write head,\n" +
		"insert and overwrite modes, and full undo/redo history.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.Path(); err != nil {
				return err
			}
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		// The editor manages all text manipulation.
		e := editor.NewEditor(cfg.Options()...)

		// The commander converts user inputs into commands for the editor.
		c := commander.NewCommander(e)

		if len(args) == 1 {
			filename := args[0]
			err := e.ReadFile(filename)
			if err != nil && !errors.Is(err, editor.ErrSourceNotFound) {
				return err
			}
			// a file that doesn't exist yet gets its name for later saves
			e.SetFileName(filename)
		}

		if evalScript != "" {
			// Run a tott script and exit.
			out := c.ParseEvalFile(evalScript)
			if out != "" {
				logger.Info(out)
			}
			fmt.Println(e.GetText())
			return nil
		}

		// Create a screen to manage display.
		s := screen.NewScreen()
		if s == nil {
			return errors.New("unable to open the terminal")
		}
		defer s.Close()

		// Log to a file while the screen owns the terminal.
		home, err := os.UserHomeDir()
		if err == nil {
			f, err := os.OpenFile(filepath.Join(home, ".tottlog"),
				os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
			if err == nil {
				logger.SetOutput(f)
				defer f.Close()
			}
		}

		// Run the main event loop.
		for c.IsRunning() {
			s.Render(e, c)
			if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
				logger.Error("processing event", "err", err)
			}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&evalScript, "eval", "", "run a lisp script and exit")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.tott.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
