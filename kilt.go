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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/timburks/kilt/commander"
	"github.com/timburks/kilt/config"
	"github.com/timburks/kilt/editor"
	"github.com/timburks/kilt/screen"
	"github.com/timburks/kilt/syntax"
	"github.com/timburks/kilt/terminal"
)

const usage = "Usage: kilt [--eval EXPR] [--display vt100|termbox] [--debug] <filename>"

func main() {
	os.Exit(run(os.Args[1:]))
}

// fatal reports an error after the terminal has been restored.
func fatal(err error) int {
	log.Output(2, err.Error())
	fmt.Fprintf(os.Stderr, "kilt: %s\n", err)
	return 1
}

func run(args []string) int {
	filenames := make([]string, 0)
	var script, display string
	var debug bool

	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--eval": // eval expression
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "No expression specified for --eval option")
				return 1
			}
			script = args[i]
		case "--display":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "No display specified for --display option")
				return 1
			}
			display = args[i]
		case "--debug":
			debug = true
		default:
			filenames = append(filenames, argi)
		}
	}
	if len(filenames) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	filename := filenames[0]

	cfg, err := config.Load()
	if err != nil {
		return fatal(err)
	}
	if display != "" {
		cfg.Display = display
		if err := cfg.Validate(); err != nil {
			return fatal(err)
		}
	}

	// Open a log file before the screen is taken over.
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			return fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.Buffer.SetRules(syntax.Select(filename, cfg.Syntaxes))
	if err := e.ReadFile(filename); err != nil {
		return fatal(err)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg)
	c.SetDebug(debug)

	if script != "" {
		// Evaluate an expression and exit.
		result, err := c.ParseEval(script)
		if err != nil {
			return fatal(err)
		}
		fmt.Println(result)
		return 0
	}

	var d screen.Display
	switch cfg.Display {
	case config.DisplayTermbox:
		s, err := screen.NewTermbox()
		if err != nil {
			return fatal(err)
		}
		d = s
	default:
		t, err := terminal.Open(os.Stdin, os.Stdout)
		if err != nil {
			return fatal(err)
		}
		d = screen.NewVT100(t)
	}

	if cfg.WatchFile {
		w, err := commander.Watch(filename)
		if err != nil {
			log.Printf("watch %s: %s", filename, err)
		} else {
			defer w.Close()
			c.SetWatcher(w)
		}
	}

	// Run the main event loop.
	e.SetMessage(commander.HelpMessage)
	err = c.Run(d)
	d.Close()
	if err != nil {
		return fatal(err)
	}
	return 0
}
