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
	"log"
	"os"

	"github.com/tkwade/scrawl/commander"
	"github.com/tkwade/scrawl/editor"
	"github.com/tkwade/scrawl/screen"
)

func main() {

	filenames := make([]string, 0)
	var script string
	var configPath string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval a script and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return
			}
		default:
			filenames = append(filenames, argi)
		}
	}

	cfg, err := editor.LoadConfig(configPath)
	if err != nil {
		log.Output(1, err.Error())
		return
	}

	// The editor session owns all text manipulation.
	e := editor.NewEditor(cfg)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if len(filenames) > 0 {
		// A missing file silently starts an empty buffer.
		if err := e.ReadFile(filenames[0]); err != nil {
			log.Output(1, err.Error())
			return
		}
	}

	if script != "" {
		// Run a script and exit.
		os.Stdout.WriteString(c.ParseEvalFile(script) + "\n")
		return
	}

	// Create a screen to manage the display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	defer s.Close()

	// Open a log file; termbox owns the terminal while we run.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.scrawllog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}
