// FableCore is an authoring engine for text adventures: stories are
// written as Lua content files and played through a terminal host.
// Usage: fablecore [--version] [--plain] [--no-color] [--script <file>] [--config <file>] <story_directory>
package main

import (
	"fmt"
	"os"

	"github.com/nathoo/fablecore/cli"
	"github.com/nathoo/fablecore/config"
	"github.com/nathoo/fablecore/engine"
	"github.com/nathoo/fablecore/loader"
	"github.com/nathoo/fablecore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	opts := config.Default()
	var storyDir string
	var scriptFile string
	var configFile string
	plain := false
	noColor := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("fablecore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--no-color":
			noColor = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
		default:
			if storyDir == "" {
				storyDir = args[i]
			}
		}
	}

	if storyDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: fablecore [--version] [--plain] [--no-color] [--script <file>] [--config <file>] <story_directory>\n")
		os.Exit(1)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}
	if plain {
		opts.Plain = true
	}
	if noColor {
		opts.NoColor = true
	}

	// Load and compile the Lua story content.
	blueprint, err := loader.Load(storyDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading story: %v\n", err)
		os.Exit(1)
	}

	factory := func() (*engine.Game, error) {
		return blueprint.Build()
	}

	// Script mode: read commands from file, force plain output, echo input.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(factory, opts)
		c.In = f
		c.EchoInput = true
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Use the plain host when asked for or when stdout is not a terminal.
	if opts.Plain || !isTerminal() {
		if err := cli.New(factory, opts).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(tui.GameFactory(factory), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
