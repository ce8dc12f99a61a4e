// Package cli provides the plain terminal host for the FableCore game
// engine: a prompt loop that feeds input lines to a game and renders
// reactions as text.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/fablecore/config"
	"github.com/nathoo/fablecore/engine"
	"github.com/nathoo/fablecore/types"
)

// GameFactory builds a fresh game. It is called once at startup and
// again whenever the player asks for a new game.
type GameFactory func() (*engine.Game, error)

// CLI handles terminal interaction with the player.
type CLI struct {
	Factory   GameFactory
	In        io.Reader
	Out       io.Writer
	Options   config.Options
	EchoInput bool // echo each input line after the prompt (for script playback)

	game *engine.Game
}

// New creates a CLI that builds its games from the given factory.
func New(factory GameFactory, opts config.Options) *CLI {
	return &CLI{
		Factory: factory,
		In:      os.Stdin,
		Out:     os.Stdout,
		Options: opts,
	}
}

// Run starts the game loop. It shows the intro, describes the starting
// room, then loops: prompt → input → execute → output. It returns when
// the input runs out or the story reaches a terminal reaction.
func (c *CLI) Run() error {
	if err := c.startGame(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print(c.Options.Prompt)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		reaction := c.game.Execute(input)
		c.printReaction(reaction)

		if c.game.NewRequested() {
			c.printLine("")
			if err := c.startGame(); err != nil {
				return err
			}
			continue
		}

		if c.game.HasEnded() {
			c.printEnd()
			return nil
		}

		if reaction.Result == types.OK {
			c.printLine("")
			c.printRoom()
		}
	}
	return scanner.Err()
}

// startGame builds a fresh game and prints the intro and opening room.
func (c *CLI) startGame() error {
	game, err := c.Factory()
	if err != nil {
		return fmt.Errorf("cli: building game: %w", err)
	}
	c.game = game

	info := game.Info()
	c.printLine(info.Title)
	if info.Author != "" {
		c.printLine("by " + info.Author)
	}
	if info.Description != "" {
		c.printLine("")
		c.printLine(info.Description)
	}
	c.printLine("")
	c.printRoom()
	return nil
}

func (c *CLI) printRoom() {
	for _, line := range engine.DescribeRoom(c.game) {
		c.printLine(line)
	}
}

func (c *CLI) printReaction(reaction types.Reaction) {
	if reaction.Description != "" {
		c.printLine(reaction.Description)
	}
}

func (c *CLI) printEnd() {
	if end, ok := c.game.EndState(); ok {
		c.printLine("")
		c.printLine(end.Title)
		if end.Description != "" {
			c.printLine("")
			c.printLine(end.Description)
		}
	}
	c.printLine("")
	c.printLine("The end.")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
