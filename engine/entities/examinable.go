package entities

import (
	"strings"

	"github.com/nathoo/fablecore/types"
)

// ExaminationResult is the outcome of examining an object.
type ExaminationResult struct {
	Description string
}

// CommandCallback is the body of a custom per-instance verb. Callbacks
// capture the objects they mutate when the command is authored.
type CommandCallback func() types.Reaction

// CustomCommand is an author-attached verb on an examinable object.
type CustomCommand struct {
	Help     types.CommandHelp
	Visible  bool // listed in examinations and contextual help
	Callback CommandCallback
}

// ExaminationCallback produces the result of examining an object. The
// default resolver renders the description plus the visible commands.
type ExaminationCallback func(e *Examinable) ExaminationResult

// Examinable is the capability shared by items and characters: a name,
// display text, optional custom commands, player visibility, and a
// replaceable examination resolver.
type Examinable struct {
	identifier  Identifier
	description *Description
	commands    []*CustomCommand
	visible     bool
	examination ExaminationCallback
}

// NewExaminable creates a player-visible examinable with a fixed
// description and the default examination resolver.
func NewExaminable(name, description string) *Examinable {
	return &Examinable{
		identifier:  NewIdentifier(name),
		description: NewDescription(description),
		visible:     true,
	}
}

// Identifier returns the object's name.
func (e *Examinable) Identifier() Identifier {
	return e.identifier
}

// Description returns the object's display text.
func (e *Examinable) Description() *Description {
	return e.description
}

// SetDescription replaces the object's display text.
func (e *Examinable) SetDescription(d *Description) {
	e.description = d
}

// Commands returns the custom verbs attached to this object.
func (e *Examinable) Commands() []*CustomCommand {
	return e.commands
}

// AddCommand attaches a custom verb to this object.
func (e *Examinable) AddCommand(c *CustomCommand) {
	e.commands = append(e.commands, c)
}

// FindCommand looks up a visible custom command by verb name.
func (e *Examinable) FindCommand(name string) (*CustomCommand, bool) {
	for _, c := range e.commands {
		if c.Visible && NewIdentifier(c.Help.Command).Matches(name) {
			return c, true
		}
	}
	return nil, false
}

// IsPlayerVisible reports whether the player can see and refer to this
// object.
func (e *Examinable) IsPlayerVisible() bool {
	return e.visible
}

// SetPlayerVisible shows or hides the object from the player.
func (e *Examinable) SetPlayerVisible(visible bool) {
	e.visible = visible
}

// SetExamination replaces the examination resolver. A nil callback
// restores the default.
func (e *Examinable) SetExamination(cb ExaminationCallback) {
	e.examination = cb
}

// Examine resolves an examination of this object.
func (e *Examinable) Examine() ExaminationResult {
	if e.examination != nil {
		return e.examination(e)
	}
	return defaultExamination(e)
}

// defaultExamination renders the description followed by a listing of the
// visible custom commands.
func defaultExamination(e *Examinable) ExaminationResult {
	var b strings.Builder
	b.WriteString(e.description.Text())
	var visible []*CustomCommand
	for _, c := range e.commands {
		if c.Visible {
			visible = append(visible, c)
		}
	}
	if len(visible) > 0 {
		b.WriteString("\n\nCommands:")
		for _, c := range visible {
			b.WriteString("\n  ")
			b.WriteString(c.Help.Command)
			if c.Help.Description != "" {
				b.WriteString(" - ")
				b.WriteString(c.Help.Description)
			}
		}
	}
	return ExaminationResult{Description: b.String()}
}
