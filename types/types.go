// Package types defines the shared data structures for the FableCore engine.
// This package contains only type definitions — no logic beyond String().
package types

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
	Target string // optional
}

// ReactionResult classifies the outcome of a command.
type ReactionResult int

const (
	// None: nothing happened; the input was not actionable.
	None ReactionResult = iota
	// OK: the command ran and mutated the world; hosts should re-render.
	OK
	// Internal: the command produced its own narration; hosts must not
	// re-render generically on top of it.
	Internal
	// Error: invalid input; no mutation occurred and the player may retry.
	Error
	// Fatal: session-ending (death or quit).
	Fatal
)

// String returns the result name for traces and test failures.
func (r ReactionResult) String() string {
	switch r {
	case None:
		return "none"
	case OK:
		return "ok"
	case Internal:
		return "internal"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Reaction is the output of every command: a result tag plus narrative text.
// It is the contract between command dispatch and the rendering host.
type Reaction struct {
	Result      ReactionResult
	Description string
}

// CommandHelp is a (command, description) pair for contextual help text.
type CommandHelp struct {
	Command     string
	Description string
}

// EndState is the payload of a fired completion or death predicate.
type EndState struct {
	Title       string
	Description string
}
