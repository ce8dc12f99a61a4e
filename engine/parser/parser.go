// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching. Resolution of names
// to world objects happens in the interpreter chain.
package parser

import (
	"strings"

	"github.com/nathoo/fablecore/types"
)

var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

// Full direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true,
}

var verbAliases = map[string]string{
	// Examine
	"x":       "examine",
	"l":       "examine",
	"look":    "examine",
	"inspect": "examine",
	"check":   "examine",
	"study":   "examine",
	"observe": "examine",
	"read":    "examine",

	// Movement
	"walk":   "go",
	"run":    "go",
	"head":   "go",
	"travel": "go",

	// Take / Drop
	"get":     "take",
	"grab":    "take",
	"carry":   "take",
	"discard": "drop",

	// Use
	"apply": "use",

	// Talk
	"speak":    "talk",
	"chat":     "talk",
	"converse": "talk",

	// Conversation flow
	"continue": "next",
	"answer":   "respond",

	// Global
	"quit":       "exit",
	"q":          "exit",
	"restart":    "new",
	"commands":   "help",
	"?":          "help",
	"info":       "about",
	"inv":        "inventory",
	"i":          "inventory",
	"belongings": "inventory",
}

var prepositions = map[string]bool{
	"on": true, "at": true, "to": true,
	"with": true, "in": true, "from": true,
	"about": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
	}

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])

	// Use the first preposition as a delimiter between object and target.
	object, target := splitOnPreposition(rest)

	return types.Intent{
		Verb:   verb,
		Object: object,
		Target: target,
	}
}

// expandMultiWordVerbs handles "look at", "pick up", "talk to" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" || words[1] == "in" {
			return append([]string{"examine"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"take"}, words[2:]...)
		}
	case "put":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	case "talk", "speak", "chat":
		if words[1] == "to" || words[1] == "with" {
			return append([]string{"talk"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// splitOnPreposition splits words on the first preposition.
// Words before the preposition become the object, words after become the
// target. If no preposition is found, all words become the object.
func splitOnPreposition(words []string) (object, target string) {
	for i, w := range words {
		if prepositions[w] {
			return strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")
		}
	}
	return strings.Join(words, " "), ""
}
