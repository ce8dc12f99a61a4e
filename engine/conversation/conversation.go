// Package conversation implements the branching dialogue state machine
// owned by non-playable characters: an ordered sequence of paragraphs,
// a nullable cursor, and signed-offset transitions chosen either by the
// paragraph itself or by a player response.
package conversation

import (
	"fmt"
	"strings"

	"github.com/nathoo/fablecore/types"
)

// Game is the engine surface handed to paragraph actions when they run.
// It is implemented by engine.Game. Actions that need specific world
// objects capture them when the content is authored.
type Game interface {
	// EndConversation detaches the active conversation, if any.
	EndConversation()
}

// Speaker tags a log line as spoken by the player or the other party.
type Speaker int

const (
	Other Speaker = iota
	Player
)

// LogEntry is one spoken line in a conversation's append-only log.
type LogEntry struct {
	Speaker Speaker
	Line    string
}

// Response is a player choice offered by a paragraph. Delta is the signed
// index offset applied when the response is chosen, independent of the
// paragraph's own Delta. A zero Delta advances to the next paragraph.
type Response struct {
	Line  string
	Delta int
}

// Paragraph is one unit of the other party's dialogue. Action, if set,
// runs each time the paragraph is entered, before its line is logged.
// A zero Delta advances to the next paragraph.
type Paragraph struct {
	Line      string
	Action    func(g Game)
	Delta     int
	Responses []*Response
}

// Conversation holds the paragraph sequence and the cursor. The cursor is
// either a valid index or unset (before the first Next and after any
// transition that falls outside the sequence).
type Conversation struct {
	paragraphs []*Paragraph
	current    int // index into paragraphs, -1 when unset
	advanced   bool
	log        []LogEntry
}

// New creates a conversation over the given paragraphs. The cursor starts
// unset; the first Next enters the opening paragraph.
func New(paragraphs ...*Paragraph) *Conversation {
	return &Conversation{paragraphs: paragraphs, current: -1}
}

// CurrentParagraph returns the paragraph under the cursor, or nil when the
// conversation has not started or has ended.
func (c *Conversation) CurrentParagraph() *Paragraph {
	if c.current < 0 || c.current >= len(c.paragraphs) {
		return nil
	}
	return c.paragraphs[c.current]
}

// HasEnded reports whether the conversation advanced at least once and the
// cursor has since fallen outside the sequence.
func (c *Conversation) HasEnded() bool {
	return c.advanced && c.current < 0
}

// Log returns the spoken lines so far, in order.
func (c *Conversation) Log() []LogEntry {
	return c.log
}

// Next advances the conversation. From the unset state it enters the
// opening paragraph. A paragraph with responses blocks until Respond is
// called; otherwise the cursor moves by the paragraph's Delta.
func (c *Conversation) Next(g Game) types.Reaction {
	p := c.CurrentParagraph()
	if p == nil {
		return c.enter(g, 0)
	}
	if len(p.Responses) > 0 {
		return types.Reaction{Result: types.Internal, Description: c.promptResponses(p)}
	}
	return c.enter(g, c.current+shift(p.Delta))
}

// Respond chooses one of the current paragraph's responses. The response
// must belong to the current paragraph; anything else is an error with no
// state change.
func (c *Conversation) Respond(r *Response, g Game) types.Reaction {
	p := c.CurrentParagraph()
	if p == nil {
		return types.Reaction{Result: types.Error, Description: "There is nothing to respond to."}
	}
	if !containsResponse(p.Responses, r) {
		return types.Reaction{Result: types.Error, Description: "That is not one of the choices."}
	}
	c.log = append(c.log, LogEntry{Speaker: Player, Line: r.Line})
	return c.enter(g, c.current+shift(r.Delta))
}

// enter moves the cursor to idx, running the paragraph's action and logging
// its line. An out-of-range idx ends the conversation.
func (c *Conversation) enter(g Game, idx int) types.Reaction {
	c.advanced = true
	if idx < 0 || idx >= len(c.paragraphs) {
		c.current = -1
		return types.Reaction{Result: types.Internal, Description: "The conversation ends."}
	}
	c.current = idx
	p := c.paragraphs[idx]
	if p.Action != nil {
		p.Action(g)
	}
	c.log = append(c.log, LogEntry{Speaker: Other, Line: p.Line})
	desc := p.Line
	if len(p.Responses) > 0 {
		desc += "\n" + c.promptResponses(p)
	}
	return types.Reaction{Result: types.Internal, Description: desc}
}

// promptResponses formats the numbered choices for the current paragraph.
func (c *Conversation) promptResponses(p *Paragraph) string {
	var b strings.Builder
	for i, r := range p.Responses {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %d. %s", i+1, r.Line)
	}
	return b.String()
}

// shift maps a paragraph or response delta to a cursor offset. Zero means
// "the next paragraph".
func shift(delta int) int {
	if delta == 0 {
		return 1
	}
	return delta
}

func containsResponse(responses []*Response, r *Response) bool {
	for _, candidate := range responses {
		if candidate == r {
			return true
		}
	}
	return false
}
