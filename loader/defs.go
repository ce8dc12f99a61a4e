package loader

// The raw definition structs hold authored content after Lua decoding and
// before compilation into engine values. They are plain Go data so a
// Blueprint can build any number of fresh Game instances without the VM.

type defs struct {
	game       rawGame
	regions    []rawRegion
	rooms      []rawRoom
	items      []rawItem
	npcs       []rawNPC
	completion *rawEnd
	death      *rawEnd
}

type rawGame struct {
	title       string
	author      string
	version     string
	description string
	player      rawPlayer
}

type rawPlayer struct {
	name        string
	description string
	items       []string
}

type rawRegion struct {
	id          string
	description string
}

type rawRoom struct {
	id          string
	region      string
	column      int
	row         int
	floor       int
	start       bool
	description rawDescription
	exits       []rawExit
}

type rawExit struct {
	direction string
	locked    bool
}

// rawDescription is either fixed text or a (text, otherwise, when) triple
// compiled into a conditional description.
type rawDescription struct {
	text      string
	otherwise string
	when      *rawCondition
}

// rawCondition is a conjunction of world-state predicates.
type rawCondition struct {
	playerHas string // player holds the named item
	inRoom    string // player is in the named room
	visited   string // the named room has been visited
}

// rawAction is a bundle of world mutations used by conversation
// paragraphs, custom commands, and scripted interactions.
type rawAction struct {
	say    string
	unlock *rawExitRef
	lock   *rawExitRef
	reveal string // make the named item or character visible
	hide   string // make the named item or character invisible
	give   string // put the named item into the player's inventory
}

type rawExitRef struct {
	room      string
	direction string
}

type rawCommand struct {
	name   string
	help   string
	action rawAction
}

type rawInteraction struct {
	item   string // the item applied to trigger this interaction
	effect string // none | fatal | morph | consume | destroy | script
	text   string
	into   *rawGuise  // morph only
	action *rawAction // script only
}

type rawGuise struct {
	name        string
	description string
	takeable    bool
	visible     bool
}

type rawItem struct {
	id           string
	room         string
	description  rawDescription
	takeable     bool
	visible      bool
	commands     []rawCommand
	interactions []rawInteraction
}

type rawNPC struct {
	id           string
	room         string
	description  rawDescription
	visible      bool
	items        []string
	conversation []rawParagraph
	interactions []rawInteraction
	commands     []rawCommand
}

type rawParagraph struct {
	line      string
	delta     int
	responses []rawResponse
	action    *rawAction
}

type rawResponse struct {
	line  string
	delta int
}

type rawEnd struct {
	title string
	text  string
	when  *rawCondition
}

// collector accumulates definitions during Lua execution.
type collector struct {
	defs defs
}
