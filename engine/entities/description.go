package entities

// Description is display text that is either fixed or condition-evaluated
// at read time. Conditional descriptions let room and item text track
// world state without the description itself ever being mutated.
type Description struct {
	text      string
	falseText string
	condition func() bool
}

// NewDescription creates a fixed description.
func NewDescription(text string) *Description {
	return &Description{text: text}
}

// NewConditionalDescription creates a description that reads as trueText
// while condition holds and falseText otherwise.
func NewConditionalDescription(trueText, falseText string, condition func() bool) *Description {
	return &Description{text: trueText, falseText: falseText, condition: condition}
}

// Text evaluates the description. A nil description reads as empty.
func (d *Description) Text() string {
	if d == nil {
		return ""
	}
	if d.condition == nil || d.condition() {
		return d.text
	}
	return d.falseText
}
