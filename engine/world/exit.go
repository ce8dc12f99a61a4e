package world

// Exit is a directed, lockable passage out of a room.
type Exit struct {
	direction Direction
	locked    bool
}

// NewExit creates an unlocked exit in the given direction.
func NewExit(direction Direction) *Exit {
	return &Exit{direction: direction}
}

// NewLockedExit creates a locked exit in the given direction.
func NewLockedExit(direction Direction) *Exit {
	return &Exit{direction: direction, locked: true}
}

// Direction returns the direction the exit leads.
func (e *Exit) Direction() Direction {
	return e.direction
}

// IsLocked reports whether the exit is locked.
func (e *Exit) IsLocked() bool {
	return e.locked
}

// Lock locks the exit. Idempotent.
func (e *Exit) Lock() {
	e.locked = true
}

// Unlock unlocks the exit. Idempotent.
func (e *Exit) Unlock() {
	e.locked = false
}
