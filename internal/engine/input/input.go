// Package input collects window events into per-frame events and held-key
// state. Window backends translate their native events and Push them here.
package input

// Event types for app use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventScroll
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	// MouseX/MouseY are the pointer position in window pixels. With a
	// captured cursor they keep accumulating past the window edges.
	MouseX float32
	MouseY float32
	// ScrollY is the vertical wheel offset, positive away from the user.
	ScrollY float32
}

// Input holds the events of the current frame and the keys held down.
type Input struct {
	events []Event
	held   [keyCount]bool
	quit   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// BeginFrame drops the previous frame's events. Held keys persist.
func (i *Input) BeginFrame() {
	i.events = i.events[:0]
}

// Push records an event and updates held-key state.
func (i *Input) Push(e Event) {
	switch e.Type {
	case EventQuit:
		i.quit = true
	case EventKeyDown:
		if e.Key.valid() {
			i.held[e.Key] = true
		}
	case EventKeyUp:
		if e.Key.valid() {
			i.held[e.Key] = false
		}
	}
	i.events = append(i.events, e)
}

// Events returns the events pushed since BeginFrame.
func (i *Input) Events() []Event {
	return i.events
}

// Held reports whether k is currently down.
func (i *Input) Held(k Key) bool {
	return k.valid() && i.held[k]
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(k Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}

// QuitRequested reports whether a quit event has been pushed.
func (i *Input) QuitRequested() bool {
	return i.quit
}

// ReleaseAll clears held-key state, for example when the window loses focus.
func (i *Input) ReleaseAll() {
	i.held = [keyCount]bool{}
}
