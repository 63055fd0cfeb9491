package session

import "fmt"

// State is the drag state of a Session.
type State int

const (
	Idle      State = iota // no drag in progress
	Dragging               // movable point follows the pointer
	Capturing              // Dragging while recording frames for export
)

var stateNames = [...]string{Idle: "Idle", Dragging: "Dragging", Capturing: "Capturing"}

func (s State) String() string {
	if s >= Idle && s <= Capturing {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Active reports whether a drag is in progress.
func (s State) Active() bool {
	return s == Dragging || s == Capturing
}
