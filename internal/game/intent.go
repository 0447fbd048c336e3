package game

// Intent is an abstract player action produced by the input layer.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentInteract
	IntentLeave
	IntentToggleWorldMap
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "move_up"
	case IntentMoveDown:
		return "move_down"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentInteract:
		return "interact"
	case IntentLeave:
		return "leave"
	case IntentToggleWorldMap:
		return "toggle_world_map"
	default:
		return "unknown"
	}
}

// Delta returns the step of a movement intent. ok is false for other intents.
func (i Intent) Delta() (dx, dy int, ok bool) {
	switch i {
	case IntentMoveUp:
		return 0, -1, true
	case IntentMoveDown:
		return 0, 1, true
	case IntentMoveLeft:
		return -1, 0, true
	case IntentMoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// IsMove reports whether the intent is one of the four cardinal moves.
func (i Intent) IsMove() bool {
	_, _, ok := i.Delta()
	return ok
}
