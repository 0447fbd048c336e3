package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/game"
)

// KeyMap translates key events into game intents.
type KeyMap struct {
	keys  map[tcell.Key]game.Intent
	runes map[rune]game.Intent
}

// DefaultKeyMap binds arrows and WASD to movement, 'e' to interact,
// 'q' to leave and 'm' to the world map. Esc and Ctrl+C quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		keys: map[tcell.Key]game.Intent{
			tcell.KeyUp:    game.IntentMoveUp,
			tcell.KeyDown:  game.IntentMoveDown,
			tcell.KeyLeft:  game.IntentMoveLeft,
			tcell.KeyRight: game.IntentMoveRight,
		},
		runes: map[rune]game.Intent{
			'w': game.IntentMoveUp,
			's': game.IntentMoveDown,
			'a': game.IntentMoveLeft,
			'd': game.IntentMoveRight,
			'e': game.IntentInteract,
			'q': game.IntentLeave,
			'm': game.IntentToggleWorldMap,
		},
	}
}

// Intent returns the intent bound to ev and whether ev asks to quit.
// Unbound keys yield game.IntentNone.
func (k KeyMap) Intent(ev *tcell.EventKey) (intent game.Intent, quit bool) {
	return k.lookup(ev.Key(), ev.Rune())
}

func (k KeyMap) lookup(key tcell.Key, r rune) (game.Intent, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.IntentNone, true
	case tcell.KeyRune:
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return k.runes[r], false
	}
	return k.keys[key], false
}
