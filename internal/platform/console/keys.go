package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/t2048/internal/core"
)

var runeActions = map[rune]core.Action{
	'w': core.ActionUp, 'k': core.ActionUp,
	's': core.ActionDown, 'j': core.ActionDown,
	'a': core.ActionLeft, 'h': core.ActionLeft,
	'd': core.ActionRight, 'l': core.ActionRight,
	'u': core.ActionUndo,
	'p': core.ActionPause,
	'r': core.ActionRestart,
	'q': core.ActionQuit,
}

// Action translates a key event. Unbound keys return false.
func Action(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp, true
	case tcell.KeyDown:
		return core.ActionDown, true
	case tcell.KeyLeft:
		return core.ActionLeft, true
	case tcell.KeyRight:
		return core.ActionRight, true
	case tcell.KeyCtrlZ:
		return core.ActionUndo, true
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyEscape:
		return core.ActionPause, true
	case tcell.KeyRune:
		r := ev.Rune()
		mod := ev.Modifiers()
		switch {
		case mod&tcell.ModCtrl != 0 && r == 'c':
			return core.ActionQuit, true
		case mod&(tcell.ModAlt|tcell.ModCtrl) != 0 && r == 'z':
			return core.ActionUndo, true
		case mod&(tcell.ModAlt|tcell.ModCtrl) != 0:
			return core.ActionNone, false
		}
		a, ok := runeActions[r]
		return a, ok
	}
	return core.ActionNone, false
}
