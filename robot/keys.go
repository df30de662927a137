package robot

import "github.com/rpdg/winauto/keyboard"

// keyNames maps virtual-key codes to robotgo key names. Letters and digits
// are handled in keyName.
var keyNames = map[keyboard.Key]string{
	keyboard.KeyBkSp:      "backspace",
	keyboard.KeyTab:       "tab",
	keyboard.KeyEnter:     "enter",
	keyboard.KeyShift:     "shift",
	keyboard.KeyCtrl:      "ctrl",
	keyboard.KeyAlt:       "alt",
	keyboard.KeyCaps:      "capslock",
	keyboard.KeyEsc:       "esc",
	keyboard.KeySpace:     "space",
	keyboard.KeyPageUp:    "pageup",
	keyboard.KeyPageDown:  "pagedown",
	keyboard.KeyEnd:       "end",
	keyboard.KeyHome:      "home",
	keyboard.KeyLeft:      "left",
	keyboard.KeyArrowUp:   "up",
	keyboard.KeyRight:     "right",
	keyboard.KeyArrowDown: "down",
	keyboard.KeyPrint:     "print",
	keyboard.KeyInsert:    "insert",
	keyboard.KeyDelete:    "delete",
	keyboard.KeyWinLeft:   "lcmd",
	keyboard.KeyWinRight:  "rcmd",
	keyboard.KeyNumLock:   "num_lock",
	keyboard.KeyMinus:     "-",
	keyboard.KeyEqual:     "=",
	keyboard.KeyLBr:       "[",
	keyboard.KeyRBr:       "]",
	keyboard.KeyBackslash: "\\",
	keyboard.KeySemi:      ";",
	keyboard.KeyQuot:      "'",
	keyboard.KeyComma:     ",",
	keyboard.KeyDot:       ".",
	keyboard.KeySlash:     "/",
	keyboard.KeyTick:      "`",
}

// keyName returns the robotgo name of k.
func keyName(k keyboard.Key) (string, bool) {
	switch {
	case k >= keyboard.KeyA && k <= keyboard.KeyZ:
		return string(rune(k - keyboard.KeyA + 'a')), true
	case k >= keyboard.Key0 && k <= keyboard.Key9:
		return string(rune(k)), true
	case k >= keyboard.KeyNum0 && k <= keyboard.KeyNum0+9:
		return "num" + string(rune(k-keyboard.KeyNum0+'0')), true
	case k >= keyboard.KeyF1 && k <= keyboard.KeyF1+11:
		return "f" + itoa(int(k-keyboard.KeyF1)+1), true
	}
	name, ok := keyNames[k]
	return name, ok
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return "1" + string(rune('0'+i-10))
}
