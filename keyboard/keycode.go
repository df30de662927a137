// Package keyboard holds the virtual-key codes understood by SendInput and the
// symbolic name table used to resolve keys by name.
package keyboard

import "errors"

// Key is a Windows virtual-key code.
type Key uint16

// Invalid is returned by Resolve for names that are not in the table.
const Invalid = -1

// ErrUnknownKey implies a symbolic key name has no virtual-key mapping.
var ErrUnknownKey = errors.New("unknown key name")

const (
	KeyBkSp      Key = 0x08
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyShift     Key = 0x10
	KeyCtrl      Key = 0x11
	KeyAlt       Key = 0x12
	KeyPause     Key = 0x13
	KeyCaps      Key = 0x14
	KeyEsc       Key = 0x1B
	KeySpace     Key = 0x20
	KeyPageUp    Key = 0x21
	KeyPageDown  Key = 0x22
	KeyEnd       Key = 0x23
	KeyHome      Key = 0x24
	KeyLeft      Key = 0x25
	KeyArrowUp   Key = 0x26
	KeyRight     Key = 0x27
	KeyArrowDown Key = 0x28
	KeyPrint     Key = 0x2A
	KeyInsert    Key = 0x2D
	KeyDelete    Key = 0x2E

	Key0 Key = '0'
	Key1 Key = '1'
	Key2 Key = '2'
	Key3 Key = '3'
	Key4 Key = '4'
	Key5 Key = '5'
	Key6 Key = '6'
	Key7 Key = '7'
	Key8 Key = '8'
	Key9 Key = '9'

	KeyA Key = 'A'
	KeyB Key = 'B'
	KeyC Key = 'C'
	KeyD Key = 'D'
	KeyE Key = 'E'
	KeyF Key = 'F'
	KeyG Key = 'G'
	KeyH Key = 'H'
	KeyI Key = 'I'
	KeyJ Key = 'J'
	KeyK Key = 'K'
	KeyL Key = 'L'
	KeyM Key = 'M'
	KeyN Key = 'N'
	KeyO Key = 'O'
	KeyP Key = 'P'
	KeyQ Key = 'Q'
	KeyR Key = 'R'
	KeyS Key = 'S'
	KeyT Key = 'T'
	KeyU Key = 'U'
	KeyV Key = 'V'
	KeyW Key = 'W'
	KeyX Key = 'X'
	KeyY Key = 'Y'
	KeyZ Key = 'Z'

	KeyWinLeft  Key = 0x5B
	KeyWinRight Key = 0x5C

	KeyNum0 Key = 0x60
	KeyNum1 Key = 0x61
	KeyNum2 Key = 0x62
	KeyNum3 Key = 0x63
	KeyNum4 Key = 0x64
	KeyNum5 Key = 0x65
	KeyNum6 Key = 0x66
	KeyNum7 Key = 0x67
	KeyNum8 Key = 0x68
	KeyNum9 Key = 0x69

	KeyF1  Key = 0x70
	KeyF2  Key = 0x71
	KeyF3  Key = 0x72
	KeyF4  Key = 0x73
	KeyF5  Key = 0x74
	KeyF6  Key = 0x75
	KeyF7  Key = 0x76
	KeyF8  Key = 0x77
	KeyF9  Key = 0x78
	KeyF10 Key = 0x79
	KeyF11 Key = 0x7A
	KeyF12 Key = 0x7B

	KeyNumLock Key = 0x90
	KeyScroll  Key = 0x91

	KeySemi      Key = 0xBA
	KeyEqual     Key = 0xBB
	KeyComma     Key = 0xBC
	KeyMinus     Key = 0xBD
	KeyDot       Key = 0xBE
	KeySlash     Key = 0xBF
	KeyTick      Key = 0xC0
	KeyLBr       Key = 0xDB
	KeyBackslash Key = 0xDC
	KeyRBr       Key = 0xDD
	KeyQuot      Key = 0xDE
)

// canonical is the ordered name table; the first name listed for a key is the
// one Name returns.
var canonical = []struct {
	name string
	key  Key
}{
	{"back", KeyBkSp},
	{"tab", KeyTab},
	{"enter", KeyEnter},
	{"shift", KeyShift},
	{"ctrl", KeyCtrl},
	{"alt", KeyAlt},
	{"pause", KeyPause},
	{"caps_lock", KeyCaps},
	{"esc", KeyEsc},
	{"space", KeySpace},
	{"page_up", KeyPageUp},
	{"page_down", KeyPageDown},
	{"end", KeyEnd},
	{"home", KeyHome},
	{"arrow_left", KeyLeft},
	{"arrow_up", KeyArrowUp},
	{"arrow_right", KeyRight},
	{"arrow_down", KeyArrowDown},
	{"print", KeyPrint},
	{"insert", KeyInsert},
	{"delete", KeyDelete},
	{"win_left", KeyWinLeft},
	{"win_right", KeyWinRight},
	{"num_lock", KeyNumLock},
	{"scroll_lock", KeyScroll},
	{"+", KeyEqual},
	{",", KeyComma},
	{"-", KeyMinus},
	{".", KeyDot},
	{";", KeySemi},
	{"/", KeySlash},
	{"`", KeyTick},
	{"[", KeyLBr},
	{"\\", KeyBackslash},
	{"]", KeyRBr},
	{"'", KeyQuot},
}

var (
	byName = buildNames()
	byKey  = buildKeys()
)

func buildNames() map[string]Key {
	m := make(map[string]Key, 160)
	for _, e := range canonical {
		m[e.name] = e.key
	}
	for c := 'A'; c <= 'Z'; c++ {
		m[string(c)] = Key(c)
		m[string(c+'a'-'A')] = Key(c)
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = Key(c)
		m["num"+string(c)] = KeyNum0 + Key(c-'0')
	}
	for i := 1; i <= 12; i++ {
		m["f"+itoa(i)] = KeyF1 + Key(i-1)
	}
	return m
}

func buildKeys() map[Key]string {
	m := make(map[Key]string, len(byName))
	for _, e := range canonical {
		if _, ok := m[e.key]; !ok {
			m[e.key] = e.name
		}
	}
	for c := 'a'; c <= 'z'; c++ {
		m[Key(c-'a'+'A')] = string(c)
	}
	for c := '0'; c <= '9'; c++ {
		m[Key(c)] = string(c)
		m[KeyNum0+Key(c-'0')] = "num" + string(c)
	}
	for i := 1; i <= 12; i++ {
		m[KeyF1+Key(i-1)] = "f" + itoa(i)
	}
	return m
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return "1" + string(rune('0'+i-10))
}

// Lookup resolves a symbolic key name such as "enter", "f5", "a" or "[".
func Lookup(name string) (Key, bool) {
	k, ok := byName[name]
	return k, ok
}

// Resolve is Lookup with the legacy sentinel contract: unknown names yield
// Invalid (-1) instead of a second return value.
func Resolve(name string) int {
	if k, ok := byName[name]; ok {
		return int(k)
	}
	return Invalid
}

// Name returns the canonical table name of k, or "" when k has none.
func Name(k Key) string {
	return byKey[k]
}
