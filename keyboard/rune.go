package keyboard

// shifted maps characters typed with Shift on a US layout to their base key.
var shifted = map[rune]Key{
	'!': Key1, '@': Key2, '#': Key3, '$': Key4, '%': Key5,
	'^': Key6, '&': Key7, '*': Key8, '(': Key9, ')': Key0,
	'_': KeyMinus, '+': KeyEqual, '{': KeyLBr, '}': KeyRBr,
	'|': KeyBackslash, ':': KeySemi, '"': KeyQuot, '<': KeyComma,
	'>': KeyDot, '?': KeySlash, '~': KeyTick,
}

var plain = map[rune]Key{
	' ': KeySpace, '\n': KeyEnter, '\t': KeyTab,
	'-': KeyMinus, '=': KeyEqual, '[': KeyLBr, ']': KeyRBr,
	'\\': KeyBackslash, ';': KeySemi, '\'': KeyQuot, ',': KeyComma,
	'.': KeyDot, '/': KeySlash, '`': KeyTick,
}

// LookupRune maps a character to the key that types it on a US layout and
// whether Shift must be held.
func LookupRune(r rune) (k Key, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r - 'a' + 'A'), false, true
	case r >= 'A' && r <= 'Z':
		return Key(r), true, true
	case r >= '0' && r <= '9':
		return Key(r), false, true
	}
	if k, ok := plain[r]; ok {
		return k, false, true
	}
	if k, ok := shifted[r]; ok {
		return k, true, true
	}
	return 0, false, false
}
