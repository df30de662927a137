package input

// AbsoluteRange is the extent of the normalized coordinate space used by
// absolute SendInput pointer moves.
const AbsoluteRange = 65536

// ToAbsolute maps a pixel coordinate on an axis of the given extent into
// normalized absolute space. It rounds up so that FromAbsolute recovers px
// exactly for every 0 <= px < extent.
func ToAbsolute(px, extent int) int32 {
	if extent <= 0 {
		return 0
	}
	abs := (int64(px)*AbsoluteRange + int64(extent) - 1) / int64(extent)
	switch {
	case abs < 0:
		return 0
	case abs > AbsoluteRange-1:
		return AbsoluteRange - 1
	}
	return int32(abs)
}

// FromAbsolute maps a normalized absolute coordinate back to pixels.
func FromAbsolute(abs int32, extent int) int {
	return int(int64(abs) * int64(extent) / AbsoluteRange)
}
