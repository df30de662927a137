package input

import (
	"time"

	"github.com/rpdg/winauto/mouse"
)

// Click builds the button transitions of a click at the current pointer
// location. Double variants repeat the press/release cycle twice in
// DownAndUp mode; Down and Up modes always emit a single transition.
func Click(b mouse.Button, mode mouse.ClickMode, interval time.Duration) Sequence {
	cycles := 1
	if b.IsDouble() && mode == mouse.DownAndUp {
		cycles = 2
	}

	seq := make(Sequence, 0, 3*cycles)
	for i := 0; i < cycles; i++ {
		switch mode {
		case mouse.Down:
			seq = append(seq, ButtonEvent(b, false))
		case mouse.Up:
			seq = append(seq, ButtonEvent(b, true))
		default:
			seq = append(seq, ButtonEvent(b, false))
			seq = seq.Wait(interval)
			seq = append(seq, ButtonEvent(b, true))
		}
	}
	return seq
}
