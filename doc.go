// Package winauto provides Windows desktop automation built on timed input
// sequences. Intent-level actions (move, drag, click, scroll, key press) are
// expanded into primitive events interleaved with wait markers, dispatched to
// an input Device and mirrored into any active capture session so they can be
// replayed later.
//
// Key Features:
// - Linear or eased pointer motion with exact arrival on the target
// - Recording into explicit, nestable sessions and verbatim replay
// - Explicit error returns and per-step playback reports
// - Pluggable devices (SendInput, robotgo) chosen by the backend package
//
// Example:
//
//	seq, _ := backend.NewSequencer(backend.SendInput)
//	seq.BeginRecord()
//	seq.MoveTo(100, 100)
//	seq.Click(mouse.Left)
//	recorded := seq.EndRecord()
//
//	report := seq.Execute(recorded)
//	if !report.OK() {
//	    log.Println(report.Err)
//	}
package winauto
