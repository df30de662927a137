// Package record captures emitted input events into sessions and replays
// event sequences against a device.
//
// A Session is active from NewSession until End, which detaches and returns
// everything recorded. Several sessions may be active at once; whoever emits
// events decides which sessions receive them.
//
//	s := record.NewSession()
//	s.Record(events...)
//	seq := s.End()
//
// A Player sends each non-wait event to its Dispatcher and sleeps for each
// wait marker:
//
//	p := record.NewPlayer(dev)
//	report := p.Play(ctx, seq)
//
// Playback never stops on a failed send; the Report says how many events
// failed and why.
package record
