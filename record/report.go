package record

import "go.uber.org/multierr"

// Report summarizes a multi-step operation. A step is one primitive event
// during playback or one key press for the press helpers.
type Report struct {
	// Completed counts steps the device accepted.
	Completed int
	// Failed counts steps that were attempted and failed.
	Failed int
	// Aborted is set when the operation stopped before attempting every step.
	Aborted bool
	// Err combines every failure, nil when there was none.
	Err error
}

// OK reports whether every step completed and nothing was skipped.
func (r Report) OK() bool {
	return r.Failed == 0 && !r.Aborted && r.Err == nil
}

// Errors returns the individual failures combined in Err.
func (r Report) Errors() []error {
	return multierr.Errors(r.Err)
}

// Fail records one failed step.
func (r *Report) Fail(err error) {
	r.Failed++
	r.Err = multierr.Append(r.Err, err)
}

// Merge folds o into r.
func (r *Report) Merge(o Report) {
	r.Completed += o.Completed
	r.Failed += o.Failed
	r.Aborted = r.Aborted || o.Aborted
	r.Err = multierr.Append(r.Err, o.Err)
}
