// Package locate finds a reference image on screen by template matching and
// reports the centers of the matches.
package locate

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/corona10/goimagehash"
	"go.uber.org/zap"
)

// Capturer produces a snapshot of the display.
type Capturer interface {
	Capture() (image.Image, error)
}

// Matcher matches the template stored at path against screen. It returns the
// score grid and the template size.
type Matcher interface {
	Match(screen image.Image, path string) (Grid, image.Point, error)
}

type options struct {
	confidence      float64
	all             bool
	pollInterval    time.Duration
	maxHashDistance int
}

// Option configures a Locator or a single call.
type Option func(*options)

// WithConfidence sets the minimum 1-score a match needs. Default 0.9.
func WithConfidence(c float64) Option {
	return func(o *options) { o.confidence = c }
}

// WithAll selects between every match (true, the default) and only the
// global best one.
func WithAll(all bool) Option {
	return func(o *options) { o.all = all }
}

// WithPollInterval sets the delay between captures in WaitFor.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) { o.pollInterval = d }
}

// WithMaxHashDistance sets the perceptual hash distance under which WaitFor
// treats a frame as unchanged and skips matching. Negative disables it.
func WithMaxHashDistance(d int) Option {
	return func(o *options) { o.maxHashDistance = d }
}

// Locator captures the screen and matches templates against it.
type Locator struct {
	capturer Capturer
	matcher  Matcher
	log      *zap.Logger
	defaults options
}

// New creates a Locator.
func New(c Capturer, m Matcher, log *zap.Logger, opts ...Option) *Locator {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Locator{
		capturer: c,
		matcher:  m,
		log:      log,
		defaults: options{
			confidence:      0.9,
			all:             true,
			pollInterval:    250 * time.Millisecond,
			maxHashDistance: 2,
		},
	}
	for _, opt := range opts {
		opt(&l.defaults)
	}
	return l
}

func (l *Locator) options(opts []Option) (options, error) {
	o := l.defaults
	for _, opt := range opts {
		opt(&o)
	}
	if o.confidence < 0 || o.confidence > 1 {
		return o, fmt.Errorf("%w: %g", ErrInvalidConfidence, o.confidence)
	}
	return o, nil
}

// Locate captures the screen once and returns the centers of the matches of
// the template at path. An empty result means not found.
func (l *Locator) Locate(path string, opts ...Option) ([]image.Point, error) {
	o, err := l.options(opts)
	if err != nil {
		return nil, err
	}
	img, err := l.capturer.Capture()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return l.match(img, path, o)
}

func (l *Locator) match(img image.Image, path string, o options) ([]image.Point, error) {
	grid, size, err := l.matcher.Match(img, path)
	if err != nil {
		return nil, err
	}
	points := Select(grid, size, o.confidence, o.all)
	l.log.Debug("template matched",
		zap.String("template", path),
		zap.Float64("confidence", o.confidence),
		zap.Bool("all", o.all),
		zap.Int("matches", len(points)))
	return points, nil
}

// WaitFor polls the screen until the template at path is found or ctx is
// done. Frames that look the same as the last unmatched one are not matched
// again.
func (l *Locator) WaitFor(ctx context.Context, path string, opts ...Option) ([]image.Point, error) {
	o, err := l.options(opts)
	if err != nil {
		return nil, err
	}

	var lastHash *goimagehash.ImageHash
	ticker := time.NewTicker(max(o.pollInterval, time.Millisecond))
	defer ticker.Stop()

	for {
		img, err := l.capturer.Capture()
		if err != nil {
			return nil, fmt.Errorf("capture screen: %w", err)
		}

		hash := l.hash(img, o)
		if !unchanged(lastHash, hash, o.maxHashDistance) {
			points, err := l.match(img, path, o)
			if err != nil {
				return nil, err
			}
			if len(points) > 0 {
				return points, nil
			}
			lastHash = hash
		} else {
			l.log.Debug("skipping unchanged frame", zap.String("template", path))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *Locator) hash(img image.Image, o options) *goimagehash.ImageHash {
	if o.maxHashDistance < 0 {
		return nil
	}
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		l.log.Debug("perception hash failed", zap.Error(err))
		return nil
	}
	return hash
}

func unchanged(last, cur *goimagehash.ImageHash, maxDistance int) bool {
	if last == nil || cur == nil {
		return false
	}
	dist, err := last.Distance(cur)
	if err != nil {
		return false
	}
	return dist <= maxDistance
}
