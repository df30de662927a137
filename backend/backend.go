// Package backend wires a concrete input device and screen capturer into a
// Sequencer and a Locator.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rpdg/winauto"
	"github.com/rpdg/winauto/config"
	"github.com/rpdg/winauto/locate"
	"github.com/rpdg/winauto/locate/cvmatch"
	"github.com/rpdg/winauto/robot"
	"github.com/rpdg/winauto/robot/native"
	"github.com/rpdg/winauto/screen"
	"github.com/rpdg/winauto/window"
)

// Kind selects the input injection and capture implementation.
type Kind int

const (
	// SendInput injects through user32 SendInput and captures with GDI.
	SendInput Kind = iota
	// Robotgo uses robotgo for both input and capture.
	Robotgo
)

func (k Kind) String() string {
	if k == Robotgo {
		return config.BackendRobotgo
	}
	return config.BackendSendInput
}

// ErrUnknownBackend implies the backend name is not recognized.
var ErrUnknownBackend = errors.New("unknown backend")

// ParseKind parses a backend name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", config.BackendSendInput:
		return SendInput, nil
	case config.BackendRobotgo:
		return Robotgo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Open returns the device and capturer of k.
func Open(k Kind) (winauto.Device, locate.Capturer, error) {
	switch k {
	case Robotgo:
		dev := robot.New(native.Driver{})
		return dev, dev, nil
	default:
		dev, err := window.NewDevice()
		if err != nil {
			return nil, nil, err
		}
		return dev, screen.GDI{}, nil
	}
}

// Automation bundles a Sequencer and a Locator sharing one backend.
type Automation struct {
	Input  *winauto.Sequencer
	Screen *locate.Locator

	matcher *cvmatch.Matcher
}

// New builds an Automation from cfg.
func New(cfg *config.Config, log *zap.Logger) (*Automation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	kind, err := ParseKind(cfg.Backend)
	if err != nil {
		return nil, err
	}

	if kind == SendInput && cfg.Input.PerMonitorDPI {
		if err := window.EnablePerMonitorDPI(); err != nil {
			log.Warn("per-monitor DPI awareness not enabled", zap.Error(err))
		}
	}

	dev, capturer, err := Open(kind)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", kind, err)
	}
	log.Debug("backend opened", zap.Stringer("backend", kind))

	matcher := cvmatch.New()
	return &Automation{
		Input: winauto.New(dev,
			winauto.WithLogger(log.Named("input")),
			winauto.WithDefaults(cfg.Input.Defaults())),
		Screen:  locate.New(capturer, matcher, log.Named("locate"), cfg.Locate.Options()...),
		matcher: matcher,
	}, nil
}

// NewSequencer opens k and returns a Sequencer with default timings.
func NewSequencer(k Kind, opts ...winauto.Option) (*winauto.Sequencer, error) {
	dev, _, err := Open(k)
	if err != nil {
		return nil, err
	}
	return winauto.New(dev, opts...), nil
}

// Close releases the cached templates.
func (a *Automation) Close() error {
	return a.matcher.Close()
}
