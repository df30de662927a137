package config

import (
	"github.com/rpdg/winauto"
	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/locate"
	"github.com/rpdg/winauto/logger"
)

// Defaults converts the input settings into sequencer timings.
func (c InputConfig) Defaults() winauto.Defaults {
	curve := input.Linear
	if c.Curve == "smooth" {
		curve = input.Smooth
	}
	return winauto.Defaults{
		MoveDuration:  Millis(c.MoveDurationMS),
		MoveStep:      Millis(c.MoveStepMS),
		ClickInterval: Millis(c.ClickIntervalMS),
		PressInterval: Millis(c.PressIntervalMS),
		Wait:          Millis(c.WaitMS),
		Curve:         curve,
	}
}

// Options converts the locate settings into locator defaults.
func (c LocateConfig) Options() []locate.Option {
	return []locate.Option{
		locate.WithConfidence(c.Confidence),
		locate.WithAll(c.All),
		locate.WithPollInterval(Millis(c.PollIntervalMS)),
		locate.WithMaxHashDistance(c.MaxHashDistance),
	}
}

// Options converts the logging settings.
func (c LoggingConfig) Options() logger.Options {
	return logger.Options{Level: c.Level, Format: c.Format}
}
