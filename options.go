package textanim

import (
	"math/rand"

	"github.com/tanema/gween/ease"
)

// Timing holds the per-variant pacing constants, all in seconds of scaled
// elapsed time (wall-clock delta times the animator's speed).
type Timing struct {
	// FadeCharDelay is the stagger between consecutive characters starting
	// to fade in.
	FadeCharDelay float64
	// FadeDuration is how long a single character takes to go from
	// transparent to opaque once its stagger delay has passed.
	FadeDuration float64

	// TypeInterval is the time between consecutive characters appearing in
	// the Typewriter variant.
	TypeInterval float64

	// HackerCharDelay is the per-index stagger before a character may settle.
	HackerCharDelay float64
	// HackerSettle is how long a character scrambles past its stagger delay
	// before locking to its real glyph.
	HackerSettle float64
	// HackerReroll is the interval between scramble glyph re-rolls.
	HackerReroll float64
}

// DefaultTiming is used when no WithTiming option is supplied.
var DefaultTiming = Timing{
	FadeCharDelay:   0.05,
	FadeDuration:    0.35,
	TypeInterval:    0.08,
	HackerCharDelay: 0.10,
	HackerSettle:    0.45,
	HackerReroll:    0.04,
}

// sanitized replaces non-positive fields with their defaults. Pacing is
// cosmetic, so bad values are corrected rather than rejected.
func (t Timing) sanitized() Timing {
	if t.FadeCharDelay <= 0 {
		t.FadeCharDelay = DefaultTiming.FadeCharDelay
	}
	if t.FadeDuration <= 0 {
		t.FadeDuration = DefaultTiming.FadeDuration
	}
	if t.TypeInterval <= 0 {
		t.TypeInterval = DefaultTiming.TypeInterval
	}
	if t.HackerCharDelay <= 0 {
		t.HackerCharDelay = DefaultTiming.HackerCharDelay
	}
	if t.HackerSettle <= 0 {
		t.HackerSettle = DefaultTiming.HackerSettle
	}
	if t.HackerReroll <= 0 {
		t.HackerReroll = DefaultTiming.HackerReroll
	}
	return t
}

// Option configures a TextAnimator at construction time.
type Option func(*TextAnimator)

// WithTiming overrides the default pacing constants.
func WithTiming(t Timing) Option {
	return func(ta *TextAnimator) {
		ta.timing = t.sanitized()
	}
}

// WithEase applies an easing curve to the FadeIn opacity ramp. The default
// is ease.Linear. Opacity is still clamped and kept non-decreasing, so
// overshooting curves like ease.OutBack are safe.
func WithEase(fn ease.TweenFunc) Option {
	return func(ta *TextAnimator) {
		if fn != nil {
			ta.easeFn = fn
		}
	}
}

// WithAlphabet replaces the glyph pool used by the Hacker scramble.
func WithAlphabet(s string) Option {
	return func(ta *TextAnimator) {
		if s != "" {
			ta.alphabet = []rune(s)
		}
	}
}

// WithRand supplies the random source for the Hacker scramble, mainly so
// tests can be deterministic.
func WithRand(r *rand.Rand) Option {
	return func(ta *TextAnimator) {
		if r != nil {
			ta.rng = r
		}
	}
}
