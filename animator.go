package textanim

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// minSpeed is the floor applied to speed values. A non-positive speed is a
// cosmetic mistake, not an error, so it is clamped instead of rejected.
const minSpeed = 0.001

// charState tracks one character's reveal progress. Only the fields for the
// active variant are meaningful.
type charState struct {
	opacity  float64 // FadeIn: 0 (hidden) to 1 (terminal)
	revealed bool    // Typewriter: terminal once true
	display  rune    // Hacker: glyph currently shown
	settled  bool    // Hacker: terminal once true
}

// TextAnimator animates the reveal of a text string, one of the three
// Variant effects. The host calls Advance once per frame with the frame's
// elapsed seconds, then Draw to paint the current state. All methods must be
// called from the single thread driving the game loop.
type TextAnimator struct {
	text    []rune
	face    font.Face
	clr     color.RGBA
	speed   float64
	variant Variant

	elapsed  float64
	chars    []charState
	finished bool

	timing   Timing
	easeFn   ease.TweenFunc
	alphabet []rune
	rng      *rand.Rand
	lastRoll int
}

// New creates an animator for text, rendered with face and clr. Speed scales
// elapsed time: 2.0 runs the effect twice as fast. Non-positive speeds are
// clamped to a small positive value.
func New(txt string, face font.Face, clr color.Color, speed float64, variant Variant, opts ...Option) *TextAnimator {
	ta := &TextAnimator{
		face:     face,
		clr:      toRGBA(clr),
		speed:    clampSpeed(speed),
		variant:  variant,
		timing:   DefaultTiming,
		easeFn:   ease.Linear,
		alphabet: []rune(defaultAlphabet),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(ta)
	}
	ta.setText(txt)
	return ta
}

// Advance accumulates dt (seconds, scaled by speed) and recomputes every
// character's reveal state. It never paints. Negative deltas are ignored;
// once the animation has finished further calls are no-ops.
func (ta *TextAnimator) Advance(dt float64) {
	if ta.finished || dt <= 0 {
		return
	}
	ta.elapsed += dt * ta.speed

	switch ta.variant {
	case FadeIn:
		ta.advanceFade()
	case Typewriter:
		ta.advanceTypewriter()
	case Hacker:
		ta.advanceHacker()
	}

	ta.finished = ta.allTerminal()
}

// Draw paints the current animation state onto screen with the text baseline
// starting at (x, y). It is safe in every reachable state: before the first
// Advance, mid-animation, and after the animation has finished. It does not
// mutate animator state, so repeated calls yield identical output.
func (ta *TextAnimator) Draw(screen *ebiten.Image, x, y float64) {
	if ta.face == nil || len(ta.text) == 0 {
		return
	}

	cx := x
	for _, g := range ta.frameGlyphs() {
		adv, ok := ta.face.GlyphAdvance(g.r)
		if !ok {
			continue
		}
		if g.alpha > 0 {
			text.Draw(screen, string(g.r), ta.face, int(math.Round(cx)), int(math.Round(y)), scaleAlpha(ta.clr, g.alpha))
		}
		cx += fixedToFloat(adv)
	}
}

// IsFinished reports whether every character has reached its terminal state.
// Callers typically keep requesting frames until this returns true.
func (ta *TextAnimator) IsFinished() bool {
	return ta.finished
}

// SetSpeed replaces the speed multiplier, clamped to a minimum positive
// value. It takes effect on the next Advance and does not rescale time that
// has already elapsed.
func (ta *TextAnimator) SetSpeed(speed float64) {
	ta.speed = clampSpeed(speed)
}

// Reset restarts the animation from the beginning, keeping the current text.
func (ta *TextAnimator) Reset() {
	ta.initState()
}

// SetText replaces the animated text and restarts the animation.
func (ta *TextAnimator) SetText(txt string) {
	ta.setText(txt)
}

// SetFace replaces the font face used for measuring and painting. A nil face
// is ignored.
func (ta *TextAnimator) SetFace(face font.Face) {
	if face != nil {
		ta.face = face
	}
}

// SetColor replaces the base text color.
func (ta *TextAnimator) SetColor(clr color.Color) {
	ta.clr = toRGBA(clr)
}

// Text returns the full source text.
func (ta *TextAnimator) Text() string {
	return string(ta.text)
}

// Speed returns the current speed multiplier.
func (ta *TextAnimator) Speed() float64 {
	return ta.speed
}

// Variant returns the effect selected at construction.
func (ta *TextAnimator) Variant() Variant {
	return ta.variant
}

// Progress returns the fraction of characters that have reached their
// terminal state, in [0, 1]. Empty text reports 1.
func (ta *TextAnimator) Progress() float64 {
	if len(ta.chars) == 0 {
		return 1
	}
	done := 0
	for i := range ta.chars {
		if ta.chars[i].terminal(ta.variant) {
			done++
		}
	}
	return float64(done) / float64(len(ta.chars))
}

// setText swaps in new source text and reinitializes all animation state.
func (ta *TextAnimator) setText(txt string) {
	ta.text = []rune(txt)
	ta.chars = make([]charState, len(ta.text))
	ta.initState()
}

// initState zeroes the elapsed accumulator and puts every character back in
// its variant-specific initial state.
func (ta *TextAnimator) initState() {
	ta.elapsed = 0
	ta.lastRoll = -1
	for i := range ta.chars {
		ta.chars[i] = charState{}
		if ta.variant == Hacker {
			ta.chars[i].display = ta.scrambleGlyph(ta.text[i])
		}
	}
	ta.finished = len(ta.chars) == 0
}

// advanceFade recomputes per-character opacity. Character i starts fading at
// i*FadeCharDelay and takes FadeDuration to reach full opacity; the easing
// curve shapes the ramp in between. Opacity never decreases, so overshooting
// or oscillating ease curves cannot un-reveal a character.
func (ta *TextAnimator) advanceFade() {
	t := ta.timing
	for i := range ta.chars {
		p := (ta.elapsed - float64(i)*t.FadeCharDelay) / t.FadeDuration
		if p <= 0 {
			continue
		}
		c := &ta.chars[i]
		if p >= 1 {
			c.opacity = 1
			continue
		}
		o := float64(ta.easeFn(float32(p), 0, 1, 1))
		if o > 1 {
			o = 1
		}
		if o > c.opacity {
			c.opacity = o
		}
	}
}

// advanceTypewriter reveals floor(elapsed/TypeInterval) characters, capped at
// the text length. Revealed characters stay revealed.
func (ta *TextAnimator) advanceTypewriter() {
	n := int(ta.elapsed / ta.timing.TypeInterval)
	if n > len(ta.chars) {
		n = len(ta.chars)
	}
	for i := 0; i < n; i++ {
		ta.chars[i].revealed = true
	}
}

// advanceHacker settles characters whose deadline (stagger plus settle
// duration) has passed and re-rolls the scramble glyphs of the rest whenever
// the reroll interval ticks over.
func (ta *TextAnimator) advanceHacker() {
	t := ta.timing
	roll := int(ta.elapsed / t.HackerReroll)
	reroll := roll != ta.lastRoll
	ta.lastRoll = roll

	for i := range ta.chars {
		c := &ta.chars[i]
		if c.settled {
			continue
		}
		if ta.elapsed >= float64(i)*t.HackerCharDelay+t.HackerSettle {
			c.display = ta.text[i]
			c.settled = true
			continue
		}
		if reroll {
			c.display = ta.scrambleGlyph(ta.text[i])
		}
	}
}

// allTerminal reports whether every character has reached its terminal state.
func (ta *TextAnimator) allTerminal() bool {
	for i := range ta.chars {
		if !ta.chars[i].terminal(ta.variant) {
			return false
		}
	}
	return true
}

// terminal reports whether no further visual change can occur for this
// character under the given variant.
func (c *charState) terminal(v Variant) bool {
	switch v {
	case FadeIn:
		return c.opacity >= 1
	case Typewriter:
		return c.revealed
	default:
		return c.settled
	}
}

// frameGlyph is one paintable glyph for the current frame: which rune to
// show and at what opacity.
type frameGlyph struct {
	r     rune
	alpha float64
}

// frameGlyphs flattens the per-character state into the glyph run Draw
// paints. Typewriter stops at the first hidden character so typed text flows
// in; FadeIn keeps fully transparent glyphs in the run so the cursor still
// advances and the layout stays stable.
func (ta *TextAnimator) frameGlyphs() []frameGlyph {
	out := make([]frameGlyph, 0, len(ta.chars))
	for i := range ta.chars {
		c := &ta.chars[i]
		switch ta.variant {
		case FadeIn:
			out = append(out, frameGlyph{ta.text[i], c.opacity})
		case Typewriter:
			if !c.revealed {
				return out
			}
			out = append(out, frameGlyph{ta.text[i], 1})
		case Hacker:
			out = append(out, frameGlyph{c.display, 1})
		}
	}
	return out
}

// clampSpeed enforces the positive-speed invariant.
func clampSpeed(speed float64) float64 {
	if speed < minSpeed {
		return minSpeed
	}
	return speed
}

// toRGBA normalizes an arbitrary color to RGBA.
func toRGBA(clr color.Color) color.RGBA {
	if clr == nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}

// scaleAlpha multiplies all four channels by a, producing the premultiplied
// color the text renderer expects for translucent glyphs.
func scaleAlpha(clr color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return clr
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * a),
		G: uint8(float64(clr.G) * a),
		B: uint8(float64(clr.B) * a),
		A: uint8(float64(clr.A) * a),
	}
}

// fixedToFloat converts a 26.6 fixed-point glyph advance to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
