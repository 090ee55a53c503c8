package textanim

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/tanema/gween/ease"
)

var testTiming = Timing{
	FadeCharDelay:   0.05,
	FadeDuration:    0.25,
	TypeInterval:    0.25,
	HackerCharDelay: 0.05,
	HackerSettle:    0.1,
	HackerReroll:    0.02,
}

func newTestAnimator(txt string, speed float64, v Variant, opts ...Option) *TextAnimator {
	base := []Option{
		WithTiming(testTiming),
		WithRand(rand.New(rand.NewSource(1))),
	}
	return New(txt, nil, color.White, speed, v, append(base, opts...)...)
}

// runToFinish advances in small fixed steps until the animation finishes.
func runToFinish(t *testing.T, ta *TextAnimator) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		ta.Advance(0.016)
		if ta.IsFinished() {
			return
		}
	}
	t.Fatalf("animation did not finish (variant %s, %d chars)", ta.Variant(), len(ta.chars))
}

func TestNew_ClampsNonPositiveSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"zero", 0, minSpeed},
		{"negative", -3, minSpeed},
		{"positive kept", 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAnimator("abc", tt.speed, FadeIn)
			if got := ta.Speed(); got != tt.want {
				t.Errorf("Speed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetSpeed_Clamps(t *testing.T) {
	ta := newTestAnimator("abc", 1, FadeIn)
	ta.SetSpeed(-1)
	if got := ta.Speed(); got != minSpeed {
		t.Errorf("Speed() after SetSpeed(-1) = %v, want %v", got, minSpeed)
	}
}

func TestTypewriter_RevealSchedule(t *testing.T) {
	// Interval 0.5s, text "Hi": 0.4s reveals nothing, 0.6s reveals "H",
	// 1.1s reveals both and finishes.
	ta := New("Hi", nil, color.White, 1, Typewriter,
		WithTiming(Timing{TypeInterval: 0.5}))

	ta.Advance(0.4)
	if got := len(ta.frameGlyphs()); got != 0 {
		t.Fatalf("after 0.4s: %d glyphs visible, want 0", got)
	}

	ta.Advance(0.2)
	glyphs := ta.frameGlyphs()
	if len(glyphs) != 1 || glyphs[0].r != 'H' {
		t.Fatalf("after 0.6s: got %v, want just 'H'", glyphs)
	}
	if ta.IsFinished() {
		t.Fatal("finished too early")
	}

	ta.Advance(0.5)
	if got := len(ta.frameGlyphs()); got != 2 {
		t.Fatalf("after 1.1s: %d glyphs visible, want 2", got)
	}
	if !ta.IsFinished() {
		t.Fatal("IsFinished() = false after all characters revealed")
	}
}

func TestTypewriter_RevealCount(t *testing.T) {
	const interval = 0.25
	text := "abcdef"

	tests := []struct {
		name    string
		elapsed float64
		want    int
	}{
		{"before first interval", 0.1, 0},
		{"one interval passed", 0.26, 1},
		{"two intervals", 0.51, 2},
		{"mid-way", 1.1, 4},
		{"clamped to length", 10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := New(text, nil, color.White, 1, Typewriter,
				WithTiming(Timing{TypeInterval: interval}))
			ta.Advance(tt.elapsed)
			if got := len(ta.frameGlyphs()); got != tt.want {
				t.Errorf("revealed = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTypewriter_RevealCountNonDecreasing(t *testing.T) {
	ta := newTestAnimator("monotone", 1, Typewriter)
	prev := 0
	for i := 0; i < 200; i++ {
		ta.Advance(0.02)
		n := len(ta.frameGlyphs())
		if n < prev {
			t.Fatalf("revealed count decreased from %d to %d", prev, n)
		}
		prev = n
	}
}

func TestFadeIn_OpacityMonotonicAndBounded(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"linear", nil},
		{"overshooting ease", []Option{WithEase(ease.OutBack)}},
		{"bouncing ease", []Option{WithEase(ease.OutBounce)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAnimator("fade in", 1, FadeIn, tt.opts...)
			prev := make([]float64, len(ta.chars))
			for i := 0; i < 300 && !ta.IsFinished(); i++ {
				ta.Advance(0.01)
				for j, g := range ta.frameGlyphs() {
					if g.alpha < 0 || g.alpha > 1 {
						t.Fatalf("char %d opacity %v out of [0,1]", j, g.alpha)
					}
					if g.alpha < prev[j] {
						t.Fatalf("char %d opacity decreased from %v to %v", j, prev[j], g.alpha)
					}
					prev[j] = g.alpha
				}
			}
			if !ta.IsFinished() {
				t.Fatal("fade did not finish")
			}
		})
	}
}

func TestFadeIn_CharactersSettleInOrder(t *testing.T) {
	ta := newTestAnimator("ordered", 1, FadeIn)

	settledAt := make([]int, len(ta.chars))
	for i := range settledAt {
		settledAt[i] = -1
	}

	for step := 0; !ta.IsFinished(); step++ {
		if step > 10000 {
			t.Fatal("fade did not finish")
		}
		ta.Advance(0.005)
		for j, g := range ta.frameGlyphs() {
			if settledAt[j] == -1 && g.alpha >= 1 {
				settledAt[j] = step
			}
		}
	}

	for j := 1; j < len(settledAt); j++ {
		if settledAt[j] < settledAt[j-1] {
			t.Errorf("char %d fully opaque at step %d, before char %d at step %d",
				j, settledAt[j], j-1, settledAt[j-1])
		}
	}
}

func TestHacker_SettlesToSourceText(t *testing.T) {
	const source = "Access Granted 123"
	ta := newTestAnimator(source, 2, Hacker)

	runToFinish(t, ta)

	glyphs := ta.frameGlyphs()
	if len(glyphs) != len([]rune(source)) {
		t.Fatalf("glyph count = %d, want %d", len(glyphs), len([]rune(source)))
	}
	for i, r := range []rune(source) {
		if glyphs[i].r != r {
			t.Errorf("char %d settled to %q, want %q", i, glyphs[i].r, r)
		}
	}
}

func TestHacker_WhitespaceNeverScrambled(t *testing.T) {
	ta := newTestAnimator("a b", 1, Hacker)

	for i := 0; i < 20; i++ {
		ta.Advance(0.005)
		glyphs := ta.frameGlyphs()
		if glyphs[1].r != ' ' {
			t.Fatalf("space scrambled to %q at step %d", glyphs[1].r, i)
		}
	}
}

func TestHacker_ScrambleUsesAlphabet(t *testing.T) {
	const alphabet = "#"
	ta := newTestAnimator("xy", 1, Hacker, WithAlphabet(alphabet))

	// Before the settle deadline every displayed glyph must come from the
	// scramble alphabet.
	ta.Advance(0.03)
	for i, g := range ta.frameGlyphs() {
		if g.r != '#' {
			t.Errorf("char %d displays %q, want scramble glyph '#'", i, g.r)
		}
	}
}

func TestIsFinished_MonotoneUnderFurtherAdvance(t *testing.T) {
	for _, v := range []Variant{FadeIn, Typewriter, Hacker} {
		t.Run(v.String(), func(t *testing.T) {
			ta := newTestAnimator("stay done", 3, v)
			runToFinish(t, ta)

			before := ta.frameGlyphs()
			for i := 0; i < 50; i++ {
				ta.Advance(0.1)
				if !ta.IsFinished() {
					t.Fatal("IsFinished() regressed to false")
				}
			}
			after := ta.frameGlyphs()
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("char %d changed after finish: %v -> %v", i, before[i], after[i])
				}
			}
		})
	}
}

func TestAdvance_IgnoresNegativeDelta(t *testing.T) {
	ta := newTestAnimator("abc", 1, Typewriter)
	ta.Advance(0.6)
	revealed := len(ta.frameGlyphs())

	ta.Advance(-5)
	if got := len(ta.frameGlyphs()); got != revealed {
		t.Errorf("revealed count changed from %d to %d on negative delta", revealed, got)
	}
	if ta.elapsed != 0.6 {
		t.Errorf("elapsed = %v, want 0.6", ta.elapsed)
	}
}

func TestSetSpeed_EquivalentProgress(t *testing.T) {
	for _, v := range []Variant{FadeIn, Typewriter, Hacker} {
		t.Run(v.String(), func(t *testing.T) {
			fast := newTestAnimator("equivalence", 2, v)
			slow := newTestAnimator("equivalence", 1, v)

			for i := 0; i < 10; i++ {
				fast.Advance(0.15)
				slow.Advance(0.3)
			}

			if fast.elapsed != slow.elapsed {
				t.Fatalf("elapsed differs: speed 2 at %v, speed 1 at %v", fast.elapsed, slow.elapsed)
			}
			if fast.IsFinished() != slow.IsFinished() {
				t.Errorf("IsFinished differs: %v vs %v", fast.IsFinished(), slow.IsFinished())
			}
			if fast.Progress() != slow.Progress() {
				t.Errorf("Progress differs: %v vs %v", fast.Progress(), slow.Progress())
			}
		})
	}
}

func TestSetSpeed_NotRetroactive(t *testing.T) {
	ta := newTestAnimator("abc", 1, Typewriter)
	ta.Advance(0.3)

	ta.SetSpeed(2)
	ta.Advance(0.15)

	// 0.3 at speed 1 plus 0.15 at speed 2: already-elapsed time is not rescaled.
	if ta.elapsed != 0.6 {
		t.Errorf("elapsed = %v, want 0.6", ta.elapsed)
	}
}

func TestReset_RestartsAnimation(t *testing.T) {
	ta := newTestAnimator("restart me", 2, Typewriter)
	runToFinish(t, ta)

	ta.Reset()

	if ta.IsFinished() {
		t.Error("IsFinished() = true immediately after Reset")
	}
	if ta.elapsed != 0 {
		t.Errorf("elapsed = %v after Reset, want 0", ta.elapsed)
	}
	if got := len(ta.frameGlyphs()); got != 0 {
		t.Errorf("%d glyphs visible after Reset, want 0", got)
	}
	if got := ta.Text(); got != "restart me" {
		t.Errorf("Text() = %q after Reset, want unchanged", got)
	}

	runToFinish(t, ta)
}

func TestSetText_ReplacesTextAndRestarts(t *testing.T) {
	ta := newTestAnimator("old", 2, Hacker)
	runToFinish(t, ta)

	ta.SetText("brand new text")

	if got := ta.Text(); got != "brand new text" {
		t.Errorf("Text() = %q, want %q", got, "brand new text")
	}
	if len(ta.chars) != len([]rune("brand new text")) {
		t.Errorf("state length %d out of lockstep with text length %d",
			len(ta.chars), len([]rune("brand new text")))
	}
	if ta.IsFinished() {
		t.Error("IsFinished() = true right after SetText")
	}

	runToFinish(t, ta)
	glyphs := ta.frameGlyphs()
	for i, r := range []rune("brand new text") {
		if glyphs[i].r != r {
			t.Errorf("char %d = %q, want %q", i, glyphs[i].r, r)
		}
	}
}

func TestEmptyText_TriviallyFinished(t *testing.T) {
	for _, v := range []Variant{FadeIn, Typewriter, Hacker} {
		t.Run(v.String(), func(t *testing.T) {
			ta := newTestAnimator("", 1, v)
			if !ta.IsFinished() {
				t.Error("IsFinished() = false for empty text")
			}
			if got := ta.Progress(); got != 1 {
				t.Errorf("Progress() = %v for empty text, want 1", got)
			}
			ta.Advance(1)
			ta.Draw(nil, 0, 0) // must not panic: empty text is a no-op
			ta.Reset()
			if !ta.IsFinished() {
				t.Error("IsFinished() = false after Reset of empty text")
			}
		})
	}
}

func TestFrameGlyphs_IdempotentWithoutAdvance(t *testing.T) {
	for _, v := range []Variant{FadeIn, Typewriter, Hacker} {
		t.Run(v.String(), func(t *testing.T) {
			ta := newTestAnimator("no hidden mutation", 1, v)
			ta.Advance(0.07)

			first := ta.frameGlyphs()
			second := ta.frameGlyphs()
			if len(first) != len(second) {
				t.Fatalf("glyph counts differ: %d vs %d", len(first), len(second))
			}
			for i := range first {
				if first[i] != second[i] {
					t.Errorf("char %d differs between renders: %v vs %v", i, first[i], second[i])
				}
			}
		})
	}
}

func TestFrameGlyphs_BeforeFirstAdvance(t *testing.T) {
	t.Run("FadeIn all transparent", func(t *testing.T) {
		ta := newTestAnimator("abc", 1, FadeIn)
		for i, g := range ta.frameGlyphs() {
			if g.alpha != 0 {
				t.Errorf("char %d alpha = %v before first Advance, want 0", i, g.alpha)
			}
		}
	})
	t.Run("Typewriter nothing visible", func(t *testing.T) {
		ta := newTestAnimator("abc", 1, Typewriter)
		if got := len(ta.frameGlyphs()); got != 0 {
			t.Errorf("%d glyphs visible before first Advance, want 0", got)
		}
	})
	t.Run("Hacker fully scrambled", func(t *testing.T) {
		ta := newTestAnimator("abc", 1, Hacker)
		if got := len(ta.frameGlyphs()); got != 3 {
			t.Errorf("%d glyphs before first Advance, want 3", got)
		}
	})
}

func TestProgress_TracksSettledFraction(t *testing.T) {
	ta := New("abcd", nil, color.White, 1, Typewriter,
		WithTiming(Timing{TypeInterval: 0.25}))

	ta.Advance(0.51) // two characters revealed
	if got := ta.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}
}

func TestVariant_String(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{FadeIn, "FadeIn"},
		{Typewriter, "Typewriter"},
		{Hacker, "Hacker"},
		{Variant(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", int(tt.v), got, tt.want)
		}
	}
}
