package textanim

// Variant selects how characters are revealed over time. It is fixed at
// construction; switching effects means constructing a new TextAnimator.
type Variant int

const (
	// FadeIn gradually raises each character's opacity from transparent to
	// fully opaque, staggered by character index.
	FadeIn Variant = iota

	// Typewriter reveals characters one at a time at a fixed interval,
	// as if the text were being typed.
	Typewriter

	// Hacker cycles each character through random glyphs before locking it
	// to the real one, oldest characters settling first.
	Hacker
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case FadeIn:
		return "FadeIn"
	case Typewriter:
		return "Typewriter"
	case Hacker:
		return "Hacker"
	default:
		return "Unknown"
	}
}
