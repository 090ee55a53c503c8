package textanim

import "unicode"

// defaultAlphabet is the glyph pool the Hacker variant scrambles through
// before characters settle.
const defaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*+-=<>?"

// scrambleGlyph picks a random stand-in for r. Whitespace is never
// scrambled; replacing spaces makes word boundaries flicker illegibly.
func (ta *TextAnimator) scrambleGlyph(r rune) rune {
	if unicode.IsSpace(r) {
		return r
	}
	return ta.alphabet[ta.rng.Intn(len(ta.alphabet))]
}
