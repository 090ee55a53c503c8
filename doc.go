// Package textanim animates the reveal of a text string inside an Ebiten
// game loop: fade-in, typewriter, or a randomized "decoding" effect.
//
// Create a TextAnimator with the text, font face, color, speed, and Variant,
// call Advance once per frame with the frame's elapsed seconds, and call
// Draw to paint the partially revealed text. Advance and Draw are separate
// so the reveal state can be driven and tested without a screen.
//
//	animator := textanim.New("Access Granted", face, color.White, 2.0, textanim.Hacker)
//
//	func (g *Game) Update() error {
//		animator.Advance(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		animator.Draw(screen, 40, 120)
//	}
//
// A TextAnimator is owned by a single goroutine, the one running the game
// loop. It performs no synchronization of its own.
package textanim
