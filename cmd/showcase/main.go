package main

import (
	"log"

	"github.com/automoto/textanim"
	"github.com/automoto/textanim/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// Game runs the showcase: a control panel on top and the selected animator
// rendered below it, in the manner of the host game loop the library targets.
type Game struct {
	ui        *ShowcaseUI
	animators map[textanim.Variant]*textanim.TextAnimator

	selected textanim.Variant
	running  bool
	speed    float64
	fontSize float64
}

func NewGame() *Game {
	fonts.MustRegister(fonts.Default, goregular.TTF)

	g := &Game{
		selected: textanim.FadeIn,
		speed:    Demo.DefaultSpeed,
		fontSize: Demo.DefaultFontSize,
	}

	texts := map[textanim.Variant]string{}
	for v, txt := range Demo.Texts {
		texts[v] = txt
	}

	if saved, err := LoadSettings(); err == nil && saved != nil {
		g.applySavedSettings(saved, texts)
	}

	face := fonts.Face(fonts.Default, g.fontSize)
	g.animators = map[textanim.Variant]*textanim.TextAnimator{
		textanim.FadeIn: textanim.New(
			texts[textanim.FadeIn], face, Demo.Colors[textanim.FadeIn],
			g.speed, textanim.FadeIn,
			textanim.WithEase(ease.OutQuad),
		),
		textanim.Typewriter: textanim.New(
			texts[textanim.Typewriter], face, Demo.Colors[textanim.Typewriter],
			g.speed, textanim.Typewriter,
		),
		textanim.Hacker: textanim.New(
			texts[textanim.Hacker], face, Demo.Colors[textanim.Hacker],
			g.speed, textanim.Hacker,
		),
	}

	g.buildUI(texts[g.selected])

	return g
}

// applySavedSettings restores persisted control values, ignoring anything out
// of range (an older save or a hand-edited file).
func (g *Game) applySavedSettings(saved *SavedSettings, texts map[textanim.Variant]string) {
	if saved.Speed >= Demo.SpeedMin && saved.Speed <= Demo.SpeedMax {
		g.speed = saved.Speed
	}
	if saved.FontSize >= Demo.FontSizeMin && saved.FontSize <= Demo.FontSizeMax {
		g.fontSize = saved.FontSize
	}
	v := textanim.Variant(saved.Variant)
	if v == textanim.FadeIn || v == textanim.Typewriter || v == textanim.Hacker {
		g.selected = v
	}
	if saved.Text != "" {
		texts[g.selected] = saved.Text
	}
}

func (g *Game) buildUI(sampleText string) {
	g.ui = NewShowcaseUI(g.selected, g.speed, g.fontSize, sampleText)

	g.ui.OnVariantSelected = func(v textanim.Variant) {
		g.selected = v
		g.ui.SetStatus("")
		g.saveSettings()
	}
	g.ui.OnStart = func() {
		g.animators[g.selected].Reset()
		g.running = true
		g.ui.SetStatus("")
	}
	g.ui.OnStop = func() {
		// Freeze in place; Start resets from the beginning.
		g.running = false
	}
	g.ui.OnSpeedChanged = func(speed float64) {
		g.speed = speed
		for _, a := range g.animators {
			a.SetSpeed(speed)
		}
		g.saveSettings()
	}
	g.ui.OnFontSizeChanged = func(size float64) {
		g.fontSize = size
		face := fonts.Face(fonts.Default, size)
		for _, a := range g.animators {
			a.SetFace(face)
		}
		g.saveSettings()
	}
	g.ui.OnTextApplied = func(txt string) {
		g.animators[g.selected].SetText(txt)
		g.running = false
		g.ui.SetStatus("")
		g.saveSettings()
	}
}

func (g *Game) saveSettings() {
	_ = SaveSettings(&SavedSettings{
		Speed:    g.speed,
		FontSize: g.fontSize,
		Variant:  int(g.selected),
		Text:     g.animators[g.selected].Text(),
	})
}

func (g *Game) Update() error {
	g.ui.Update()

	animator := g.animators[g.selected]
	if g.running && !animator.IsFinished() {
		animator.Advance(1.0 / float64(ebiten.TPS()))
		if animator.IsFinished() {
			g.ui.SetStatus("Animation finished!")
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Demo.Background)

	g.ui.Draw(screen)

	animator := g.animators[g.selected]
	animator.Draw(screen, Demo.TextX, Demo.TextY)
	g.drawProgressBar(screen, animator.Progress())
}

// drawProgressBar renders the settled-character fraction as a thin bar under
// the animated text.
func (g *Game) drawProgressBar(screen *ebiten.Image, progress float64) {
	vector.FillRect(
		screen,
		float32(Demo.BarX), float32(Demo.BarY),
		float32(Demo.BarWidth), float32(Demo.BarHeight),
		Demo.BarBg,
		false,
	)
	if progress > 0 {
		vector.FillRect(
			screen,
			float32(Demo.BarX), float32(Demo.BarY),
			float32(Demo.BarWidth*progress), float32(Demo.BarHeight),
			Demo.BarFill,
			false,
		)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return Window.Width, Window.Height
}

func main() {
	ebiten.SetWindowSize(Window.Width, Window.Height)
	ebiten.SetWindowTitle(Window.Title)

	if err := InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
