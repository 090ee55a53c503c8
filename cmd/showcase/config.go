package main

import (
	"image/color"

	"github.com/automoto/textanim"
)

// WindowConfig contains window setup values
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// DemoConfig contains showcase presentation values
type DemoConfig struct {
	// Sample text and color per variant
	Texts  map[textanim.Variant]string
	Colors map[textanim.Variant]color.RGBA

	// Animator placement (text baseline)
	TextX float64
	TextY float64

	// Progress bar geometry and colors
	BarX      float64
	BarY      float64
	BarWidth  float64
	BarHeight float64
	BarBg     color.RGBA
	BarFill   color.RGBA

	// Control ranges
	SpeedMin        float64
	SpeedMax        float64
	DefaultSpeed    float64
	FontSizeMin     float64
	FontSizeMax     float64
	DefaultFontSize float64

	Background color.RGBA
}

// Window is the global window configuration
var Window WindowConfig

// Demo is the global showcase configuration
var Demo DemoConfig

func init() {
	Window = WindowConfig{
		Width:  640,
		Height: 400,
		Title:  "textanim showcase",
	}

	Demo = DemoConfig{
		Texts: map[textanim.Variant]string{
			textanim.FadeIn:     "Hello, Fade In!",
			textanim.Typewriter: "Hello, Typewriter!",
			textanim.Hacker:     "Access Granted",
		},
		Colors: map[textanim.Variant]color.RGBA{
			textanim.FadeIn:     {255, 255, 255, 255},
			textanim.Typewriter: {255, 255, 255, 255},
			textanim.Hacker:     {80, 255, 80, 255},
		},

		TextX: 40,
		TextY: 300,

		BarX:      40,
		BarY:      330,
		BarWidth:  240,
		BarHeight: 6,
		BarBg:     color.RGBA{50, 50, 70, 255},
		BarFill:   color.RGBA{80, 200, 120, 255},

		SpeedMin:        0.1,
		SpeedMax:        10.0,
		DefaultSpeed:    1.0,
		FontSizeMin:     8,
		FontSizeMax:     72,
		DefaultFontSize: 24,

		Background: color.RGBA{20, 20, 30, 255},
	}
}
