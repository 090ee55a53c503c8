package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/textanim"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ShowcaseUI holds the ebitenui control panel for the showcase
type ShowcaseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnVariantSelected func(textanim.Variant)
	OnStart           func()
	OnStop            func()
	OnSpeedChanged    func(float64)
	OnFontSizeChanged func(float64)
	OnTextApplied     func(string)

	// Widget references for updates
	variantButtons map[textanim.Variant]*widget.Button
	speedLabel     *widget.Label
	fontSizeLabel  *widget.Label
	statusLabel    *widget.Label
	textInput      *widget.TextInput

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewShowcaseUI creates the control panel with the given initial values
func NewShowcaseUI(selected textanim.Variant, speed, fontSize float64, sampleText string) *ShowcaseUI {
	sui := &ShowcaseUI{
		variantButtons: map[textanim.Variant]*widget.Button{},
	}

	sui.loadFonts()
	sui.buildUI(selected, speed, fontSize, sampleText)

	return sui
}

func (sui *ShowcaseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *ShowcaseUI) buildUI(selected textanim.Variant, speed, fontSize float64, sampleText string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("TEXT ANIMATION SHOWCASE", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(title)

	panel.AddChild(sui.buildVariantRow(selected))
	panel.AddChild(sui.buildControlRow())
	panel.AddChild(sui.buildSpeedRow(speed))
	panel.AddChild(sui.buildFontSizeRow(fontSize))
	panel.AddChild(sui.buildTextRow(sampleText))

	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 255, 120, 255},
		}),
	)
	panel.AddChild(sui.statusLabel)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildVariantRow creates one button per animation variant. The selected
// button is disabled, which doubles as the selection highlight.
func (sui *ShowcaseUI) buildVariantRow(selected textanim.Variant) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for _, v := range []textanim.Variant{textanim.FadeIn, textanim.Typewriter, textanim.Hacker} {
		variant := v
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
				Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			}),
			widget.ButtonOpts.Text(variant.String(), &sui.smallFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{200, 200, 200, 255},
				Disabled: color.RGBA{255, 255, 255, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				sui.SetSelectedVariant(variant)
				if sui.OnVariantSelected != nil {
					sui.OnVariantSelected(variant)
				}
			}),
		)
		sui.variantButtons[variant] = btn
		row.AddChild(btn)
	}

	sui.SetSelectedVariant(selected)
	return row
}

func (sui *ShowcaseUI) buildControlRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	startBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Start Animation", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
	row.AddChild(startBtn)

	stopBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{100, 40, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{140, 60, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{80, 30, 30, 255}),
		}),
		widget.ButtonOpts.Text("Stop Animation", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStop != nil {
				sui.OnStop()
			}
		}),
	)
	row.AddChild(stopBtn)

	return row
}

func (sui *ShowcaseUI) buildSpeedRow(speed float64) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Speed:     ", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(label)

	// Slider values are integer tenths of the speed multiplier.
	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(int(Demo.SpeedMin*10), int(Demo.SpeedMax*10)),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 16)),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
				Hover: image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			},
			&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{120, 120, 160, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{150, 150, 190, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{100, 100, 140, 255}),
			},
		),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 5 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			value := float64(args.Current) / 10
			sui.speedLabel.Label = fmt.Sprintf("%.1fx", value)
			if sui.OnSpeedChanged != nil {
				sui.OnSpeedChanged(value)
			}
		}),
	)
	slider.Current = int(speed * 10)
	row.AddChild(slider)

	sui.speedLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%.1fx", speed), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(sui.speedLabel)

	return row
}

func (sui *ShowcaseUI) buildFontSizeRow(fontSize float64) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Font Size:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(label)

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(int(Demo.FontSizeMin), int(Demo.FontSizeMax)),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 16)),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
				Hover: image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			},
			&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{120, 120, 160, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{150, 150, 190, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{100, 100, 140, 255}),
			},
		),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 4 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			value := float64(args.Current)
			sui.fontSizeLabel.Label = fmt.Sprintf("%dpt", args.Current)
			if sui.OnFontSizeChanged != nil {
				sui.OnFontSizeChanged(value)
			}
		}),
	)
	slider.Current = int(fontSize)
	row.AddChild(slider)

	sui.fontSizeLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%dpt", int(fontSize)), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(sui.fontSizeLabel)

	return row
}

func (sui *ShowcaseUI) buildTextRow(sampleText string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Text:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(label)

	sui.textInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&sui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(sampleText),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(sui.textInput)

	applyBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Apply", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnTextApplied != nil {
				if txt := sui.textInput.GetText(); txt != "" {
					sui.OnTextApplied(txt)
				}
			}
		}),
	)
	row.AddChild(applyBtn)

	return row
}

// SetSelectedVariant updates which variant button shows as active
func (sui *ShowcaseUI) SetSelectedVariant(selected textanim.Variant) {
	for v, btn := range sui.variantButtons {
		btn.GetWidget().Disabled = v == selected
	}
}

// SetStatus updates the status line below the controls
func (sui *ShowcaseUI) SetStatus(msg string) {
	if sui.statusLabel != nil {
		sui.statusLabel.Label = msg
	}
}

func (sui *ShowcaseUI) Update() {
	sui.UI.Update()
}

func (sui *ShowcaseUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
