package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	xfont "golang.org/x/image/font"
)

// Theme colours shared by every chart
var (
	Background = color.RGBA{R: 0x34, G: 0x4A, B: 0x72, A: 0xff}
	Foreground = color.RGBA{R: 0xB1, G: 0xB9, B: 0xC9, A: 0xff}
	LineColor  = color.RGBA{R: 0xBF, G: 0x90, B: 0x00, A: 0xff}
	MarkerFill = color.RGBA{R: 0x20, G: 0x38, B: 0x64, A: 0xff}
	MarkerEdge = color.RGBA{R: 0xBF, G: 0x90, B: 0x00, A: 0xff}
)

const (
	titleSize     = 20
	axisLabelSize = 18
	markLabelSize = 12
	tickLabelSize = 14

	lineWidth       = 1.5
	gridWidth       = 0.5
	markerRadius    = 6
	markerEdgeWidth = 2
	labelOffset     = 10
	labelPadding    = 3
)

// Axis label text
const (
	FrequencyLabel = "Frequency (Hz)"
	GainLabel      = "Gain (dB)"
)

// labelBoxFill is the marker fill at 80% opacity
var labelBoxFill = color.NRGBA{R: MarkerFill.R, G: MarkerFill.G, B: MarkerFill.B, A: 0xcc}

// bold keeps the default Liberation face; its bold cut is the one every
// backend, vgpdf included, can resolve.
func bold(sty text.Style, size float64, c color.Color) text.Style {
	sty.Color = c
	sty.Font.Weight = xfont.WeightBold
	sty.Font.Size = vg.Points(size)
	return sty
}

func applyTheme(p *plot.Plot, title string) {
	p.BackgroundColor = Background

	p.Title.Text = title
	p.Title.TextStyle = bold(p.Title.TextStyle, titleSize, Foreground)

	p.X.Label.Text = FrequencyLabel
	p.Y.Label.Text = GainLabel

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle = bold(ax.Label.TextStyle, axisLabelSize, Foreground)
		ax.Tick.Label = bold(ax.Tick.Label, tickLabelSize, Foreground)
		ax.LineStyle.Color = Foreground
		ax.Tick.LineStyle.Color = Foreground
	}

	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
}

func gridStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  Foreground,
		Width:  vg.Points(gridWidth),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}
}
