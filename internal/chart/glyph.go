package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// markerGlyph is a filled circle with a contrasting edge
type markerGlyph struct {
	fill      color.Color
	edge      color.Color
	edgeWidth vg.Length
}

func (g markerGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()

	c.SetColor(g.fill)
	c.Fill(p)
	c.SetLineStyle(draw.LineStyle{Color: g.edge, Width: g.edgeWidth})
	c.Stroke(p)
}

// labelBoxes fills a padded rectangle behind each marker label.
// It must be added to the plot before the labels themselves.
type labelBoxes struct {
	labels *plotter.Labels
	fill   color.Color
	pad    vg.Length
}

func (b labelBoxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.SetColor(b.fill)
	for i, label := range b.labels.Labels {
		if label == "" {
			continue
		}
		pt := vg.Point{
			X: trX(b.labels.XYs[i].X) + b.labels.Offset.X,
			Y: trY(b.labels.XYs[i].Y) + b.labels.Offset.Y,
		}
		r := b.labels.TextStyle[i].Rectangle(label).Add(pt)
		r.Min.X -= b.pad
		r.Min.Y -= b.pad
		r.Max.X += b.pad
		r.Max.Y += b.pad
		c.Fill(r.Path())
	}
}
