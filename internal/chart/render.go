// Package chart draws themed Bode magnitude charts.
package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/RMahshie/bodeplot/internal/marker"
	"github.com/RMahshie/bodeplot/pkg/models"
)

// Figure size and resolution limits
const (
	Width      = 15 * vg.Inch
	Height     = 8 * vg.Inch
	DefaultDPI = 150
	MinDPI     = 1
	MaxDPI     = 1200
)

// ErrInvalidDPI is returned for resolutions outside [MinDPI, MaxDPI]
var ErrInvalidDPI = errors.New("invalid dpi")

// Figure is a rendered chart ready to be encoded
type Figure struct {
	key     string
	plot    *plot.Plot
	dpi     int
	markers []models.Marker
}

// Render draws ds with markers at the samples closest to marks.
// A nil marks uses the dataset defaults; an empty, non-nil marks draws none.
func Render(ds models.Dataset, marks []float64, dpi int) (*Figure, error) {
	if dpi < MinDPI || dpi > MaxDPI {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidDPI, dpi, MinDPI, MaxDPI)
	}
	if marks == nil {
		marks = ds.DefaultMarks()
	}

	markers, err := marker.Locate(ds, marks)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	applyTheme(p, ds.Title())

	grid := plotter.NewGrid()
	grid.Vertical = gridStyle()
	grid.Horizontal = gridStyle()

	curve := make(plotter.XYs, ds.Len())
	for i, pt := range ds.Points() {
		curve[i].X = pt.Frequency
		curve[i].Y = pt.Magnitude
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("failed to build curve for %s: %w", ds.Key(), err)
	}
	line.LineStyle.Color = LineColor
	line.LineStyle.Width = vg.Points(lineWidth)

	p.Add(grid, line)

	if len(markers) > 0 {
		if err := addMarkers(p, markers); err != nil {
			return nil, fmt.Errorf("failed to draw markers for %s: %w", ds.Key(), err)
		}
	}

	return &Figure{
		key:     ds.Key(),
		plot:    p,
		dpi:     dpi,
		markers: markers,
	}, nil
}

func addMarkers(p *plot.Plot, markers []models.Marker) error {
	pts := make(plotter.XYs, len(markers))
	labels := make([]string, len(markers))
	for i, m := range markers {
		pts[i].X = m.Frequency
		pts[i].Y = m.Magnitude
		labels[i] = m.Label
	}

	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	dots.GlyphStyle = draw.GlyphStyle{
		Color:  MarkerFill,
		Radius: vg.Points(markerRadius),
		Shape: markerGlyph{
			fill:      MarkerFill,
			edge:      MarkerEdge,
			edgeWidth: vg.Points(markerEdgeWidth),
		},
	}

	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return err
	}
	for i := range annotations.TextStyle {
		sty := bold(annotations.TextStyle[i], markLabelSize, MarkerEdge)
		sty.XAlign = text.XCenter
		sty.YAlign = text.YBottom
		annotations.TextStyle[i] = sty
	}
	annotations.Offset = vg.Point{Y: vg.Points(labelOffset)}

	boxes := labelBoxes{labels: annotations, fill: labelBoxFill, pad: vg.Points(labelPadding)}

	p.Add(dots, boxes, annotations)
	return nil
}

// Key returns the dataset key the figure was rendered from
func (f *Figure) Key() string { return f.key }

// DPI returns the raster resolution
func (f *Figure) DPI() int { return f.dpi }

// Markers returns the resolved annotations
func (f *Figure) Markers() []models.Marker {
	out := make([]models.Marker, len(f.markers))
	copy(out, f.markers)
	return out
}

// Encode writes the figure in the given format. Raster formats use the figure dpi.
func (f *Figure) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG, FormatJPEG, FormatTIFF:
		c := vgimg.NewWith(
			vgimg.UseWH(Width, Height),
			vgimg.UseDPI(f.dpi),
			vgimg.UseBackgroundColor(Background),
		)
		f.plot.Draw(draw.New(c))

		var out io.WriterTo
		switch format {
		case FormatJPEG:
			out = vgimg.JpegCanvas{Canvas: c}
		case FormatTIFF:
			out = vgimg.TiffCanvas{Canvas: c}
		default:
			out = vgimg.PngCanvas{Canvas: c}
		}
		if _, err := out.WriteTo(w); err != nil {
			return fmt.Errorf("failed to encode %s: %w", format, err)
		}
		return nil

	case FormatSVG, FormatPDF, FormatEPS:
		c, err := draw.NewFormattedCanvas(Width, Height, string(format))
		if err != nil {
			return err
		}
		f.plot.Draw(draw.New(c))
		if _, err := c.WriteTo(w); err != nil {
			return fmt.Errorf("failed to encode %s: %w", format, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
