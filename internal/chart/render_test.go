package chart

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/bodeplot/internal/dataset"
	"github.com/RMahshie/bodeplot/pkg/models"
)

func mustDataset(t *testing.T, key string) models.Dataset {
	t.Helper()
	ds, ok := dataset.Default().Get(key)
	require.True(t, ok, "dataset %s", key)
	return ds
}

func TestRender_DefaultMarks(t *testing.T) {
	ds := mustDataset(t, dataset.KeyR2100)

	fig, err := Render(ds, nil, 72)
	require.NoError(t, err)

	assert.Equal(t, "r2100", fig.Key())
	assert.Equal(t, 72, fig.DPI())
	markers := fig.Markers()
	require.Len(t, markers, len(ds.DefaultMarks()))
	for i, m := range markers {
		assert.Equal(t, ds.DefaultMarks()[i], m.TargetHz)
	}
}

func TestRender_MarkOverride(t *testing.T) {
	ds := mustDataset(t, dataset.KeyMid)

	fig, err := Render(ds, []float64{1000}, 72)
	require.NoError(t, err)
	markers := fig.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, "1000 Hz", markers[0].Label)

	fig, err = Render(ds, []float64{}, 72)
	require.NoError(t, err)
	assert.Empty(t, fig.Markers())
}

func TestRender_InvalidDPI(t *testing.T) {
	ds := mustDataset(t, dataset.KeyLow)

	for _, dpi := range []int{0, -10, MaxDPI + 1} {
		_, err := Render(ds, nil, dpi)
		assert.ErrorIs(t, err, ErrInvalidDPI, "dpi %d", dpi)
	}
}

func TestEncode_PNG(t *testing.T) {
	ds := mustDataset(t, dataset.KeyR20)
	fig, err := Render(ds, nil, 40)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Encode(&buf, FormatPNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	// 15 x 8 inches at 40 dpi
	bounds := img.Bounds()
	assert.InDelta(t, 600, bounds.Dx(), 1)
	assert.InDelta(t, 320, bounds.Dy(), 1)

	corner := color.RGBAModel.Convert(img.At(bounds.Min.X+1, bounds.Min.Y+1)).(color.RGBA)
	assert.Equal(t, Background, corner)
}

func TestEncode_ResolutionScales(t *testing.T) {
	ds := mustDataset(t, dataset.KeyHigh)

	sizes := map[int]int{}
	for _, dpi := range []int{20, 40} {
		fig, err := Render(ds, nil, dpi)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = fig.Encode(&buf, FormatPNG)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(&buf)
		require.NoError(t, err)
		sizes[dpi] = cfg.Width
	}
	assert.InDelta(t, 2*sizes[20], sizes[40], 2)
}

func TestEncode_VectorFormats(t *testing.T) {
	ds := mustDataset(t, dataset.KeyMid)
	fig, err := Render(ds, nil, 72)
	require.NoError(t, err)

	var svg bytes.Buffer
	require.NoError(t, fig.Encode(&svg, FormatSVG))
	assert.True(t, strings.Contains(svg.String(), "<svg"))
	assert.Contains(t, svg.String(), "Frequency (Hz)")

	var pdf bytes.Buffer
	require.NoError(t, fig.Encode(&pdf, FormatPDF))
	assert.True(t, bytes.HasPrefix(pdf.Bytes(), []byte("%PDF")))
}

func TestEncode_EveryFormat(t *testing.T) {
	formats := []Format{FormatPNG, FormatJPEG, FormatTIFF, FormatSVG, FormatPDF, FormatEPS}

	for _, key := range dataset.Default().Keys() {
		fig, err := Render(mustDataset(t, key), nil, 10)
		require.NoError(t, err)

		for _, format := range formats {
			t.Run(key+"/"+string(format), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, fig.Encode(&buf, format))
				assert.Positive(t, buf.Len())
			})
		}
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	fig, err := Render(mustDataset(t, dataset.KeyMid), nil, 72)
	require.NoError(t, err)

	err = fig.Encode(&bytes.Buffer{}, Format("bmp"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "docs/figures/bode_mid.png", want: FormatPNG},
		{path: "out/chart", want: FormatPNG},
		{path: "chart.JPG", want: FormatJPEG},
		{path: "chart.jpeg", want: FormatJPEG},
		{path: "chart.tif", want: FormatTIFF},
		{path: "chart.svg", want: FormatSVG},
		{path: "chart.pdf", want: FormatPDF},
		{path: "chart.eps", want: FormatEPS},
		{path: "chart.bmp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
}
