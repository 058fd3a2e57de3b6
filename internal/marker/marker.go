// Package marker resolves annotation frequencies to recorded samples.
package marker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/RMahshie/bodeplot/pkg/models"
)

// ErrNoSamples is returned when targets are resolved against an empty series
var ErrNoSamples = errors.New("no samples to resolve markers against")

// NearestIndices returns, for each target, the index i minimising |freq[i]-target|.
// Ties resolve to the lowest index. Targets outside the sampled range resolve to
// the nearest boundary sample. The result has the same length and order as targets.
func NearestIndices(freq, targets []float64) ([]int, error) {
	indices := make([]int, 0, len(targets))
	if len(targets) == 0 {
		return indices, nil
	}
	if len(freq) == 0 {
		return nil, ErrNoSamples
	}

	dist := make([]float64, len(freq))
	for _, target := range targets {
		for i, f := range freq {
			dist[i] = math.Abs(f - target)
		}
		// MinIdx keeps the first minimum
		indices = append(indices, floats.MinIdx(dist))
	}
	return indices, nil
}

// Locate resolves targets against ds into full markers
func Locate(ds models.Dataset, targets []float64) ([]models.Marker, error) {
	freq := ds.Freq()
	indices, err := NearestIndices(freq, targets)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.Key(), err)
	}

	mag := ds.MagnitudeDB()
	markers := make([]models.Marker, len(indices))
	for i, idx := range indices {
		markers[i] = models.Marker{
			TargetHz:  targets[i],
			Index:     idx,
			Frequency: freq[idx],
			Magnitude: mag[idx],
			Label:     models.MarkerLabel(freq[idx]),
		}
	}
	return markers, nil
}

// ParseList parses a comma-separated list of frequencies in Hz.
// The empty string is a valid, empty list.
func ParseList(s string) ([]float64, error) {
	values := make([]float64, 0)
	if strings.TrimSpace(s) == "" {
		return values, nil
	}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid marker frequency %q", field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid marker frequency %q", field)
		}
		values = append(values, v)
	}
	return values, nil
}
