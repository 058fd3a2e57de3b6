package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidDataset is returned when recorded series violate the dataset invariants
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is one recorded magnitude sweep. It is immutable once constructed:
// every accessor returns a copy of the underlying series.
type Dataset struct {
	key          string
	title        string
	freq         []float64
	magnitudeDB  []float64
	defaultMarks []float64
}

// NewDataset validates and copies the recorded series into a Dataset.
// Frequencies must be positive and strictly increasing, and there must be
// exactly one magnitude per frequency.
func NewDataset(key, title string, freq, magnitudeDB, defaultMarks []float64) (Dataset, error) {
	if key == "" {
		return Dataset{}, fmt.Errorf("%w: empty key", ErrInvalidDataset)
	}
	if len(freq) == 0 {
		return Dataset{}, fmt.Errorf("%w: %s has no samples", ErrInvalidDataset, key)
	}
	if len(freq) != len(magnitudeDB) {
		return Dataset{}, fmt.Errorf("%w: %s has %d frequencies but %d magnitudes",
			ErrInvalidDataset, key, len(freq), len(magnitudeDB))
	}
	for i, f := range freq {
		if f <= 0 {
			return Dataset{}, fmt.Errorf("%w: %s frequency %d is not positive (%g)", ErrInvalidDataset, key, i, f)
		}
		if i > 0 && f <= freq[i-1] {
			return Dataset{}, fmt.Errorf("%w: %s frequency %d (%g) does not increase", ErrInvalidDataset, key, i, f)
		}
	}

	return Dataset{
		key:          key,
		title:        title,
		freq:         slices.Clone(freq),
		magnitudeDB:  slices.Clone(magnitudeDB),
		defaultMarks: slices.Clone(defaultMarks),
	}, nil
}

// Key returns the registry identifier (r20, r2100, low, mid, high)
func (d Dataset) Key() string { return d.key }

// Title returns the chart title
func (d Dataset) Title() string { return d.title }

// Len returns the number of samples
func (d Dataset) Len() int { return len(d.freq) }

// Freq returns a copy of the sample frequencies in Hz
func (d Dataset) Freq() []float64 { return slices.Clone(d.freq) }

// MagnitudeDB returns a copy of the recorded magnitudes in dB
func (d Dataset) MagnitudeDB() []float64 { return slices.Clone(d.magnitudeDB) }

// DefaultMarks returns a copy of the frequencies annotated when the caller supplies none
func (d Dataset) DefaultMarks() []float64 { return slices.Clone(d.defaultMarks) }

// Point returns the i-th sample
func (d Dataset) Point(i int) FrequencyPoint {
	return FrequencyPoint{Frequency: d.freq[i], Magnitude: d.magnitudeDB[i]}
}

// Points returns the whole sweep as frequency points
func (d Dataset) Points() []FrequencyPoint {
	points := make([]FrequencyPoint, len(d.freq))
	for i := range d.freq {
		points[i] = d.Point(i)
	}
	return points
}

// Marker is an annotation target resolved to the closest recorded sample
type Marker struct {
	TargetHz  float64 `json:"target_hz" doc:"Requested marker frequency in Hz"`
	Index     int     `json:"index" doc:"Index of the closest recorded sample"`
	Frequency float64 `json:"frequency" doc:"Recorded frequency at the index in Hz"`
	Magnitude float64 `json:"magnitude" doc:"Recorded magnitude at the index in dB"`
	Label     string  `json:"label" doc:"Annotation text"`
}

// MarkerLabel formats a marker frequency rounded to the nearest Hz
func MarkerLabel(freq float64) string {
	return fmt.Sprintf("%.0f Hz", freq)
}
