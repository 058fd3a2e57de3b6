// Package dataset holds the five recorded Bode sweeps.
package dataset

import (
	"errors"
	"fmt"

	"github.com/RMahshie/bodeplot/pkg/models"
)

// Dataset keys in registry order
const (
	KeyR20   = "r20"
	KeyR2100 = "r2100"
	KeyLow   = "low"
	KeyMid   = "mid"
	KeyHigh  = "high"
)

// ErrUnknownDataset is returned when a key is not registered
var ErrUnknownDataset = errors.New("unknown dataset")

// Registry is a fixed, ordered set of datasets. It is read-only after construction.
type Registry struct {
	order []string
	byKey map[string]models.Dataset
}

var defaultRegistry = mustRegistry(
	mustDataset(KeyR20, "Gráfica de Bode con R2 al 0%", freqR20, magR20,
		[]float64{79, 3162, 15849, 100000}),
	mustDataset(KeyR2100, "Gráfica de Bode con R2 al 100%", freqR2100, magR2100,
		[]float64{79, 3162, 6310, 15849, 100000}),
	mustDataset(KeyLow, "Gráfica de Bode para frecuencias bajas", freqLow, magLow,
		[]float64{82, 3282, 16448, 103782}),
	mustDataset(KeyMid, "Gráfica de Bode para frecuencias medias", freqMid, magMid,
		[]float64{79, 3162, 15849, 100000}),
	mustDataset(KeyHigh, "Gráfica de Bode para frecuencias altas", freqHigh, magHigh,
		[]float64{79, 3162, 15849, 100000}),
)

// Default returns the registry of the five recorded sweeps
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry preserving the given order. Duplicate keys are rejected.
func NewRegistry(datasets ...models.Dataset) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(datasets)),
		byKey: make(map[string]models.Dataset, len(datasets)),
	}
	for _, ds := range datasets {
		if _, exists := r.byKey[ds.Key()]; exists {
			return nil, fmt.Errorf("duplicate dataset key %q", ds.Key())
		}
		r.order = append(r.order, ds.Key())
		r.byKey[ds.Key()] = ds
	}
	return r, nil
}

// Keys returns the dataset keys in registry order
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// All returns every dataset in registry order
func (r *Registry) All() []models.Dataset {
	all := make([]models.Dataset, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.byKey[key])
	}
	return all
}

// Len returns the number of registered datasets
func (r *Registry) Len() int { return len(r.order) }

// Get returns the dataset for key
func (r *Registry) Get(key string) (models.Dataset, bool) {
	ds, ok := r.byKey[key]
	return ds, ok
}

// Lookup is Get with an error naming the unknown key
func (r *Registry) Lookup(key string) (models.Dataset, error) {
	ds, ok := r.byKey[key]
	if !ok {
		return models.Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, key)
	}
	return ds, nil
}

func mustDataset(key, title string, freq, mag, marks []float64) models.Dataset {
	ds, err := models.NewDataset(key, title, freq, mag, marks)
	if err != nil {
		panic(err)
	}
	return ds
}

func mustRegistry(datasets ...models.Dataset) *Registry {
	r, err := NewRegistry(datasets...)
	if err != nil {
		panic(err)
	}
	return r
}
