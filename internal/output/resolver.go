// Package output decides where rendered charts are written.
package output

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultDir is where charts land when no explicit path or prefix is given
const DefaultDir = "docs/figures"

// DefaultFilenames maps dataset keys to their conventional file names
var DefaultFilenames = map[string]string{
	"r20":   "bode_r2_0.png",
	"r2100": "bode_r2_100.png",
	"low":   "bode_low.png",
	"mid":   "bode_mid.png",
	"high":  "bode_high.png",
}

// ErrNoDefaultFilename is returned for keys without a conventional file name
var ErrNoDefaultFilename = errors.New("no default filename for dataset")

// Options control how a save path is chosen
type Options struct {
	// Path is an explicit destination and always wins
	Path string
	// Prefix yields {Prefix}{key}.png, only in batch mode
	Prefix string
	Batch  bool
	Save   bool
}

// Resolver picks save paths and creates their parent directories
type Resolver struct {
	fs  afero.Fs
	dir string
}

// NewResolver creates a resolver rooted at dir; an empty dir means DefaultDir
func NewResolver(fs afero.Fs, dir string) *Resolver {
	if dir == "" {
		dir = DefaultDir
	}
	return &Resolver{fs: fs, dir: dir}
}

// Dir returns the default output directory
func (r *Resolver) Dir() string { return r.dir }

// Resolve returns the save path for key, or "" when nothing should be saved.
// Missing parent directories are created.
func (r *Resolver) Resolve(key string, opts Options) (string, error) {
	if !opts.Save {
		return "", nil
	}

	path, err := r.pick(key, opts)
	if err != nil {
		return "", err
	}

	if parent := filepath.Dir(path); parent != "." {
		if err := r.fs.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %s: %w", parent, err)
		}
	}
	return path, nil
}

func (r *Resolver) pick(key string, opts Options) (string, error) {
	switch {
	case opts.Path != "":
		return opts.Path, nil
	case opts.Batch && opts.Prefix != "":
		return opts.Prefix + key + ".png", nil
	}

	name, ok := DefaultFilenames[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoDefaultFilename, key)
	}
	return filepath.Join(r.dir, name), nil
}
