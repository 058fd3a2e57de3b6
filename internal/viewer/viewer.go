// Package viewer opens saved charts in the platform image viewer.
package viewer

import (
	"github.com/pkg/browser"
)

// Viewer displays a chart file
type Viewer interface {
	Show(path string) error
}

// Opener launches the platform handler for a file
type Opener func(path string) error

type systemViewer struct {
	open Opener
}

// New returns a Viewer that hands files to the desktop's default application
func New() Viewer {
	return &systemViewer{open: browser.OpenFile}
}

// NewWithOpener is New with a custom opener, mainly for tests
func NewWithOpener(open Opener) Viewer {
	return &systemViewer{open: open}
}

func (v *systemViewer) Show(path string) error {
	return v.open(path)
}
