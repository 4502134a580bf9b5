// Package chart draws series as terminal charts and PNG images.
package chart

import "io"

// Figure defaults: 11x4 inches at 100 dpi for images, and the same aspect
// approximated in terminal cells.
const (
	DefaultWidth       = 88
	DefaultHeight      = 16
	DefaultImageWidth  = 1100
	DefaultImageHeight = 400

	minWidth  = 30
	minHeight = 4
)

// RenderContext carries everything a render call needs. It is passed to
// every Render call instead of living in package state.
type RenderContext struct {
	// Width and Height size terminal charts in cells.
	Width  int
	Height int

	// ImageWidth and ImageHeight size PNG output in pixels.
	ImageWidth  int
	ImageHeight int

	// OutDir receives one PNG per rendered chart when non-empty.
	OutDir string

	// Color enables ANSI styling of terminal charts.
	Color bool

	// Log receives notes about skipped output. Nil discards them.
	Log io.Writer
}

// ContextOption configures a RenderContext.
type ContextOption func(*RenderContext)

// WithSize sets the terminal chart size in cells.
func WithSize(width, height int) ContextOption {
	return func(rc *RenderContext) {
		if width > 0 {
			rc.Width = width
		}
		if height > 0 {
			rc.Height = height
		}
	}
}

// WithImageSize sets the PNG size in pixels.
func WithImageSize(width, height int) ContextOption {
	return func(rc *RenderContext) {
		if width > 0 {
			rc.ImageWidth = width
		}
		if height > 0 {
			rc.ImageHeight = height
		}
	}
}

// WithOutDir enables PNG output into dir.
func WithOutDir(dir string) ContextOption {
	return func(rc *RenderContext) {
		rc.OutDir = dir
	}
}

// WithColor toggles ANSI styling.
func WithColor(on bool) ContextOption {
	return func(rc *RenderContext) {
		rc.Color = on
	}
}

// WithLog sets the writer for render notes.
func WithLog(w io.Writer) ContextOption {
	return func(rc *RenderContext) {
		rc.Log = w
	}
}

// NewRenderContext returns a context with default figure sizes.
func NewRenderContext(opts ...ContextOption) *RenderContext {
	rc := &RenderContext{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ImageWidth:  DefaultImageWidth,
		ImageHeight: DefaultImageHeight,
		Color:       true,
	}
	for _, opt := range opts {
		opt(rc)
	}
	if rc.Width < minWidth {
		rc.Width = minWidth
	}
	if rc.Height < minHeight {
		rc.Height = minHeight
	}
	return rc
}
