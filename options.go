package reportpdf

import (
	"github.com/sirupsen/logrus"

	"github.com/lvillar/reportpdf/fontres"
	"github.com/lvillar/reportpdf/table"
)

// Option is a functional option for configuring a Renderer.
type Option func(*Renderer)

// WithFontResolver sets the resolver used to locate the rendering font.
// The default scans the OS font directories for known CJK fonts.
func WithFontResolver(resolver fontres.Resolver) Option {
	return func(r *Renderer) {
		r.resolver = resolver
	}
}

// WithCoreFont renders with one of the built-in PDF core fonts
// ("Helvetica", "Courier", "Times") instead of a resolved font file.
// Core fonts cover Latin text only.
func WithCoreFont(family string) Option {
	return func(r *Renderer) {
		r.coreFont = family
	}
}

// WithTitle sets the document title, drawn as a heading and stored in the
// PDF metadata.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithOutput sets the directory and filename prefix for written reports.
// Filenames are the prefix plus a second-resolution timestamp.
func WithOutput(dir, prefix string) Option {
	return func(r *Renderer) {
		r.outDir = dir
		r.prefix = prefix
	}
}

// WithColumnWeights sets per-column layout weight overrides. Columns not
// listed keep the default weight of 1.
func WithColumnWeights(weights map[string]float64) Option {
	return func(r *Renderer) {
		for name, w := range weights {
			r.weights[name] = w
		}
	}
}

// WithMultiLineColumns marks columns whose text word-wraps across lines,
// growing the row instead of being clipped.
func WithMultiLineColumns(names ...string) Option {
	return func(r *Renderer) {
		for _, n := range names {
			r.multiLine[n] = true
		}
	}
}

// WithHighlightColumns marks columns whose integer values below the style
// threshold render in the alert color.
func WithHighlightColumns(names ...string) Option {
	return func(r *Renderer) {
		for _, n := range names {
			r.highlight[n] = true
		}
	}
}

// WithStyle replaces the default table style (row heights, fills, header
// color, highlight threshold).
func WithStyle(style table.Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// WithLogger sets the logger used for rendering diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}
