// Package reportpdf renders generated text or tabular datasets into
// paginated PDF reports.
//
// Text containing an embedded pipe-delimited Markdown table is rendered as
// a bordered table with weight-based column widths, per-column wrap modes,
// numeric threshold highlighting, alternating row fills, and repeated
// headers across page breaks. Text without a table flows as wrapped
// paragraphs. Reports are written as timestamped files:
//
//	r := reportpdf.NewRenderer(
//	    reportpdf.WithTitle("成绩单"),
//	    reportpdf.WithColumnWeights(map[string]float64{"评语": 2}),
//	    reportpdf.WithMultiLineColumns("评语"),
//	    reportpdf.WithHighlightColumns("成绩"),
//	)
//	path, err := r.Render(answer)
package reportpdf

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"github.com/lvillar/reportpdf/fontres"
	"github.com/lvillar/reportpdf/markdown"
	"github.com/lvillar/reportpdf/table"
)

// Renderer turns text or datasets into PDF report files. Configure it once
// with options; each Render call owns its document for the whole pass.
type Renderer struct {
	resolver  fontres.Resolver
	coreFont  string
	title     string
	outDir    string
	prefix    string
	weights   map[string]float64
	multiLine map[string]bool
	highlight map[string]bool
	style     table.Style
	log       *logrus.Logger
}

// NewRenderer creates a Renderer with the default style, the OS font
// scanner, and output into the current directory.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		resolver:  fontres.Default(),
		outDir:    ".",
		prefix:    "report_",
		weights:   make(map[string]float64),
		multiLine: make(map[string]bool),
		highlight: make(map[string]bool),
		style:     table.DefaultStyle(),
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes text as a timestamped PDF file and returns its path. Text
// containing a Markdown table renders as a table; anything else flows as
// wrapped paragraphs.
func (r *Renderer) Render(text string) (string, error) {
	return r.renderFile(func(pdf *fpdf.Fpdf) error {
		return r.body(pdf, text)
	})
}

// RenderTo renders text to w instead of a file.
func (r *Renderer) RenderTo(w io.Writer, text string) error {
	return r.renderTo(w, func(pdf *fpdf.Fpdf) error {
		return r.body(pdf, text)
	})
}

// RenderDataset writes an already-structured dataset as a timestamped PDF
// file and returns its path.
func (r *Renderer) RenderDataset(ds *table.Dataset) (string, error) {
	return r.renderFile(func(pdf *fpdf.Fpdf) error {
		return r.dataset(pdf, ds)
	})
}

// RenderDatasetTo renders a dataset to w instead of a file.
func (r *Renderer) RenderDatasetTo(w io.Writer, ds *table.Dataset) error {
	return r.renderTo(w, func(pdf *fpdf.Fpdf) error {
		return r.dataset(pdf, ds)
	})
}

func (r *Renderer) renderFile(body func(*fpdf.Fpdf) error) (string, error) {
	pdf, err := r.newDocument()
	if err != nil {
		return "", err
	}
	if err := body(pdf); err != nil {
		return "", err
	}

	path := filepath.Join(r.outDir, r.prefix+time.Now().Format("20060102_150405")+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", newRenderError("Output", err)
	}
	r.log.WithField("path", path).Info("report written")
	return path, nil
}

func (r *Renderer) renderTo(w io.Writer, body func(*fpdf.Fpdf) error) error {
	pdf, err := r.newDocument()
	if err != nil {
		return err
	}
	if err := body(pdf); err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return newRenderError("Output", err)
	}
	return nil
}

// newDocument builds the PDF and registers the rendering font, failing
// before anything is drawn when no usable font exists.
func (r *Renderer) newDocument() (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	if r.title != "" {
		pdf.SetTitle(r.title, true)
	}

	if r.coreFont != "" {
		pdf.SetFont(r.coreFont, "", 12)
	} else {
		font, err := r.resolver.Resolve()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingFont, err)
		}
		pdf.AddUTF8Font(font.Family, "", font.Path)
		pdf.SetFont(font.Family, "", 12)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrMissingFont, pdf.Error())
	}

	pdf.AddPage()
	return pdf, nil
}

// body renders text, preferring an embedded table and falling back to
// paragraph flow when none is found.
func (r *Renderer) body(pdf *fpdf.Fpdf, text string) error {
	ds, dropped, err := markdown.Extract(text)
	if errors.Is(err, markdown.ErrNoTable) {
		r.log.Debug("no table in text, rendering paragraphs")
		return r.paragraphs(pdf, text)
	}
	if err != nil {
		return err
	}
	if dropped > 0 {
		r.log.WithField("rows", dropped).Warn("dropped malformed table rows")
	}
	return r.dataset(pdf, ds)
}

func (r *Renderer) dataset(pdf *fpdf.Fpdf, ds *table.Dataset) error {
	r.heading(pdf)
	cols := table.Columns(ds.Columns, r.weights, r.multiLine, r.highlight)
	if err := table.New(pdf, cols).SetStyle(r.style).Render(ds.Rows); err != nil {
		return err
	}
	if pdf.Err() {
		return fmt.Errorf("reportpdf: drawing table: %w", pdf.Error())
	}
	return nil
}

// paragraphs flows text at full content width with no borders or fills;
// page breaks come from the document's auto page break.
func (r *Renderer) paragraphs(pdf *fpdf.Fpdf, text string) error {
	r.heading(pdf)
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.MultiCell(pageW-left-right, r.style.LineHeight, text, "", "L", false)
	if pdf.Err() {
		return fmt.Errorf("reportpdf: drawing text: %w", pdf.Error())
	}
	return nil
}

// heading draws the configured title above the body.
func (r *Renderer) heading(pdf *fpdf.Fpdf) {
	if r.title == "" {
		return
	}
	pdf.SetFontSize(16)
	pdf.CellFormat(0, 10, r.title, "", 1, "C", false, 0, "")
	pdf.SetFontSize(12)
	pdf.Ln(2)
}
