// Package pdf composes invoices and package labels with go-pdf/fpdf.
//
// Output is deterministic: the creation and modification dates are pinned
// to the issue date of the document and catalog objects are written in
// sorted order, so equal sections produce equal bytes.
package pdf

import (
	"bytes"
	"fmt"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/go-pdf/fpdf"
)

const (
	creator      = "fulfillment"
	barcodeImage = "barcode"
	pageAlias    = "{nb}"
)

var _ ports.DocumentComposer = &Composer{}

type Composer struct {
	compress bool
}

type Option func(*Composer)

// WithCompression toggles page stream compression. It is on by default.
func WithCompression(enabled bool) Option {
	return func(c *Composer) {
		c.compress = enabled
	}
}

func NewComposer(opts ...Option) *Composer {
	c := &Composer{compress: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose lays out s as a single PDF. An invoice prints every section; a
// label prints the package row selected by s.LabelSequence and no totals.
func (c *Composer) Compose(s document.Sections) (document.Handle, error) {
	name := s.Kind.String()
	if err := s.Kind.Validate(); err != nil {
		return document.Handle{}, errs.NewCompositionErrorWithCause(name, "unsupported document kind", err)
	}
	if s.Order == nil {
		return document.Handle{}, errs.NewCompositionError(name, "order section is missing")
	}
	if s.Kind == document.Label {
		if _, ok := s.Packages.Row(s.LabelSequence); !ok {
			return document.Handle{}, errs.NewCompositionError(name,
				fmt.Sprintf("no package %d to print a label for, order has %d", s.LabelSequence, len(s.Packages.Rows)))
		}
	}

	pdf := c.newDocument(s)
	l := &layout{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetHeaderFunc(func() { l.brandingHeader(s) })
	pdf.SetFooterFunc(func() { l.footer() })
	l.newPage()

	l.title(s)
	l.orderBlock(s)
	if s.Kind == document.Invoice {
		l.bagTable(s)
		l.productionBlock(s)
		l.packageTable(s.Packages)
	} else {
		row, _ := s.Packages.Row(s.LabelSequence)
		l.labelBlock(s, row)
	}
	l.unitAnnotations(s.Units)
	l.deliveryBlock(s)
	if s.Kind == document.Invoice {
		l.totalsBlock(s.Totals)
	}
	if err := l.barcode(s.Barcode); err != nil {
		return document.Handle{}, errs.NewCompositionErrorWithCause(name, "barcode image could not be placed", err)
	}

	if err := pdf.Error(); err != nil {
		return document.Handle{}, errs.NewCompositionErrorWithCause(name, "layout failed", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return document.Handle{}, errs.NewCompositionErrorWithCause(name, "pdf output failed", err)
	}

	return document.NewHandle(s.Filename(), buf.Bytes(), pdf.PageCount()), nil
}

func (c *Composer) newDocument(s document.Sections) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(c.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(s.IssuedAt)
	pdf.SetModificationDate(s.IssuedAt)
	pdf.SetCreator(creator, false)
	pdf.SetAuthor(s.Company.Name, true)
	pdf.SetTitle(s.Filename(), true)
	pdf.SetMargins(marginLeft, headerBottom, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages(pageAlias)
	return pdf
}
