package pdf

import (
	"bytes"
	"strconv"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/numfmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
	weightUnit     = "kg"
	thanks         = "Thank you for your business!"

	barcodeWidth  = 100.0
	barcodeHeight = 30.0
)

var hundred = decimal.NewFromInt(100)

// brandingHeader is anchored to the page origin and drawn on every page.
func (l *layout) brandingHeader(s document.Sections) {
	c := s.Company
	l.textColor(black)
	l.font("B", 16)
	l.pdf.SetXY(marginLeft, 15)
	l.pdf.CellFormat(contentWidth, 8, l.tr(numfmt.OrNA(c.Name)), "", 0, "R", false, 0, "")

	l.font("", 9)
	l.textColor(grey)
	y := 24.0
	for _, line := range []string{c.Address, c.Email, c.Phone} {
		if line == "" {
			continue
		}
		l.pdf.SetXY(marginLeft, y)
		l.pdf.CellFormat(contentWidth, 5, l.fit(line, contentWidth), "", 0, "R", false, 0, "")
		y += 5
	}
	l.textColor(black)
	l.pdf.SetLineWidth(0.3)
	l.pdf.Line(marginLeft, headerBottom-8, pageWidth-marginRight, headerBottom-8)
}

func (l *layout) footer() {
	l.font("I", 8)
	l.textColor(grey)
	l.pdf.SetXY(marginLeft, footerY)
	l.pdf.CellFormat(contentWidth, 5, thanks, "", 0, "C", false, 0, "")
	l.pdf.SetXY(marginLeft, footerY+5)
	l.pdf.CellFormat(contentWidth, 5, "Page "+strconv.Itoa(l.pdf.PageNo())+" of "+pageAlias, "", 0, "C", false, 0, "")
	l.textColor(black)
}

func (l *layout) title(s document.Sections) {
	if s.Kind == document.Label {
		l.centered("PACKAGE LABEL", "B", 18)
	} else {
		l.centered("INVOICE", "B", 18)
	}
	l.gap()
}

func (l *layout) orderBlock(s document.Sections) {
	o := s.Order
	c := o.Customer()

	left := [][2]string{
		{"Customer", numfmt.OrNA(c.Name())},
		{"Address", numfmt.OrNA(c.Address())},
		{"Phone", numfmt.OrNA(c.Mobile())},
		{"Email", numfmt.OrNA(c.Email())},
	}
	right := [][2]string{
		{"Document No", numfmt.OrNA(s.Number)},
		{"Order ID", o.OrderID().String()},
		{"Date", s.IssuedAt.Format(dateLayout)},
		{"Order Date", formatTime(o.CreatedAt().IsZero(), o.CreatedAt().Format(dateTimeLayout))},
		{"Agent", numfmt.OrNA(o.Agent())},
	}
	l.heading("Order", rowHeight*2)
	l.pairs(left, right)
	l.gap()

	t := newTable(headFill,
		column{"Description", 4},
		column{"Quantity", 2},
		column{"Unit Price", 2},
		column{"Total Price", 2},
	)
	l.draw(t, [][]string{{
		numfmt.OrNA(o.JobName()),
		o.Quantity().String(),
		o.UnitPrice().String(),
		numfmt.Number(o.Subtotal()),
	}})
	l.gap()
}

func (l *layout) bagTable(s document.Sections) {
	b := s.Order.Bag()
	t := newTable(headFill,
		column{"Bag Type", 2},
		column{"Size", 2},
		column{"Color", 2},
		column{"Print Color", 2},
		column{"GSM", 1},
	)
	l.heading("Bag Details", rowHeight*2)
	l.draw(t, [][]string{{
		numfmt.OrNA(b.Type()),
		numfmt.OrNA(b.Size()),
		numfmt.OrNA(b.Color()),
		numfmt.OrNA(b.PrintColor()),
		numfmt.OrNA(b.GSM()),
	}})
	l.gap()
}

func (l *layout) productionBlock(s document.Sections) {
	t := newTable(headFill,
		column{"Status", 2},
		column{"Roll Size", 2},
		column{"Cylinder Size", 2},
		column{"Quantity (Kgs)", 2},
		column{"Rolls", 1},
		column{"Remarks", 3},
	)
	row := []string{
		numfmt.NotAvailable, numfmt.NotAvailable, numfmt.NotAvailable,
		numfmt.NotAvailable, numfmt.NotAvailable, numfmt.NotAvailable,
	}
	if p := s.Production; p != nil {
		d := p.Details()
		row = []string{
			p.Status().String(),
			numfmt.OrNA(d.RollSize),
			numfmt.OrNA(d.CylinderSize),
			d.QuantityKgs.String(),
			d.QuantityRolls.String(),
			numfmt.OrNA(d.Remarks),
		}
	}
	l.heading("Production", rowHeight*2)
	l.draw(t, [][]string{row})
	l.gap()
}

func packageColumns() table {
	return newTable(headFill,
		column{"#", 1},
		column{"Package Size", 5},
		column{"Weight", 3},
	)
}

// packageTable prints one row per package, a single N/A row when there is
// none, and the total weight below the last row.
func (l *layout) packageTable(agg packaging.Aggregate) {
	lines := make([][]string, 0, len(agg.Rows)+1)
	for _, r := range agg.Rows {
		lines = append(lines, []string{
			strconv.Itoa(r.Sequence),
			r.Dimensions,
			weight(r.Detail),
		})
	}
	if len(lines) == 0 {
		lines = append(lines, []string{numfmt.NotAvailable, numfmt.NotAvailable, numfmt.NotAvailable})
	}

	l.heading("Packages", rowHeight*2)
	l.draw(packageColumns(), lines)

	total := newTable(totalsFill, column{"", 6}, column{"", 3})
	total.bold = true
	l.ensure(rowHeight)
	l.row(total, []string{"Total Weight", numfmt.Weight(agg.TotalWeight, weightUnit)})
	l.gap()
}

// labelBlock prints the fabric of the order next to the one package the
// label is for.
func (l *layout) labelBlock(s document.Sections, r packaging.Row) {
	b := s.Order.Bag()
	d := r.Detail
	left := [][2]string{
		{"Type of Fabric", numfmt.OrNA(b.Type())},
		{"Color", numfmt.OrNA(b.Color())},
		{"Print Color", numfmt.OrNA(b.PrintColor())},
		{"GSM", numfmt.OrNA(b.GSM())},
	}
	right := [][2]string{
		{"Package", strconv.Itoa(r.Sequence) + " of " + strconv.Itoa(len(s.Packages.Rows))},
		{"Length", d.Length().String()},
		{"Width", d.Width().String()},
		{"Height", d.Height().String()},
		{"Gross Wt", weight(d)},
	}
	l.heading("Package", rowHeight*2)
	l.pairs(left, right)
	l.gap()
	l.draw(packageColumns(), [][]string{{strconv.Itoa(r.Sequence), r.Dimensions, weight(d)}})
	l.gap()
}

func (l *layout) unitAnnotations(units []string) {
	l.font("", 10)
	if len(units) == 0 {
		units = []string{numfmt.NotAvailable}
	}
	for _, u := range units {
		l.ensure(lineHeight)
		l.pdf.SetXY(marginLeft, l.y)
		l.pdf.CellFormat(contentWidth, lineHeight, l.fit("Unit No.: "+numfmt.OrNA(u), contentWidth), "", 0, "L", false, 0, "")
		l.y += lineHeight
	}
	l.gap()
}

func (l *layout) deliveryBlock(s document.Sections) {
	t := newTable(headFill,
		column{"Driver", 2},
		column{"Contact", 2},
		column{"Vehicle No", 2},
		column{"Delivery Date", 2},
		column{"Status", 2},
	)
	row := []string{
		numfmt.NotAvailable, numfmt.NotAvailable, numfmt.NotAvailable,
		numfmt.NotAvailable, numfmt.NotAvailable,
	}
	if d := s.Delivery; d != nil {
		a := d.Assignment()
		row = []string{
			numfmt.OrNA(a.DriverName),
			numfmt.OrNA(a.DriverContact),
			numfmt.OrNA(a.VehicleNo),
			formatTime(a.DeliveryDate.IsZero(), a.DeliveryDate.Format(dateLayout)),
			d.Status().String(),
		}
	}
	l.heading("Delivery", rowHeight*2)
	l.draw(t, [][]string{row})
	l.gap()
}

func (l *layout) totalsBlock(t document.Totals) {
	grid := newTable(headFill, column{"", 7}, column{"", 3})
	l.ensure(rowHeight * 3)
	l.row(grid, []string{"Subtotal", numfmt.Number(t.Subtotal)})
	l.row(grid, []string{"GST (" + numfmt.Percentage(document.TaxRate.Mul(hundred)) + ")", numfmt.Number(t.Tax)})

	total := newTable(totalsFill, column{"", 7}, column{"", 3})
	total.bold = true
	l.row(total, []string{"Total", numfmt.Number(t.Total)})
	l.gap()
}

// row prints a label cell right-aligned against its value cell. Bold rows
// fill the value cell.
func (l *layout) row(t table, cells []string) {
	style := ""
	if t.bold {
		style = "B"
	}
	l.font(style, 10)
	x := marginLeft
	for i, w := range t.widths {
		align, fill := "R", false
		if i > 0 {
			align = "C"
			fill = t.bold
			l.pdf.SetFillColor(t.fill.r, t.fill.g, t.fill.b)
			if fill {
				l.textColor(white)
			}
		}
		l.pdf.SetXY(x, l.y)
		l.pdf.CellFormat(w, rowHeight, l.fit(cells[i], w-2), "", 0, align, fill, 0, "")
		l.textColor(black)
		x += w
	}
	l.y += rowHeight
}

// barcode places the rendered symbol centred under the last section. A
// document without a symbol prints N/A in its place.
func (l *layout) barcode(b document.Barcode) error {
	if len(b.PNG) == 0 {
		l.heading("Barcode", lineHeight)
		l.font("", 10)
		l.pdf.SetXY(marginLeft, l.y)
		l.pdf.CellFormat(contentWidth, lineHeight, numfmt.NotAvailable, "", 0, "C", false, 0, "")
		l.y += lineHeight
		return nil
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	l.pdf.RegisterImageOptionsReader(barcodeImage, opts, bytes.NewReader(b.PNG))
	if err := l.pdf.Error(); err != nil {
		return err
	}
	l.heading("Barcode", barcodeHeight)
	x := marginLeft + (contentWidth-barcodeWidth)/2
	l.pdf.ImageOptions(barcodeImage, x, l.y, barcodeWidth, barcodeHeight, false, opts, 0, "")
	l.y += barcodeHeight
	return l.pdf.Error()
}

func weight(d packaging.Detail) string {
	if !d.Weight().Present() {
		return numfmt.NotAvailable
	}
	return numfmt.Weight(d.Weight().Decimal(), weightUnit)
}

func formatTime(zero bool, formatted string) string {
	if zero {
		return numfmt.NotAvailable
	}
	return formatted
}
