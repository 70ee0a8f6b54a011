package pdf

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// A4 portrait, millimetres.
const (
	pageWidth     = 210.0
	marginLeft    = 20.0
	marginRight   = 20.0
	contentWidth  = pageWidth - marginLeft - marginRight
	headerBottom  = 60.0
	contentBottom = 270.0
	footerY       = 280.0

	lineHeight = 6.0
	rowHeight  = 7.0
	sectionGap = 8.0

	headingHeight = lineHeight + 1
)

type rgb struct{ r, g, b int }

var (
	headFill   = rgb{41, 128, 185}
	totalsFill = rgb{255, 87, 51}
	white      = rgb{255, 255, 255}
	black      = rgb{0, 0, 0}
	grey       = rgb{120, 120, 120}
)

// layout is the running cursor over the document. Every section starts at
// y, the measured end of the previous one, and moves it forward.
type layout struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (l *layout) newPage() {
	l.pdf.AddPage()
	l.y = headerBottom
}

// ensure breaks the page when h millimetres do not fit below the cursor.
// It reports whether a break happened.
func (l *layout) ensure(h float64) bool {
	if l.y+h <= contentBottom {
		return false
	}
	l.newPage()
	return true
}

func (l *layout) gap() {
	l.y += sectionGap
}

func (l *layout) font(style string, size float64) {
	l.pdf.SetFont("Helvetica", style, size)
}

func (l *layout) textColor(c rgb) {
	l.pdf.SetTextColor(c.r, c.g, c.b)
}

// heading prints a bold section title.
// heading keeps the title on the same page as the first body of height
// body that follows it.
func (l *layout) heading(title string, body float64) {
	l.ensure(headingHeight + body)
	l.font("B", 11)
	l.textColor(black)
	l.pdf.SetXY(marginLeft, l.y)
	l.pdf.CellFormat(contentWidth, lineHeight, l.tr(title), "", 0, "L", false, 0, "")
	l.y += headingHeight
}

// centered prints one line across the content width.
func (l *layout) centered(text, style string, size float64) {
	l.font(style, size)
	h := size * 0.5
	l.ensure(h)
	l.pdf.SetXY(marginLeft, l.y)
	l.pdf.CellFormat(contentWidth, h, l.tr(text), "", 0, "C", false, 0, "")
	l.y += h + 2
}

// pairs prints "label: value" lines in one or two columns. The cursor ends
// below the taller column.
func (l *layout) pairs(left, right [][2]string) {
	l.font("", 10)
	l.textColor(black)
	rows := max(len(left), len(right))
	colWidth := contentWidth / 2

	for i := 0; i < rows; i++ {
		l.ensure(lineHeight)
		if i < len(left) {
			l.pair(marginLeft, colWidth, left[i])
		}
		if i < len(right) {
			l.pair(marginLeft+colWidth, colWidth, right[i])
		}
		l.y += lineHeight
	}
}

func (l *layout) pair(x, w float64, kv [2]string) {
	l.pdf.SetXY(x, l.y)
	l.pdf.CellFormat(w, lineHeight, l.fit(kv[0]+": "+kv[1], w-2), "", 0, "L", false, 0, "")
}

// table is a bordered grid with a filled header row.
type table struct {
	headers []string
	widths  []float64
	fill    rgb
	bold    bool
}

func newTable(fill rgb, columns ...column) table {
	t := table{fill: fill}
	total := 0.0
	for _, c := range columns {
		total += c.weight
	}
	for _, c := range columns {
		t.headers = append(t.headers, c.title)
		t.widths = append(t.widths, contentWidth*c.weight/total)
	}
	return t
}

type column struct {
	title  string
	weight float64
}

// draw lays the rows out below the cursor. When a row does not fit, the
// page is broken and the header row is repeated before continuing.
func (l *layout) draw(t table, rows [][]string) {
	l.ensure(rowHeight * 2)
	l.tableHeader(t)

	for _, row := range rows {
		if l.ensure(rowHeight) {
			l.tableHeader(t)
		}
		style := ""
		if t.bold {
			style = "B"
		}
		l.font(style, 9)
		l.textColor(black)
		x := marginLeft
		for i, w := range t.widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			l.pdf.SetXY(x, l.y)
			l.pdf.CellFormat(w, rowHeight, l.fit(cell, w-2), "1", 0, "C", false, 0, "")
			x += w
		}
		l.y += rowHeight
	}
}

func (l *layout) tableHeader(t table) {
	l.font("B", 10)
	l.textColor(white)
	l.pdf.SetFillColor(t.fill.r, t.fill.g, t.fill.b)
	x := marginLeft
	for i, w := range t.widths {
		l.pdf.SetXY(x, l.y)
		l.pdf.CellFormat(w, rowHeight, l.fit(t.headers[i], w-2), "1", 0, "C", true, 0, "")
		x += w
	}
	l.y += rowHeight
	l.textColor(black)
}

// fit translates s to the font encoding and trims it to width w.
func (l *layout) fit(s string, w float64) string {
	text := l.tr(s)
	if l.pdf.GetStringWidth(text) <= w {
		return text
	}
	// The translated text is single-byte encoded, so it is cut per byte.
	const ellipsis = "..."
	n := len(text)
	for n > 0 && l.pdf.GetStringWidth(text[:n]+ellipsis) > w {
		n--
	}
	return strings.TrimRight(text[:n], " ") + ellipsis
}
