// Package invoice lays out the paginated PDF invoice document: header,
// address blocks, line-item table with shrink-to-fit text, computed total
// box and footer.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"inventory-request-service/internal/models"
)

// Layout constants (mm, A4 portrait).
const (
	pageMargin       = 20.0
	rowHeight        = 14.0
	footerReserve    = 80.0 // space kept for totals/footer before breaking a row
	totalBoxReserve  = 60.0
	codeColWidth     = 30.0
	qtyColWidth      = 16.0
	priceColWidth    = 26.0
	totalColWidth    = 26.0
	colGutter        = 4.0
	codeBaseFontSize = 11.0
	descBaseFontSize = 12.5
	numFontSize      = 11.0
	minFontSize      = 6.0
	fontStep         = 0.3
)

// Renderer produces invoice PDFs. Seller is the default address block used
// when no distributor resolves for a request. Clock feeds the invoice and
// creation dates; a fixed clock makes output byte-identical for identical
// input.
type Renderer struct {
	Seller models.AddressBlock

	// ShowFromBlock renders the office address a second time as a "From"
	// column next to the delivery block. Off by default: the office block
	// already appears under the company name, and the delivery column
	// then spans the full content width.
	ShowFromBlock bool

	Clock func() time.Time
}

// NewRenderer returns a renderer with the given seller fallback.
func NewRenderer(seller models.AddressBlock) *Renderer {
	return &Renderer{Seller: seller, Clock: time.Now}
}

type addrLine struct {
	text string
	bold bool
}

// Render lays out the document for a completed request. Output is
// all-or-nothing: any drawing failure surfaces as an error and no partial
// bytes are returned. The grand total printed in the total box is the
// running sum of row totals, recomputed here rather than trusted from the
// stored request.
func (r *Renderer) Render(req *models.InventoryRequest, dist *models.DistributorProfile) ([]byte, error) {
	now := r.Clock()

	office := r.Seller
	delivery := r.Seller
	if dist != nil {
		office = dist.Office
		delivery = dist.Delivery
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Both document dates must come from the clock and the font catalog
	// must be emitted in sorted order, or two renders of the same input
	// can differ (wall-clock ModDate, map-ordered /Font dictionary).
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	descColWidth := contentW - (codeColWidth + qtyColWidth + priceColWidth + totalColWidth + 4*colGutter + 5)
	codeX := pageMargin + 5
	descX := codeX + codeColWidth + colGutter
	qtyX := descX + descColWidth + colGutter
	priceX := qtyX + qtyColWidth + colGutter
	totalX := priceX + priceColWidth + colGutter

	textRight := func(x, y float64, s string) {
		pdf.Text(x-pdf.GetStringWidth(s), y, s)
	}
	measure := func(s string, size float64) float64 {
		pdf.SetFontSize(size)
		return pdf.GetStringWidth(s)
	}
	setBodyFont := func() {
		pdf.SetFont("Helvetica", "", numFontSize)
		pdf.SetTextColor(30, 41, 59)
	}

	tableHeader := func(y float64) float64 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFillColor(30, 64, 175)
		pdf.Rect(pageMargin, y, contentW, 7, "F")
		pdf.Text(codeX, y+5, "Code")
		pdf.Text(descX, y+5, "Item Description")
		textRight(qtyX+qtyColWidth-2, y+5, "Qty")
		textRight(priceX+priceColWidth-2, y+5, "Unit Price")
		textRight(totalX+totalColWidth-2, y+5, "Total")
		return y + 9
	}

	pdf.AddPage()
	y := pageMargin + 10

	// Header band: company name left, invoice number right.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 64, 175)
	pdf.Text(pageMargin, y, tr(office.Name))
	pdf.SetFontSize(12)
	textRight(pageW-pageMargin, y, fmt.Sprintf("INVOICE #%s", req.InvoiceNumber))
	y += 2

	// Office address under the company name.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 41, 59)
	for i, line := range office.Lines {
		pdf.Text(pageMargin, y+5+float64(i)*5, tr(line))
	}
	y += 10 + float64(len(office.Lines))*5

	// Invoice date / due date band.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.Text(pageMargin, y, "INVOICE DATE")
	textRight(pageW-pageMargin, y, "DUE DATE")
	y += 4

	due := now.AddDate(0, 0, 30)
	if req.DueDate != nil {
		due = *req.DueDate
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 41, 59)
	pdf.Text(pageMargin, y, now.Format("January 2, 2006"))
	textRight(pageW-pageMargin, y, due.Format("January 2, 2006"))
	y += 10

	// From/To address table.
	var fromLines []addrLine
	if r.ShowFromBlock {
		fromLines = append(fromLines, addrLine{office.Name, true}, addrLine{office.Email, false})
		for _, l := range office.Lines {
			fromLines = append(fromLines, addrLine{l, false})
		}
	}
	toLines := []addrLine{{delivery.Name, true}, {delivery.Email, false}}
	for _, l := range delivery.Lines {
		toLines = append(toLines, addrLine{l, false})
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(30, 64, 175)

	halfW := contentW / 2
	toX := pageMargin + halfW
	if len(fromLines) == 0 {
		// Seller column omitted: the delivery header spans full width.
		pdf.Rect(pageMargin, y, contentW, 6, "F")
		pdf.Text(pageMargin+2, y+4, "To (Delivery Address)")
		toX = pageMargin
	} else {
		pdf.Rect(pageMargin, y, halfW, 6, "F")
		pdf.Rect(pageMargin+halfW, y, halfW, 6, "F")
		pdf.Text(pageMargin+2, y+4, "From (Office Address)")
		pdf.Text(pageMargin+halfW+2, y+4, "To (Delivery Address)")
	}
	y += 7

	maxLines := len(toLines)
	if len(fromLines) > maxLines {
		maxLines = len(fromLines)
	}
	for i := 0; i < maxLines; i++ {
		lineY := y + 5 + float64(i)*6
		if i < len(fromLines) {
			drawAddrLine(pdf, tr, pageMargin+2, lineY, fromLines[i])
		}
		if i < len(toLines) {
			drawAddrLine(pdf, tr, toX+2, lineY, toLines[i])
		}
	}
	y += float64(maxLines)*6 + 2 + 5

	// Line-item table.
	y = tableHeader(y)
	setBodyFont()
	pdf.SetDrawColor(30, 64, 175)

	running := decimal.Zero
	for idx, item := range req.Items {
		if y+rowHeight > pageH-footerReserve {
			pdf.AddPage()
			y = pageMargin
			y = tableHeader(y)
			setBodyFont()
		}

		if idx%2 == 0 {
			pdf.SetFillColor(248, 250, 252)
			pdf.Rect(pageMargin, y, contentW, rowHeight, "F")
		}
		pdf.Line(pageMargin, y, pageMargin+contentW, y)
		pdf.Line(pageMargin, y+rowHeight, pageMargin+contentW, y+rowHeight)
		pdf.Line(pageMargin, y, pageMargin, y+rowHeight)
		pdf.Line(pageMargin+contentW, y, pageMargin+contentW, y+rowHeight)

		baseline := y + 8

		code := tr(item.ProductID)
		size := FitFontSize(code, codeColWidth-2, codeBaseFontSize, minFontSize, fontStep, measure)
		pdf.SetFontSize(size)
		pdf.Text(codeX, baseline, code)

		desc := tr(item.ProductName)
		size = FitFontSize(desc, descColWidth-2, descBaseFontSize, minFontSize, fontStep, measure)
		pdf.SetFontSize(size)
		pdf.Text(descX, baseline, desc)

		pdf.SetFontSize(numFontSize)
		textRight(qtyX+qtyColWidth-2, baseline, fmt.Sprintf("%d", item.Quantity))
		textRight(priceX+priceColWidth-2, baseline, FormatAmount(req.Currency, item.UnitPrice))

		rowTotal := item.TotalPrice
		if !rowTotal.IsPositive() {
			rowTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		textRight(totalX+totalColWidth-2, baseline, FormatAmount(req.Currency, rowTotal))
		running = running.Add(rowTotal)

		y += rowHeight
	}
	y += 10

	if y > pageH-totalBoxReserve {
		pdf.AddPage()
		y = pageMargin
	}

	// Total box: always the computed running sum, so the document's
	// arithmetic is self-consistent even if the stored total drifted.
	final := running
	if !final.IsPositive() {
		final = req.TotalAmount
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(30, 64, 175)
	pdf.SetFillColor(240, 248, 255)
	pdf.Rect(pageW-pageMargin-65, y, 65, 12, "F")
	pdf.Text(pageW-pageMargin-60, y+8, "TOTAL")
	textRight(pageW-pageMargin-5, y+8, FormatAmount(req.Currency, final))
	y += 18

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 116, 139)
	footer := "Thank you for your business!"
	pdf.Text((pageW-pdf.GetStringWidth(footer))/2, y+2, footer)

	if pdf.Err() {
		return nil, fmt.Errorf("invoice %s: pdf generation failed: %w", req.InvoiceNumber, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice %s: pdf output failed: %w", req.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func drawAddrLine(pdf *gofpdf.Fpdf, tr func(string) string, x, y float64, line addrLine) {
	style := ""
	if line.bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.SetTextColor(30, 41, 59)
	pdf.Text(x, y, tr(line.text))
}
