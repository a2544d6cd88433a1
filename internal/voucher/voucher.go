// Package voucher renders the PDF travel voucher of a confirmed booking.
package voucher

import (
	"bytes"
	"fmt"
	"musaferBox/internal/models"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Render returns the voucher document for b, stamped with issuedAt.
func Render(b *models.Booking, issuedAt time.Time) ([]byte, error) {
	pdf := layout(b, issuedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("voucher: render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func layout(b *models.Booking, issuedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle("musaferBox voucher "+b.Reference, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-22)
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, "Present this voucher to the agency on the day of travel.", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFillColor(14, 63, 92)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "musaferBox", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Travel voucher", "", 1, "L", false, 0, "")

	pdf.SetY(38)
	pdf.SetTextColor(0, 0, 0)

	section := func(title string) {
		pdf.SetFillColor(14, 63, 92)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	section("Booking")
	row("Reference", b.Reference)
	row("Status", b.Status)
	row("Issued", issuedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	section("Trip")
	row("Offer", b.OfferTitle)
	row("Agency", b.AgencyName)
	row("Travel date", b.TravelDate.Format("02 Jan 2006 (Mon)"))
	row("Travelers", strconv.Itoa(b.Travelers))
	pdf.Ln(4)

	section("Contact")
	row("Name", b.ContactName)
	row("Phone", b.ContactPhone)
	if b.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, "Notes", "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.MultiCell(115, 6, tr(b.Notes), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFillColor(240, 196, 25)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("%.2f", b.TotalPrice), "", 1, "L", true, 0, "")

	return pdf
}
