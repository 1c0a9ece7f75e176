package printer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/doctrack-io/doctrackgo/internal/models"
)

// GenerateRoutingSlip renders a single-page A5 routing slip for a
// document: QR of the tracking code plus the routing summary. The slip
// is stapled to the physical document so departments can scan it on
// arrival.
func GenerateRoutingSlip(doc *models.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "DOCUMENT ROUTING SLIP", "", 1, "C", false, 0, "")

	// QR encodes the bare tracking code; scanners resolve it against
	// the lowercase-tolerant lookup endpoint.
	qrPng, err := qrcode.Encode(doc.DocUniqueID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encoding QR for %s: %w", doc.DocUniqueID, err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr-"+doc.DocUniqueID, opts, bytes.NewReader(qrPng))
	pageW, _ := pdf.GetPageSize()
	qrSize := 40.0
	pdf.ImageOptions("qr-"+doc.DocUniqueID, (pageW-qrSize)/2, 26, qrSize, qrSize, false, opts, 0, "")

	pdf.SetY(70)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, doc.DocUniqueID, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Ln(4)
	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	row("Title:", doc.Title)
	row("Type:", doc.DocType)
	row("Current location:", doc.Department)
	row("Final destination:", doc.FinalDestination)
	row("Status:", doc.Status)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering routing slip: %w", err)
	}
	return buf.Bytes(), nil
}
