package infra

// Receipt generation using go-pdf/fpdf.
// A receipt is a small receipt-paper page with the business name and three
// plain text lines: customer, total and date. Compression is disabled so the
// text stays readable in the raw document stream.

import (
	"bytes"
	"fmt"

	"inventario/internal/model"

	"github.com/go-pdf/fpdf"
)

// PDFReceiptRenderer renders receipts in memory. It keeps no reference to
// previous receipts; every call builds a fresh document.
type PDFReceiptRenderer struct {
	businessName string
}

func NewPDFReceiptRenderer(businessName string) *PDFReceiptRenderer {
	return &PDFReceiptRenderer{businessName: businessName}
}

// Render returns the PDF bytes for r.
func (p *PDFReceiptRenderer) Render(r model.Receipt) ([]byte, error) {
	// 80mm wide, like thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: 100},
	})
	pdf.SetCompression(false)
	pdf.SetMargins(5, 5, 5)
	pdf.SetAutoPageBreak(false, 5)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 10

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, tr(p.businessName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.Line(5, pdf.GetY(), pageW-5, pdf.GetY())
	pdf.Ln(3)

	// ── Body ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, tr("Cliente: "+r.CustomerName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Total: $"+r.Total.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Fecha: "+r.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
