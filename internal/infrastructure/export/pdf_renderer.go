package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// PDFRenderer renders a proposal document as a single-table PDF: a title
// block with the proposal details followed by one row per line item.

type PDFRenderer struct{}

var _ interfaces.IProposalRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Format() entities.FileFormat {
	return entities.FileFormatPDF
}

func (r *PDFRenderer) Render(doc interfaces.ProposalDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("Proposal: %s", doc.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Client: %s", doc.Client), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Apartment Type: %s", doc.ApartmentType), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Status: %s", doc.Status), "", 1, "L", false, 0, "")
	if doc.Discount.IsPositive() {
		pdf.CellFormat(0, 8, fmt.Sprintf("Discount: %s%%", doc.Discount), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Price: AED %s", doc.TotalPrice.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(70, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "SKU", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range doc.Lines {
		pdf.CellFormat(70, 8, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, line.ProductSKU, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, line.LineTotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
