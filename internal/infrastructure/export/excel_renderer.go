package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// ExcelRenderer renders a single proposal workbook and the bulk proposal
// register used by the dashboard export.

type ExcelRenderer struct{}

var _ interfaces.IProposalRenderer = (*ExcelRenderer)(nil)
var _ interfaces.IRegisterRenderer = (*ExcelRenderer)(nil)

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) Format() entities.FileFormat {
	return entities.FileFormatExcel
}

func (r *ExcelRenderer) Render(doc interfaces.ProposalDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Proposal"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Proposal: %s", doc.Name))
	f.SetCellStyle(sheet, "A1", "A1", bold)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Client: %s", doc.Client))
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Apartment Type: %s", doc.ApartmentType))
	f.SetCellValue(sheet, "A4", fmt.Sprintf("Status: %s", doc.Status))
	f.SetCellValue(sheet, "A5", fmt.Sprintf("Total Price: AED %s", doc.TotalPrice.StringFixed(2)))

	headers := []string{"Product", "SKU", "Quantity", "Price", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 7)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, bold)
	}

	for i, line := range doc.Lines {
		row := 8 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.ProductSKU)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.UnitPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.LineTotal.InexactFloat64())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var registerHeaders = []string{"ID", "Name", "Client", "Apartment Type", "Status", "Total Price", "Discount", "Created Date"}

func (r *ExcelRenderer) RenderRegister(proposals []entities.Proposal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Proposals"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	for i, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, bold)
	}

	for i, p := range proposals {
		row := 2 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.ClientName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.ApartmentTypeName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(p.Status))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.TotalPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Discount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
