package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

func sampleDocument() interfaces.ProposalDocument {
	return interfaces.ProposalDocument{
		ID:            1,
		Name:          "Apartment 42 refit",
		ApartmentType: "T2",
		Client:        "Acme Interiors",
		Status:        "DRAFT",
		Discount:      decimal.NewFromInt(10),
		TotalPrice:    decimal.RequireFromString("225.00"),
		Lines: []interfaces.ProposalDocumentLine{
			{ProductName: "Sofa", ProductSKU: "SOFA-101", Quantity: 2,
				UnitPrice: decimal.RequireFromString("100.00"),
				LineTotal: decimal.RequireFromString("200.00")},
			{ProductName: "Lamp", ProductSKU: "LAMP-102", Quantity: 1,
				UnitPrice: decimal.RequireFromString("50.00"),
				LineTotal: decimal.RequireFromString("50.00")},
		},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	r := NewPDFRenderer()
	if r.Format() != entities.FileFormatPDF {
		t.Fatalf("unexpected format: %s", r.Format())
	}

	data, err := r.Render(sampleDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected pdf magic, got %q", data[:8])
	}
}

func TestExcelRenderer_Render(t *testing.T) {
	r := NewExcelRenderer()
	if r.Format() != entities.FileFormatExcel {
		t.Fatalf("unexpected format: %s", r.Format())
	}

	data, err := r.Render(sampleDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Proposal", "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Proposal: Apartment 42 refit" {
		t.Fatalf("unexpected title: %q", title)
	}
	firstProduct, _ := f.GetCellValue("Proposal", "A8")
	if firstProduct != "Sofa" {
		t.Fatalf("unexpected first row: %q", firstProduct)
	}
}

func TestExcelRenderer_RenderRegister(t *testing.T) {
	r := NewExcelRenderer()
	proposals := []entities.Proposal{
		{
			ID:                1,
			Name:              "Apartment 42 refit",
			ClientName:        "Acme Interiors",
			ApartmentTypeName: "T2",
			Status:            entities.ProposalStatusApproved,
			TotalPrice:        decimal.RequireFromString("225.00"),
			Discount:          decimal.NewFromInt(10),
			CreatedAt:         time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := r.RenderRegister(proposals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Proposals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][4] != "Status" {
		t.Fatalf("unexpected headers: %v", rows[0])
	}
	if rows[1][1] != "Apartment 42 refit" || rows[1][4] != "APPROVED" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestFileStore_Save(t *testing.T) {
	t.Setenv("EXPORT_PATH", t.TempDir())
	s := NewFileStore()

	path, err := s.Save("proposal_1_test.pdf", []byte("%PDF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatalf("expected stored path")
	}
}
