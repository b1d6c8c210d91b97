package services

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/go-contracts/internal/models"
)

func seedActiveContract(t *testing.T, conn *gorm.DB, userID uint, name, cnp string, salary float64) {
	t.Helper()
	c := &models.GeneratedContract{
		ID:         uuid.NewString(),
		UserID:     userID,
		TemplateID: "cim-standard",
		EmployeeID: uuid.NewString(),
		Language:   "ro",
		Status:     models.ContractStatusActive,
		Metadata: models.ContractMetadata{
			EmployeeName: name,
			EmployeeCNP:  cnp,
			Salary:       salary,
			Currency:     "RON",
			WeeklyHours:  40,
			StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := conn.Create(c).Error; err != nil {
		t.Fatal(err)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestD112GenerateTotals(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewD112Service(conn, "RO12345678", "Tehnologii SRL")

	seedActiveContract(t, conn, 1, "Andrei Popescu", validCNP, 5000)
	seedActiveContract(t, conn, 1, "Ioana Marin", "2791463582791", 6000)

	// Contracts that are not active stay out of the declaration.
	draft := &models.GeneratedContract{
		ID:         uuid.NewString(),
		UserID:     1,
		TemplateID: "cim-standard",
		EmployeeID: uuid.NewString(),
		Status:     models.ContractStatusDraft,
		Metadata:   models.ContractMetadata{EmployeeName: "Draft Person", Salary: 9000},
	}
	if err := conn.Create(draft).Error; err != nil {
		t.Fatal(err)
	}

	decl, err := svc.Generate(1, 6, 2025)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if decl.EmployeeCount != 2 {
		t.Fatalf("employee count = %d, want 2", decl.EmployeeCount)
	}
	if decl.Status != models.DeclarationStatusDraft {
		t.Errorf("status = %q, want draft", decl.Status)
	}

	// June 2025 has 21 working days.
	for _, row := range decl.Rows {
		if row.DaysWorked != 21 {
			t.Errorf("days worked = %d, want 21", row.DaysWorked)
		}
	}

	// 5000 gross: CAS 1250, CASS 500, tax 10% of 3250 = 325, net 2925.
	var first models.D112Row
	for _, row := range decl.Rows {
		if row.CNP == validCNP {
			first = row
		}
	}
	if !almostEqual(first.CAS, 1250) || !almostEqual(first.CASS, 500) ||
		!almostEqual(first.IncomeTax, 325) || !almostEqual(first.NetSalary, 2925) {
		t.Errorf("row figures = CAS %.2f CASS %.2f tax %.2f net %.2f", first.CAS, first.CASS, first.IncomeTax, first.NetSalary)
	}

	if !almostEqual(decl.TotalGross, 11000) {
		t.Errorf("total gross = %.2f, want 11000", decl.TotalGross)
	}
	if !almostEqual(decl.TotalCAS, 2750) {
		t.Errorf("total CAS = %.2f, want 2750", decl.TotalCAS)
	}
	if !almostEqual(decl.TotalCASS, 1100) {
		t.Errorf("total CASS = %.2f, want 1100", decl.TotalCASS)
	}
	if !almostEqual(decl.TotalTax, 715) {
		t.Errorf("total tax = %.2f, want 715", decl.TotalTax)
	}
	if !almostEqual(decl.TotalNet, 6435) {
		t.Errorf("total net = %.2f, want 6435", decl.TotalNet)
	}
	if !almostEqual(decl.TotalCAM, 247.50) {
		t.Errorf("total CAM = %.2f, want 247.50", decl.TotalCAM)
	}
}

func TestD112GenerateEmptyMonth(t *testing.T) {
	svc := NewD112Service(setupTestDB(t), "RO12345678", "Tehnologii SRL")

	decl, err := svc.Generate(1, 1, 2025)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if decl.EmployeeCount != 0 || decl.TotalGross != 0 || decl.TotalCAM != 0 {
		t.Errorf("empty month should produce zero totals: %+v", decl)
	}
}

func TestD112GenerateRejectsBadPeriod(t *testing.T) {
	svc := NewD112Service(setupTestDB(t), "RO12345678", "Tehnologii SRL")

	var inputErr *InputError
	if _, err := svc.Generate(1, 13, 2025); !errors.As(err, &inputErr) {
		t.Fatalf("month 13 should be rejected, got %v", err)
	}
	if _, err := svc.Generate(1, 0, 2025); !errors.As(err, &inputErr) {
		t.Fatalf("month 0 should be rejected, got %v", err)
	}
}

func TestD112Submit(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewD112Service(conn, "RO12345678", "Tehnologii SRL")
	seedActiveContract(t, conn, 1, "Andrei Popescu", validCNP, 5000)

	decl, err := svc.Generate(1, 6, 2025)
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Submit(decl.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Status != models.DeclarationStatusSubmitted {
		t.Errorf("status = %q, want submitted", got.Status)
	}
	if got.SubmittedAt == nil {
		t.Error("submitted timestamp should be set")
	}
	if !strings.Contains(got.XML, "<DeclaratieD112") {
		t.Errorf("xml missing declaration root element:\n%s", got.XML)
	}
	if !strings.Contains(got.XML, validCNP) {
		t.Error("xml should carry the employee CNP")
	}

	// A second submit is rejected.
	if _, err := svc.Submit(decl.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("re-submitting should fail with ErrInvalidState, got %v", err)
	}
}
