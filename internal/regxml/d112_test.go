package regxml

import (
	"strings"
	"testing"

	"github.com/diewo77/go-contracts/internal/models"
)

func TestBuildD112XML(t *testing.T) {
	decl := &models.D112Declaration{
		ID:           "decl-1",
		Month:        6,
		Year:         2025,
		EmployerCUI:  "RO12345678",
		EmployerName: "Tehnologii SRL",
		Rows: []models.D112Row{
			{
				EmployeeName: "Andrei Popescu",
				CNP:          "1980518123451",
				GrossSalary:  5000,
				DaysWorked:   21,
				CAS:          1250,
				CASS:         500,
				IncomeTax:    325,
				NetSalary:    2925,
			},
		},
		EmployeeCount: 1,
		TotalGross:    5000,
		TotalCAS:      1250,
		TotalCASS:     500,
		TotalTax:      325,
		TotalNet:      2925,
		TotalCAM:      112.50,
	}

	out, err := BuildD112XML(decl)
	if err != nil {
		t.Fatalf("BuildD112XML: %v", err)
	}

	for _, want := range []string{
		`<DeclaratieD112 xmlns="` + D112Namespace + `">`,
		"<AngajatorCUI>RO12345678</AngajatorCUI>",
		"<Luna>6</Luna>",
		"<An>2025</An>",
		"<VenitBrut>5000.00</VenitBrut>",
		"<ZileLucrate>21</ZileLucrate>",
		"<CAS>1250.00</CAS>",
		"<CASS>500.00</CASS>",
		"<Impozit>325.00</Impozit>",
		"<VenitNet>2925.00</VenitNet>",
		"<NumarAngajati>1</NumarAngajati>",
		"<TotalCAM>112.50</TotalCAM>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{6500, "6500.00"},
		{247.5, "247.50"},
		{0.005, "0.01"},
	}
	for _, tt := range tests {
		if got := Amount(tt.in); got != tt.want {
			t.Errorf("Amount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
