package regxml

import (
	"encoding/xml"

	"github.com/diewo77/go-contracts/internal/models"
)

// D112Namespace is the versioned namespace of the payroll declaration.
const D112Namespace = "mfp:anaf:dgti:d112:declaratie:v1"

type d112Document struct {
	XMLName xml.Name `xml:"DeclaratieD112"`
	Xmlns   string   `xml:"xmlns,attr"`

	Header    d112Header     `xml:"Header"`
	Employees []d112Employee `xml:"Angajat"`
	Totals    d112Totals     `xml:"Totaluri"`
}

type d112Header struct {
	EmployerCUI  string `xml:"AngajatorCUI"`
	EmployerName string `xml:"AngajatorNume,omitempty"`
	Month        int    `xml:"Luna"`
	Year         int    `xml:"An"`
}

type d112Employee struct {
	Name        string `xml:"Nume"`
	CNP         string `xml:"CNP"`
	GrossSalary string `xml:"VenitBrut"`
	DaysWorked  int    `xml:"ZileLucrate"`
	CAS         string `xml:"CAS"`
	CASS        string `xml:"CASS"`
	IncomeTax   string `xml:"Impozit"`
	NetSalary   string `xml:"VenitNet"`
}

type d112Totals struct {
	EmployeeCount int    `xml:"NumarAngajati"`
	TotalGross    string `xml:"TotalVenitBrut"`
	TotalCAS      string `xml:"TotalCAS"`
	TotalCASS     string `xml:"TotalCASS"`
	TotalTax      string `xml:"TotalImpozit"`
	TotalNet      string `xml:"TotalVenitNet"`
	TotalCAM      string `xml:"TotalCAM"`
}

// BuildD112XML serializes a declaration into the payroll dialect. All
// amounts are formatted to two decimal places.
func BuildD112XML(d *models.D112Declaration) (string, error) {
	doc := d112Document{
		Xmlns: D112Namespace,
		Header: d112Header{
			EmployerCUI:  d.EmployerCUI,
			EmployerName: d.EmployerName,
			Month:        d.Month,
			Year:         d.Year,
		},
		Totals: d112Totals{
			EmployeeCount: d.EmployeeCount,
			TotalGross:    Amount(d.TotalGross),
			TotalCAS:      Amount(d.TotalCAS),
			TotalCASS:     Amount(d.TotalCASS),
			TotalTax:      Amount(d.TotalTax),
			TotalNet:      Amount(d.TotalNet),
			TotalCAM:      Amount(d.TotalCAM),
		},
	}
	for _, row := range d.Rows {
		doc.Employees = append(doc.Employees, d112Employee{
			Name:        row.EmployeeName,
			CNP:         row.CNP,
			GrossSalary: Amount(row.GrossSalary),
			DaysWorked:  row.DaysWorked,
			CAS:         Amount(row.CAS),
			CASS:        Amount(row.CASS),
			IncomeTax:   Amount(row.IncomeTax),
			NetSalary:   Amount(row.NetSalary),
		})
	}
	return marshalDocument(doc)
}
