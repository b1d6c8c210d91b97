package models

import "time"

// DeclarationStatus tracks a D112 declaration through its lifecycle.
type DeclarationStatus string

const (
	DeclarationStatusDraft     DeclarationStatus = "draft"
	DeclarationStatusValidated DeclarationStatus = "validated"
	DeclarationStatusSubmitted DeclarationStatus = "submitted"
)

// D112Row is one employee's contribution line in a monthly declaration.
type D112Row struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	CNP          string  `json:"cnp"`
	GrossSalary  float64 `json:"gross_salary"`
	DaysWorked   int     `json:"days_worked"`
	CAS          float64 `json:"cas"`
	CASS         float64 `json:"cass"`
	IncomeTax    float64 `json:"income_tax"`
	NetSalary    float64 `json:"net_salary"`
}

// D112Declaration is the monthly payroll tax declaration aggregated over an
// employer's active contracts.
type D112Declaration struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Month int `gorm:"not null" json:"month"`
	Year  int `gorm:"not null" json:"year"`

	EmployerCUI  string `gorm:"size:20;not null" json:"employer_cui"`
	EmployerName string `gorm:"size:255" json:"employer_name"`

	Rows []D112Row `gorm:"serializer:json" json:"rows"`

	EmployeeCount int     `json:"employee_count"`
	TotalGross    float64 `gorm:"type:decimal(14,2)" json:"total_gross"`
	TotalCAS      float64 `gorm:"type:decimal(14,2)" json:"total_cas"`
	TotalCASS     float64 `gorm:"type:decimal(14,2)" json:"total_cass"`
	TotalTax      float64 `gorm:"type:decimal(14,2)" json:"total_tax"`
	TotalNet      float64 `gorm:"type:decimal(14,2)" json:"total_net"`
	TotalCAM      float64 `gorm:"type:decimal(14,2)" json:"total_cam"`

	Status      DeclarationStatus `gorm:"size:20;default:'draft'" json:"status"`
	XML         string            `gorm:"type:text" json:"xml,omitempty"`
	SubmittedAt *time.Time        `json:"submitted_at,omitempty"`
}

// IsSubmitted returns true once the declaration has been filed.
func (d *D112Declaration) IsSubmitted() bool {
	return d.Status == DeclarationStatusSubmitted
}
