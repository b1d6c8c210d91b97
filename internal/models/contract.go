package models

import (
	"time"

	"gorm.io/gorm"
)

// ContractStatus represents the lifecycle state of a generated contract.
type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusPendingSignature ContractStatus = "pending_signature"
	ContractStatusSigned           ContractStatus = "signed"
	ContractStatusActive           ContractStatus = "active"
)

// GeneratedContract is a contract rendered from a catalog template.
// Signature events are the only thing that mutates it after generation.
type GeneratedContract struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UserID is the owner of this contract (for multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`

	TemplateID string `gorm:"size:100;index;not null" json:"template_id"`
	EmployeeID string `gorm:"size:36;index;not null" json:"employee_id"`
	Language   string `gorm:"size:5;default:'ro'" json:"language"`

	// Rendered documents, both derived from the same clause list
	BodyText string `gorm:"type:text" json:"body_text"`
	BodyHTML string `gorm:"type:text" json:"body_html"`

	Metadata ContractMetadata `gorm:"embedded;embeddedPrefix:meta_" json:"metadata"`

	Clauses    []GeneratedClause  `gorm:"foreignKey:ContractID" json:"clauses,omitempty"`
	Signatures []SignatureRequest `gorm:"foreignKey:ContractID" json:"signatures,omitempty"`

	Status      ContractStatus `gorm:"size:30;default:'draft'" json:"status"`
	ValidatedAt *time.Time     `json:"validated_at,omitempty"`
	SignedAt    *time.Time     `json:"signed_at,omitempty"`
}

// IsDraft returns true if the contract has not entered the signature flow.
func (c *GeneratedContract) IsDraft() bool {
	return c.Status == ContractStatusDraft
}

// IsSigned returns true once every required signature has been recorded.
func (c *GeneratedContract) IsSigned() bool {
	return c.Status == ContractStatusSigned || c.Status == ContractStatusActive
}

// CanEdit returns true while the contract can still be regenerated.
func (c *GeneratedContract) CanEdit() bool {
	return c.Status == ContractStatusDraft
}

// ContractMetadata is the denormalized fact snapshot the contract was
// rendered from. Validation reads from here, not from the original facts.
type ContractMetadata struct {
	EmployerName           string `gorm:"size:255" json:"employer_name"`
	EmployerCUI            string `gorm:"size:20" json:"employer_cui"`
	EmployerAddress        string `gorm:"size:500" json:"employer_address"`
	EmployerRepresentative string `gorm:"size:255" json:"employer_representative"`

	EmployeeName    string `gorm:"size:255" json:"employee_name"`
	EmployeeCNP     string `gorm:"size:13" json:"employee_cnp"`
	EmployeeAddress string `gorm:"size:500" json:"employee_address"`

	Position   string `gorm:"size:255" json:"position"`
	Department string `gorm:"size:255" json:"department,omitempty"`
	CORCode    string `gorm:"size:6" json:"cor_code"`

	Salary      float64 `gorm:"type:decimal(12,2)" json:"salary"`
	Currency    string  `gorm:"size:3;default:'RON'" json:"currency"`
	WeeklyHours int     `gorm:"default:40" json:"weekly_hours"`

	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	ProbationDays    int        `json:"probation_days,omitempty"`
	ProbationEndDate *time.Time `json:"probation_end_date,omitempty"`

	WorkLocation string `gorm:"size:500" json:"work_location"`
	WorkSchedule string `gorm:"size:255" json:"work_schedule,omitempty"`

	// Non-compete terms; zero months means no non-compete clause
	NonCompeteMonths       int     `json:"non_compete_months,omitempty"`
	NonCompeteScope        string  `gorm:"size:500" json:"non_compete_scope,omitempty"`
	NonCompeteCompensation float64 `gorm:"type:decimal(12,2)" json:"non_compete_compensation,omitempty"`
	NonCompeteActivities   string  `gorm:"size:1000" json:"non_compete_activities,omitempty"`

	// Telework terms; zero days per week means on-site work
	TeleworkDaysPerWeek int     `json:"telework_days_per_week,omitempty"`
	TeleworkEquipment   string  `gorm:"size:1000" json:"telework_equipment,omitempty"`
	TeleworkAllowance   float64 `gorm:"type:decimal(12,2)" json:"telework_allowance,omitempty"`
	TeleworkSchedule    string  `gorm:"size:255" json:"telework_schedule,omitempty"`
}

// GeneratedClause is the rendered result of one template clause. Excluded
// conditional clauses stay in the list with Included=false so callers can
// audit what was left out.
type GeneratedClause struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ContractID string `gorm:"size:36;index;not null" json:"contract_id"`

	ClauseID string `gorm:"size:100;not null" json:"clause_id"`
	Title    string `gorm:"size:500" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	Included bool   `json:"included"`
	Position int    `gorm:"default:0" json:"position"`

	// Variables actually substituted during rendering, name -> value
	Variables map[string]string `gorm:"serializer:json" json:"variables,omitempty"`
}
