package models

import (
	"time"

	"gorm.io/gorm"
)

// RevisalOperation is one of the labor-registry filing operations.
type RevisalOperation string

const (
	RevisalOpHire           RevisalOperation = "hire"
	RevisalOpSalaryChange   RevisalOperation = "salary_change"
	RevisalOpPositionChange RevisalOperation = "position_change"
	RevisalOpHoursChange    RevisalOperation = "hours_change"
	RevisalOpSuspend        RevisalOperation = "suspend"
	RevisalOpResume         RevisalOperation = "resume"
	RevisalOpTerminate      RevisalOperation = "terminate"
	RevisalOpSecondment     RevisalOperation = "secondment"
	RevisalOpTransfer       RevisalOperation = "transfer"
)

// Valid reports whether op is one of the nine registry operations.
func (op RevisalOperation) Valid() bool {
	switch op {
	case RevisalOpHire, RevisalOpSalaryChange, RevisalOpPositionChange,
		RevisalOpHoursChange, RevisalOpSuspend, RevisalOpResume,
		RevisalOpTerminate, RevisalOpSecondment, RevisalOpTransfer:
		return true
	}
	return false
}

// SubmissionStatus tracks a Revisal filing through its lifecycle.
// A submission stays in (or reverts to) draft until validation passes.
type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusValidated SubmissionStatus = "validated"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusError     SubmissionStatus = "error"
)

// FieldChange records an old/new value pair for modification operations.
type FieldChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Allowance is a salary supplement reported alongside the base salary.
type Allowance struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// RevisalEmployee is the employee identity snapshot carried by a filing.
type RevisalEmployee struct {
	Name           string     `gorm:"size:255" json:"name"`
	CNP            string     `gorm:"size:13" json:"cnp"`
	Nationality    string     `gorm:"size:100;default:'română'" json:"nationality"`
	Address        string     `gorm:"size:500" json:"address"`
	EducationLevel string     `gorm:"size:255" json:"education_level,omitempty"`
	DocumentType   string     `gorm:"size:50" json:"document_type,omitempty"`
	DocumentNumber string     `gorm:"size:50" json:"document_number,omitempty"`
	DocumentExpiry *time.Time `json:"document_expiry,omitempty"`
}

// RevisalContract is the contract-terms snapshot carried by a filing.
type RevisalContract struct {
	Number            string      `gorm:"size:100" json:"number"`
	Date              *time.Time  `json:"date,omitempty"`
	Type              string      `gorm:"size:50" json:"type"` // nedeterminata, determinata, ...
	StartDate         time.Time   `json:"start_date"`
	EndDate           *time.Time  `json:"end_date,omitempty"`
	ProbationDays     int         `json:"probation_days,omitempty"`
	Position          string      `gorm:"size:255" json:"position"`
	CORCode           string      `gorm:"size:6" json:"cor_code"`
	Salary            float64     `gorm:"type:decimal(12,2)" json:"salary"`
	WeeklyHours       float64     `gorm:"type:decimal(5,2)" json:"weekly_hours"`
	WorkLocation      string      `gorm:"size:500" json:"work_location"`
	WorkingConditions string      `gorm:"size:50;default:'normale'" json:"working_conditions"`
	Allowances        []Allowance `gorm:"serializer:json" json:"allowances,omitempty"`
}

// IsFixedTerm reports whether the snapshot describes a fixed-term contract.
func (c *RevisalContract) IsFixedTerm() bool {
	return c.Type == "determinata"
}

// RevisalSubmission is a labor-registry filing derived from a contract.
type RevisalSubmission struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID     uint   `gorm:"index;not null" json:"user_id"`
	EmployeeID string `gorm:"size:36;index" json:"employee_id"`
	ContractID string `gorm:"size:36;index" json:"contract_id"`

	Operation RevisalOperation `gorm:"size:30;not null" json:"operation"`
	Status    SubmissionStatus `gorm:"size:20;default:'draft'" json:"status"`

	Employee RevisalEmployee `gorm:"embedded;embeddedPrefix:emp_" json:"employee"`
	Contract RevisalContract `gorm:"embedded;embeddedPrefix:ctr_" json:"contract"`

	// Changes holds field -> old/new pairs for modification operations
	Changes map[string]FieldChange `gorm:"serializer:json" json:"changes,omitempty"`

	ValidationErrors []string `gorm:"serializer:json" json:"validation_errors,omitempty"`

	XML           string     `gorm:"type:text" json:"xml,omitempty"`
	ReferenceID   string     `gorm:"size:100" json:"reference_id,omitempty"`
	ReceiptNumber string     `gorm:"size:100" json:"receipt_number,omitempty"`
	ErrorMessage  string     `gorm:"size:1000" json:"error_message,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
}

// CanSubmit returns true when the submission has passed validation.
func (s *RevisalSubmission) CanSubmit() bool {
	return s.Status == SubmissionStatusValidated
}
