package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/go-contracts/internal/models"
	"github.com/diewo77/go-contracts/internal/regxml"
	"github.com/diewo77/go-contracts/validation"
)

// RevisalService validates and files labor-registry submissions. An empty
// Endpoint means local mock mode: submissions get a synthesized receipt and
// stay pending instead of being transmitted.
type RevisalService struct {
	DB           *gorm.DB
	EmployerCUI  string
	EmployerName string
	Endpoint     string
	HTTP         *http.Client
}

func NewRevisalService(db *gorm.DB, employerCUI, employerName, endpoint string) *RevisalService {
	return &RevisalService{
		DB:           db,
		EmployerCUI:  employerCUI,
		EmployerName: employerName,
		Endpoint:     endpoint,
		HTTP:         &http.Client{Timeout: 30 * time.Second},
	}
}

// RevisalInput carries the snapshots a filing is created from. They are
// stored verbatim; nothing is validated at creation time.
type RevisalInput struct {
	EmployeeID string
	ContractID string
	Operation  models.RevisalOperation
	Employee   models.RevisalEmployee
	Contract   models.RevisalContract
	Changes    map[string]models.FieldChange
}

// Create stores a new draft submission.
func (s *RevisalService) Create(userID uint, in RevisalInput) (*models.RevisalSubmission, error) {
	if !in.Operation.Valid() {
		return nil, &InputError{Field: "operation", Reason: fmt.Sprintf("unknown operation %q", in.Operation)}
	}
	sub := &models.RevisalSubmission{
		ID:         uuid.NewString(),
		UserID:     userID,
		EmployeeID: in.EmployeeID,
		ContractID: in.ContractID,
		Operation:  in.Operation,
		Status:     models.SubmissionStatusDraft,
		Employee:   in.Employee,
		Contract:   in.Contract,
		Changes:    in.Changes,
	}
	if sub.Employee.Nationality == "" {
		sub.Employee.Nationality = "română"
	}
	if sub.Contract.WorkingConditions == "" {
		sub.Contract.WorkingConditions = "normale"
	}
	if err := s.DB.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Get loads a submission by id.
func (s *RevisalService) Get(id string) (*models.RevisalSubmission, error) {
	var sub models.RevisalSubmission
	err := s.DB.First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Validate runs every registry rule over a submission and persists the
// outcome: validated on success, back to draft (with the error list) on any
// violation. It is idempotent and may be re-run after correcting data.
func (s *RevisalService) Validate(id string) (*models.RevisalSubmission, ValidationResult, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, ValidationResult{}, err
	}

	res := s.check(sub, time.Now())

	sub.ValidationErrors = res.Errors
	if res.Valid {
		sub.Status = models.SubmissionStatusValidated
	} else {
		sub.Status = models.SubmissionStatusDraft
	}
	if err := s.DB.Save(sub).Error; err != nil {
		return nil, res, err
	}
	return sub, res, nil
}

// check applies the registry rules without touching the database.
func (s *RevisalService) check(sub *models.RevisalSubmission, now time.Time) ValidationResult {
	var res ValidationResult
	emp, ctr := sub.Employee, sub.Contract

	if !validation.ValidateCNP(emp.CNP) {
		res.addError("employee CNP %q fails the checksum validation", emp.CNP)
	}
	if !validation.ValidateCORCode(ctr.CORCode) {
		res.addError("occupation code %q is not a valid 6-digit COR code", ctr.CORCode)
	}

	// Minimum wage is pro-rated by the fraction of a full week worked.
	if ctr.WeeklyHours > 0 {
		floor := MinimumGrossSalary * ctr.WeeklyHours / StandardWeeklyHours
		if ctr.Salary < floor {
			res.addError("salary %.2f is below the pro-rated minimum wage of %.2f RON for %.1f weekly hours", ctr.Salary, floor, ctr.WeeklyHours)
		}
	} else if ctr.Salary < MinimumGrossSalary {
		res.addError("salary %.2f is below the minimum gross salary of %.2f RON", ctr.Salary, MinimumGrossSalary)
	}

	if ctr.IsFixedTerm() {
		if ctr.EndDate == nil {
			res.addError("fixed-term contract is missing end date")
		} else if months := WholeMonthsBetween(ctr.StartDate, *ctr.EndDate); months > FixedTermMaxMonths {
			res.addError("fixed-term duration of %d months exceeds the %d month maximum", months, FixedTermMaxMonths)
		}
	}

	// The registry applies the flat ceiling, with no management-role split.
	if ctr.ProbationDays > ManagementProbationCeiling {
		res.addError("probation period of %d days exceeds the legal maximum of %d calendar days", ctr.ProbationDays, ManagementProbationCeiling)
	}
	if ctr.WeeklyHours > MaxWeeklyHours {
		res.addError("weekly hours %.1f exceed the legal maximum of %d", ctr.WeeklyHours, MaxWeeklyHours)
	}

	if emp.DocumentExpiry != nil && emp.DocumentExpiry.Before(now) {
		res.addWarning("identity document expired on %s", emp.DocumentExpiry.Format("2006-01-02"))
	}

	switch sub.Operation {
	case models.RevisalOpHire:
		if ctr.Number == "" {
			res.addError("hire operation requires a contract number")
		}
	case models.RevisalOpSalaryChange:
		ch, ok := sub.Changes["salary"]
		if !ok || ch.Old == "" || ch.New == "" {
			res.addError("salary change operation requires old and new salary in the changes map")
		}
	}

	res.finish()
	return res
}

// Submit renders the XML and files a validated submission. With an endpoint
// configured the filing is transmitted and the returned receipt recorded;
// a transmission failure parks the submission in the recoverable error
// state. Without an endpoint a local reference and receipt are synthesized
// and the submission stays pending.
func (s *RevisalService) Submit(ctx context.Context, id string) (*models.RevisalSubmission, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !sub.CanSubmit() {
		return nil, ErrInvalidState
	}

	now := time.Now()
	xmlDoc, err := regxml.BuildRevisalXML(sub, s.EmployerCUI, s.EmployerName, now)
	if err != nil {
		return nil, err
	}
	sub.XML = xmlDoc
	sub.SubmittedAt = &now

	if s.Endpoint == "" {
		sub.Status = models.SubmissionStatusPending
		sub.ReferenceID = "LOCAL-" + uuid.NewString()
		sub.ReceiptNumber = fmt.Sprintf("REG-%s-%s", now.Format("20060102"), sub.ID[:8])
	} else {
		ref, receipt, err := s.transmit(ctx, xmlDoc)
		if err != nil {
			sub.Status = models.SubmissionStatusError
			sub.ErrorMessage = err.Error()
		} else {
			sub.Status = models.SubmissionStatusSubmitted
			sub.ReferenceID = ref
			sub.ReceiptNumber = receipt
			sub.ErrorMessage = ""
		}
	}

	if err := s.DB.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

type revisalReceipt struct {
	ReferenceID   string `json:"reference_id"`
	ReceiptNumber string `json:"receipt_number"`
}

func (s *RevisalService) transmit(ctx context.Context, xmlDoc string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader([]byte(xmlDoc)))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/xml")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("filing endpoint returned status %d", resp.StatusCode)
	}
	var out revisalReceipt
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", err
	}
	return out.ReferenceID, out.ReceiptNumber, nil
}
