package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/go-contracts/internal/models"
	"github.com/diewo77/go-contracts/internal/regxml"
)

// D112Service builds the monthly payroll declaration from the active
// contracts of a period and renders it to the filing XML dialect.
type D112Service struct {
	DB           *gorm.DB
	EmployerCUI  string
	EmployerName string
}

func NewD112Service(db *gorm.DB, employerCUI, employerName string) *D112Service {
	return &D112Service{DB: db, EmployerCUI: employerCUI, EmployerName: employerName}
}

// round2 rounds a RON amount to whole bani.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Generate computes one declaration row per active contract and the
// employer-level totals. CAS and CASS come off the gross, income tax off the
// remainder, and CAM is owed by the employer on top of the gross.
func (s *D112Service) Generate(userID uint, month int, year int) (*models.D112Declaration, error) {
	if month < 1 || month > 12 {
		return nil, &InputError{Field: "month", Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if year < 2000 {
		return nil, &InputError{Field: "year", Reason: fmt.Sprintf("year %d out of range", year)}
	}

	var contracts []models.GeneratedContract
	err := s.DB.Where("user_id = ? AND status = ?", userID, models.ContractStatusActive).
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}

	workDays := WorkingDays(year, time.Month(month))

	decl := &models.D112Declaration{
		ID:           uuid.NewString(),
		UserID:       userID,
		Month:        month,
		Year:         year,
		EmployerCUI:  s.EmployerCUI,
		EmployerName: s.EmployerName,
		Status:       models.DeclarationStatusDraft,
	}

	for _, c := range contracts {
		gross := c.Metadata.Salary
		cas := round2(gross * CASRate)
		cass := round2(gross * CASSRate)
		tax := round2((gross - cas - cass) * IncomeTaxRate)
		net := round2(gross - cas - cass - tax)

		decl.Rows = append(decl.Rows, models.D112Row{
			EmployeeID:   c.EmployeeID,
			EmployeeName: c.Metadata.EmployeeName,
			CNP:          c.Metadata.EmployeeCNP,
			GrossSalary:  gross,
			DaysWorked:   workDays,
			CAS:          cas,
			CASS:         cass,
			IncomeTax:    tax,
			NetSalary:    net,
		})

		decl.TotalGross = round2(decl.TotalGross + gross)
		decl.TotalCAS = round2(decl.TotalCAS + cas)
		decl.TotalCASS = round2(decl.TotalCASS + cass)
		decl.TotalTax = round2(decl.TotalTax + tax)
		decl.TotalNet = round2(decl.TotalNet + net)
	}
	decl.EmployeeCount = len(decl.Rows)
	decl.TotalCAM = round2(decl.TotalGross * CAMRate)

	if err := s.DB.Create(decl).Error; err != nil {
		return nil, err
	}
	return decl, nil
}

// Get loads a declaration by id.
func (s *D112Service) Get(id string) (*models.D112Declaration, error) {
	var decl models.D112Declaration
	err := s.DB.First(&decl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeclarationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &decl, nil
}

// Submit renders the declaration XML and marks it submitted. A draft is
// promoted through validated on the way out; the declaration figures are
// computed, not user-entered, so there is no separate rule check yet.
func (s *D112Service) Submit(id string) (*models.D112Declaration, error) {
	decl, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if decl.Status == models.DeclarationStatusSubmitted {
		return nil, ErrInvalidState
	}
	if decl.Status == models.DeclarationStatusDraft {
		decl.Status = models.DeclarationStatusValidated
	}

	now := time.Now()
	xmlDoc, err := regxml.BuildD112XML(decl)
	if err != nil {
		return nil, err
	}
	decl.XML = xmlDoc
	decl.Status = models.DeclarationStatusSubmitted
	decl.SubmittedAt = &now

	if err := s.DB.Save(decl).Error; err != nil {
		return nil, err
	}
	return decl, nil
}
