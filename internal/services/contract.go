package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/go-contracts/internal/catalog"
	"github.com/diewo77/go-contracts/internal/document"
	"github.com/diewo77/go-contracts/internal/models"
	"github.com/diewo77/go-contracts/internal/render"
	"github.com/diewo77/go-contracts/validation"
)

// ContractService generates contracts from catalog templates and runs the
// statutory validation over generated contracts.
//
// Concurrent callers must serialize mutations to the same contract id; the
// service performs no locking of its own.
type ContractService struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func NewContractService(db *gorm.DB, cat *catalog.Catalog) *ContractService {
	return &ContractService{DB: db, Catalog: cat}
}

// Generate assembles a contract from a template and the supplied facts,
// renders both document forms and persists the result with status draft.
func (s *ContractService) Generate(userID uint, templateID, employeeID string, facts map[string]any) (*models.GeneratedContract, error) {
	tpl, ok := s.Catalog.Get(templateID)
	if !ok || !tpl.Active {
		return nil, ErrTemplateNotFound
	}

	for _, field := range tpl.RequiredFields {
		if factMissing(facts, field) {
			return nil, &InputError{Field: field, Reason: "required field is missing"}
		}
	}

	meta, err := buildMetadata(facts)
	if err != nil {
		return nil, err
	}

	if meta.ProbationDays > 0 {
		ceiling := ProbationCeiling(meta.Position)
		if meta.ProbationDays > ceiling {
			return nil, &InputError{
				Field:  "probationDays",
				Reason: fmt.Sprintf("probation period exceeds the legal ceiling of %d calendar days for this position", ceiling),
			}
		}
		end := meta.StartDate.AddDate(0, 0, meta.ProbationDays)
		meta.ProbationEndDate = &end
	}

	lang := tpl.Locale
	if l, _ := facts["language"].(string); l == "en" || l == "ro" {
		lang = l
	}

	ctx := buildRenderContext(meta, facts)

	contract := &models.GeneratedContract{
		ID:         uuid.NewString(),
		UserID:     userID,
		TemplateID: tpl.ID,
		EmployeeID: employeeID,
		Language:   lang,
		Metadata:   meta,
		Status:     models.ContractStatusDraft,
	}

	for _, cl := range tpl.Clauses {
		included := true
		if cl.Type == catalog.ClauseConditional {
			included = render.EvalCondition(cl.Condition, ctx)
		}
		titleRes := render.Render(cl.Title(lang), ctx)
		bodyRes := render.Render(cl.Body(lang), ctx)
		vars := make(map[string]string, len(bodyRes.VariablesUsed)+len(titleRes.VariablesUsed))
		for k, v := range bodyRes.VariablesUsed {
			vars[k] = v
		}
		for k, v := range titleRes.VariablesUsed {
			vars[k] = v
		}
		contract.Clauses = append(contract.Clauses, models.GeneratedClause{
			ContractID: contract.ID,
			ClauseID:   cl.ID,
			Title:      titleRes.Output,
			Content:    bodyRes.Output,
			Included:   included,
			Position:   cl.Order,
			Variables:  vars,
		})
	}

	contract.BodyText = document.AssembleText(meta, contract.Clauses, lang)
	html, err := document.AssembleHTML(meta, contract.Clauses, lang)
	if err != nil {
		return nil, fmt.Errorf("assemble html: %w", err)
	}
	contract.BodyHTML = html

	if err := s.DB.Create(contract).Error; err != nil {
		return nil, err
	}
	return contract, nil
}

// Get loads a contract with its clauses and signature requests.
func (s *ContractService) Get(id string) (*models.GeneratedContract, error) {
	var c models.GeneratedContract
	err := s.DB.Preload("Clauses").Preload("Signatures").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate runs the statutory checks over a contract's metadata snapshot.
// It is side-effect-free and can be re-run any number of times; all
// applicable violations are aggregated, never short-circuited.
func (s *ContractService) Validate(c *models.GeneratedContract) ValidationResult {
	var res ValidationResult
	m := c.Metadata

	if m.Salary < MinimumGrossSalary {
		res.addError("salary %.2f is below the national minimum gross salary of %.2f RON", m.Salary, MinimumGrossSalary)
	}
	if m.WeeklyHours > MaxWeeklyHours {
		res.addError("weekly hours %d exceed the legal maximum of %d", m.WeeklyHours, MaxWeeklyHours)
	}
	if m.ProbationDays > ManagementProbationCeiling {
		res.addError("probation period of %d days exceeds the legal maximum of %d calendar days", m.ProbationDays, ManagementProbationCeiling)
	}
	if !validation.ValidateCNP(m.EmployeeCNP) {
		res.addError("employee CNP %q fails the checksum validation", m.EmployeeCNP)
	}

	if m.NonCompeteMonths > NonCompeteMaxMonths {
		res.addWarning("non-compete duration of %d months exceeds the %d month legal maximum", m.NonCompeteMonths, NonCompeteMaxMonths)
	}
	if m.NonCompeteMonths > 0 && m.NonCompeteCompensation < m.Salary*NonCompeteMinCompensationPct {
		res.addWarning("non-compete compensation %.2f is below %d%% of the salary", m.NonCompeteCompensation, int(NonCompeteMinCompensationPct*100))
	}

	res.finish()
	return res
}

// ValidateByID loads a contract, runs the statutory checks and stamps
// ValidatedAt when it passes.
func (s *ContractService) ValidateByID(id string) (*models.GeneratedContract, ValidationResult, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	res := s.Validate(c)
	if res.Valid {
		now := time.Now()
		c.ValidatedAt = &now
		if err := s.DB.Model(c).Update("validated_at", c.ValidatedAt).Error; err != nil {
			return nil, res, err
		}
	}
	return c, res, nil
}

// Activate moves a fully signed contract into the active state.
func (s *ContractService) Activate(id string) (*models.GeneratedContract, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if c.Status != models.ContractStatusSigned {
		return nil, ErrInvalidState
	}
	c.Status = models.ContractStatusActive
	if err := s.DB.Model(c).Update("status", c.Status).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// factMissing treats absent, nil and blank-string facts as not supplied.
func factMissing(facts map[string]any, field string) bool {
	v, ok := facts[field]
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}

func buildMetadata(facts map[string]any) (models.ContractMetadata, error) {
	meta := models.ContractMetadata{
		EmployerName:           factString(facts, "employerName"),
		EmployerCUI:            factString(facts, "employerCUI"),
		EmployerAddress:        factString(facts, "employerAddress"),
		EmployerRepresentative: factString(facts, "employerRepresentative"),
		EmployeeName:           factString(facts, "employeeName"),
		EmployeeCNP:            factString(facts, "employeeCNP"),
		EmployeeAddress:        factString(facts, "employeeAddress"),
		Position:               factString(facts, "position"),
		Department:             factString(facts, "department"),
		CORCode:                factString(facts, "corCode"),
		Salary:                 factFloat(facts, "salary"),
		Currency:               factString(facts, "currency"),
		WeeklyHours:            factInt(facts, "weeklyHours"),
		ProbationDays:          factInt(facts, "probationDays"),
		WorkLocation:           factString(facts, "workLocation"),
		WorkSchedule:           factString(facts, "workSchedule"),
		NonCompeteMonths:       factInt(facts, "nonCompeteMonths"),
		NonCompeteScope:        factString(facts, "nonCompeteScope"),
		NonCompeteCompensation: factFloat(facts, "nonCompeteCompensation"),
		NonCompeteActivities:   factString(facts, "nonCompeteActivities"),
		TeleworkDaysPerWeek:    factInt(facts, "teleworkDaysPerWeek"),
		TeleworkEquipment:      factString(facts, "teleworkEquipment"),
		TeleworkAllowance:      factFloat(facts, "teleworkAllowance"),
		TeleworkSchedule:       factString(facts, "teleworkSchedule"),
	}

	if meta.Currency == "" {
		meta.Currency = "RON"
	}
	if meta.WeeklyHours == 0 {
		meta.WeeklyHours = StandardWeeklyHours
	}

	start, err := factDate(facts, "startDate")
	if err != nil {
		return meta, &InputError{Field: "startDate", Reason: "not a valid date"}
	}
	meta.StartDate = start
	if !factMissing(facts, "endDate") {
		end, err := factDate(facts, "endDate")
		if err != nil {
			return meta, &InputError{Field: "endDate", Reason: "not a valid date"}
		}
		meta.EndDate = &end
	}
	return meta, nil
}

// buildRenderContext flattens the metadata over the raw facts. Canonical
// metadata keys win so defaults (currency, weekly hours) and derived dates
// are what the clauses see.
func buildRenderContext(meta models.ContractMetadata, facts map[string]any) render.Context {
	ctx := render.Context{}
	for k, v := range facts {
		ctx[k] = v
	}

	ctx["employerName"] = meta.EmployerName
	ctx["employerCUI"] = meta.EmployerCUI
	ctx["employerAddress"] = meta.EmployerAddress
	ctx["employerRepresentative"] = meta.EmployerRepresentative
	ctx["employeeName"] = meta.EmployeeName
	ctx["employeeCNP"] = meta.EmployeeCNP
	ctx["employeeAddress"] = meta.EmployeeAddress
	ctx["position"] = meta.Position
	ctx["corCode"] = meta.CORCode
	ctx["salary"] = meta.Salary
	ctx["currency"] = meta.Currency
	ctx["weeklyHours"] = meta.WeeklyHours
	ctx["startDate"] = meta.StartDate
	ctx["workLocation"] = meta.WorkLocation
	ctx["probationDays"] = meta.ProbationDays

	if meta.Department != "" {
		ctx["department"] = meta.Department
	} else {
		delete(ctx, "department")
	}
	if meta.WorkSchedule != "" {
		ctx["workSchedule"] = meta.WorkSchedule
	} else {
		delete(ctx, "workSchedule")
	}
	if meta.EndDate != nil {
		ctx["endDate"] = *meta.EndDate
	}
	if meta.ProbationEndDate != nil {
		ctx["probationEndDate"] = *meta.ProbationEndDate
	}

	nonCompete := map[string]any{}
	if meta.NonCompeteMonths > 0 {
		nonCompete["months"] = meta.NonCompeteMonths
		nonCompete["scope"] = meta.NonCompeteScope
		nonCompete["compensation"] = meta.NonCompeteCompensation
		nonCompete["activities"] = meta.NonCompeteActivities
	}
	ctx["nonCompete"] = nonCompete

	telework := map[string]any{}
	if meta.TeleworkDaysPerWeek > 0 {
		telework["daysPerWeek"] = meta.TeleworkDaysPerWeek
		telework["equipment"] = meta.TeleworkEquipment
		if meta.TeleworkAllowance > 0 {
			telework["allowance"] = meta.TeleworkAllowance
		}
		if meta.TeleworkSchedule != "" {
			telework["schedule"] = meta.TeleworkSchedule
		}
	}
	ctx["telework"] = telework

	return ctx
}

func factString(facts map[string]any, field string) string {
	if s, ok := facts[field].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func factFloat(facts map[string]any, field string) float64 {
	switch v := facts[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func factInt(facts map[string]any, field string) int {
	switch v := facts[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// factDate accepts a time.Time or an ISO "2006-01-02" string.
func factDate(facts map[string]any, field string) (time.Time, error) {
	switch v := facts[field].(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil date")
		}
		return *v, nil
	case string:
		return time.Parse("2006-01-02", strings.TrimSpace(v))
	default:
		return time.Time{}, fmt.Errorf("unsupported date value for %s", field)
	}
}
