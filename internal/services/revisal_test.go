package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/go-contracts/internal/models"
)

func validRevisalInput() RevisalInput {
	return RevisalInput{
		EmployeeID: "emp-1",
		ContractID: "ctr-1",
		Operation:  models.RevisalOpHire,
		Employee: models.RevisalEmployee{
			Name:           "Andrei Popescu",
			CNP:            validCNP,
			Address:        "Str. Lalelelor 3, Cluj-Napoca",
			DocumentType:   "CI",
			DocumentNumber: "CJ123456",
		},
		Contract: models.RevisalContract{
			Number:       "123/2025",
			Type:         "nedeterminata",
			StartDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Position:     "Programator",
			CORCode:      "251401",
			Salary:       6500,
			WeeklyHours:  40,
			WorkLocation: "Cluj-Napoca",
		},
	}
}

func newRevisalService(t *testing.T) *RevisalService {
	t.Helper()
	return NewRevisalService(setupTestDB(t), "RO12345678", "Tehnologii SRL", "")
}

func TestRevisalCreateStoresDraft(t *testing.T) {
	svc := newRevisalService(t)

	sub, err := svc.Create(1, validRevisalInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sub.Status != models.SubmissionStatusDraft {
		t.Errorf("status = %q, want draft", sub.Status)
	}
	if sub.Employee.Nationality != "română" {
		t.Errorf("nationality default = %q", sub.Employee.Nationality)
	}
	if sub.Contract.WorkingConditions != "normale" {
		t.Errorf("working conditions default = %q", sub.Contract.WorkingConditions)
	}

	// Creation never validates: a submission with broken data still lands.
	in := validRevisalInput()
	in.Employee.CNP = "not-a-cnp"
	in.Contract.Salary = 1
	if _, err := svc.Create(1, in); err != nil {
		t.Fatalf("Create with invalid snapshot data: %v", err)
	}
}

func TestRevisalCreateRejectsUnknownOperation(t *testing.T) {
	svc := newRevisalService(t)

	in := validRevisalInput()
	in.Operation = models.RevisalOperation("promote")
	_, err := svc.Create(1, in)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestRevisalValidatePasses(t *testing.T) {
	svc := newRevisalService(t)

	sub, err := svc.Create(1, validRevisalInput())
	if err != nil {
		t.Fatal(err)
	}
	got, res, err := svc.Validate(sub.ID)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid submission, got %v", res.Errors)
	}
	if got.Status != models.SubmissionStatusValidated {
		t.Errorf("status = %q, want validated", got.Status)
	}
}

func TestRevisalValidateAggregatesErrors(t *testing.T) {
	svc := newRevisalService(t)

	in := validRevisalInput()
	in.Employee.CNP = "1980518123452" // checksum off by one
	in.Contract.CORCode = "25AB01"
	in.Contract.WeeklyHours = 50
	in.Contract.ProbationDays = 121
	sub, err := svc.Create(1, in)
	if err != nil {
		t.Fatal(err)
	}

	got, res, err := svc.Validate(sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Fatal("expected invalid submission")
	}
	if len(res.Errors) != 4 {
		t.Errorf("error count = %d, want 4: %v", len(res.Errors), res.Errors)
	}
	if got.Status != models.SubmissionStatusDraft {
		t.Errorf("status = %q, want draft after failed validation", got.Status)
	}
	if len(got.ValidationErrors) != 4 {
		t.Errorf("persisted error count = %d, want 4", len(got.ValidationErrors))
	}
}

func TestRevisalValidateProRatedMinimumWage(t *testing.T) {
	svc := newRevisalService(t)

	// Half norm: the floor scales to 1850 RON for 20 weekly hours.
	in := validRevisalInput()
	in.Contract.WeeklyHours = 20
	in.Contract.Salary = 1850
	sub, _ := svc.Create(1, in)
	if _, res, err := svc.Validate(sub.ID); err != nil || !res.Valid {
		t.Fatalf("salary at the pro-rated floor should pass: %v %v", res.Errors, err)
	}

	in.Contract.Salary = 1800
	sub, _ = svc.Create(1, in)
	if _, res, err := svc.Validate(sub.ID); err != nil || res.Valid {
		t.Fatalf("salary below the pro-rated floor should fail: err=%v", err)
	}
}

func TestRevisalValidateFixedTerm(t *testing.T) {
	svc := newRevisalService(t)

	in := validRevisalInput()
	in.Contract.Type = "determinata"
	sub, _ := svc.Create(1, in)
	_, res, err := svc.Validate(sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Fatal("fixed-term contract without end date should fail")
	}

	end := in.Contract.StartDate.AddDate(0, 37, 0)
	in.Contract.EndDate = &end
	sub, _ = svc.Create(1, in)
	if _, res, err = svc.Validate(sub.ID); err != nil || res.Valid {
		t.Fatalf("fixed-term duration over the cap should fail: err=%v", err)
	}

	end = in.Contract.StartDate.AddDate(0, 36, 0)
	in.Contract.EndDate = &end
	sub, _ = svc.Create(1, in)
	if _, res, err = svc.Validate(sub.ID); err != nil || !res.Valid {
		t.Fatalf("36-month fixed term should pass: %v %v", res.Errors, err)
	}
}

func TestRevisalValidateOperationRules(t *testing.T) {
	svc := newRevisalService(t)

	in := validRevisalInput()
	in.Contract.Number = ""
	sub, _ := svc.Create(1, in)
	if _, res, err := svc.Validate(sub.ID); err != nil || res.Valid {
		t.Fatalf("hire without contract number should fail: err=%v", err)
	}

	in = validRevisalInput()
	in.Operation = models.RevisalOpSalaryChange
	sub, _ = svc.Create(1, in)
	if _, res, err := svc.Validate(sub.ID); err != nil || res.Valid {
		t.Fatalf("salary change without delta should fail: err=%v", err)
	}

	in.Changes = map[string]models.FieldChange{
		"salary": {Old: "6500", New: "7000"},
	}
	sub, _ = svc.Create(1, in)
	if _, res, err := svc.Validate(sub.ID); err != nil || !res.Valid {
		t.Fatalf("salary change with delta should pass: %v %v", res.Errors, err)
	}
}

func TestRevisalValidateExpiredDocumentWarns(t *testing.T) {
	svc := newRevisalService(t)

	in := validRevisalInput()
	expired := time.Now().AddDate(-1, 0, 0)
	in.Employee.DocumentExpiry = &expired
	sub, _ := svc.Create(1, in)

	_, res, err := svc.Validate(sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Fatalf("expired document is a warning, not an error: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warning count = %d, want 1: %v", len(res.Warnings), res.Warnings)
	}
}

func TestRevisalSubmitRequiresValidation(t *testing.T) {
	svc := newRevisalService(t)

	sub, _ := svc.Create(1, validRevisalInput())
	if _, err := svc.Submit(context.Background(), sub.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("submitting a draft should fail with ErrInvalidState, got %v", err)
	}
}

func TestRevisalSubmitLocalMode(t *testing.T) {
	svc := newRevisalService(t)

	sub, _ := svc.Create(1, validRevisalInput())
	if _, _, err := svc.Validate(sub.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Submit(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Status != models.SubmissionStatusPending {
		t.Errorf("status = %q, want pending in local mode", got.Status)
	}
	if !strings.HasPrefix(got.ReferenceID, "LOCAL-") {
		t.Errorf("reference id = %q, want LOCAL- prefix", got.ReferenceID)
	}
	if got.ReceiptNumber == "" {
		t.Error("receipt number should be synthesized")
	}
	if got.SubmittedAt == nil {
		t.Error("submitted timestamp should be set")
	}
	if !strings.Contains(got.XML, "<RegistruSalariati") {
		t.Errorf("xml missing registry root element:\n%s", got.XML)
	}
	if !strings.Contains(got.XML, validCNP) {
		t.Error("xml should carry the employee CNP")
	}
}

func TestRevisalSubmitEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/xml" {
			t.Errorf("content type = %q", ct)
		}
		w.Write([]byte(`{"reference_id":"REV-42","receipt_number":"RCP-2025-0042"}`))
	}))
	defer ts.Close()

	svc := NewRevisalService(setupTestDB(t), "RO12345678", "Tehnologii SRL", ts.URL)
	sub, _ := svc.Create(1, validRevisalInput())
	if _, _, err := svc.Validate(sub.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Submit(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Status != models.SubmissionStatusSubmitted {
		t.Errorf("status = %q, want submitted", got.Status)
	}
	if got.ReferenceID != "REV-42" || got.ReceiptNumber != "RCP-2025-0042" {
		t.Errorf("receipt = %q/%q", got.ReferenceID, got.ReceiptNumber)
	}
}

func TestRevisalSubmitEndpointFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance window", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	svc := NewRevisalService(setupTestDB(t), "RO12345678", "Tehnologii SRL", ts.URL)
	sub, _ := svc.Create(1, validRevisalInput())
	if _, _, err := svc.Validate(sub.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Submit(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("Submit records the failure instead of returning it: %v", err)
	}
	if got.Status != models.SubmissionStatusError {
		t.Errorf("status = %q, want error", got.Status)
	}
	if got.ErrorMessage == "" {
		t.Error("error message should be recorded")
	}
}
