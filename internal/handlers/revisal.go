package handlers

import (
	"net/http"

	"github.com/diewo77/go-contracts/httpx"
	"github.com/diewo77/go-contracts/internal/models"
	"github.com/diewo77/go-contracts/internal/services"
	"github.com/diewo77/go-contracts/validation"
)

type RevisalHandler struct {
	revisal *services.RevisalService
}

func NewRevisalHandler(revisal *services.RevisalService) *RevisalHandler {
	return &RevisalHandler{revisal: revisal}
}

type createSubmissionRequest struct {
	EmployeeID string                        `json:"employee_id"`
	ContractID string                        `json:"contract_id"`
	Operation  models.RevisalOperation       `json:"operation"`
	Employee   models.RevisalEmployee        `json:"employee"`
	Contract   models.RevisalContract        `json:"contract"`
	Changes    map[string]models.FieldChange `json:"changes"`
}

func (h *RevisalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Shape checks only; the statutory rules run in the validate step.
	v := make(validation.Violations)
	validation.Required("operation", string(req.Operation), v)
	validation.Required("employee.name", req.Employee.Name, v)
	validation.Required("employee.cnp", req.Employee.CNP, v)
	validation.Required("contract.position", req.Contract.Position, v)
	validation.PositiveFloat("contract.salary", req.Contract.Salary, v)
	validation.RangeFloat("contract.weekly_hours", req.Contract.WeeklyHours, 1, 168, v)
	if !v.Empty() {
		httpx.BadRequest(w, "validation_failed", v)
		return
	}

	sub, err := h.revisal.Create(userID(r), services.RevisalInput{
		EmployeeID: req.EmployeeID,
		ContractID: req.ContractID,
		Operation:  req.Operation,
		Employee:   req.Employee,
		Contract:   req.Contract,
		Changes:    req.Changes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sub)
}

func (h *RevisalHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.revisal.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sub)
}

func (h *RevisalHandler) Validate(w http.ResponseWriter, r *http.Request) {
	sub, res, err := h.revisal.Validate(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"submission_id": sub.ID,
		"status":        sub.Status,
		"result":        res,
	})
}

func (h *RevisalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := h.revisal.Submit(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sub)
}
