package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/go-contracts/httpx"
	"github.com/diewo77/go-contracts/i18n"
	"github.com/diewo77/go-contracts/internal/services"
	"github.com/diewo77/go-contracts/validation"
)

// userID resolves the acting employer account. The upstream gateway is
// expected to set the header after authentication; 1 is the local dev
// fallback.
func userID(r *http.Request) uint {
	if v := r.Header.Get("X-User-ID"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(id)
		}
	}
	return 1
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.BadRequest(w, "invalid_json", err.Error())
		return false
	}
	return true
}

// writeServiceError maps the service sentinel errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var inputErr *services.InputError
	switch {
	case errors.As(err, &inputErr):
		httpx.BadRequest(w, "invalid_input", map[string]string{inputErr.Field: inputErr.Reason})
	case errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrContractNotFound),
		errors.Is(err, services.ErrSignatureNotFound),
		errors.Is(err, services.ErrSubmissionNotFound),
		errors.Is(err, services.ErrDeclarationNotFound):
		httpx.NotFound(w, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		httpx.Conflict(w, err.Error())
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

type ContractHandler struct {
	contracts *services.ContractService
}

func NewContractHandler(contracts *services.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

type generateContractRequest struct {
	TemplateID string         `json:"template_id"`
	EmployeeID string         `json:"employee_id"`
	Facts      map[string]any `json:"facts"`
}

func (h *ContractHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := make(validation.Violations)
	validation.Required("template_id", req.TemplateID, v)
	validation.Required("employee_id", req.EmployeeID, v)
	if !v.Empty() {
		httpx.BadRequest(w, "validation_failed", v)
		return
	}

	// The document language comes from the facts when the caller sets it,
	// otherwise from the request's Accept-Language header.
	if req.Facts == nil {
		req.Facts = map[string]any{}
	}
	if _, ok := req.Facts["language"]; !ok {
		req.Facts["language"] = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	}

	contract, err := h.contracts.Generate(userID(r), req.TemplateID, req.EmployeeID, req.Facts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	contract, err := h.contracts.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Validate(w http.ResponseWriter, r *http.Request) {
	contract, res, err := h.contracts.ValidateByID(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"contract_id": contract.ID,
		"result":      res,
	})
}

func (h *ContractHandler) Activate(w http.ResponseWriter, r *http.Request) {
	contract, err := h.contracts.Activate(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contract)
}
