package handlers

import (
	"net/http"

	"github.com/diewo77/go-contracts/httpx"
	"github.com/diewo77/go-contracts/internal/models"
	"github.com/diewo77/go-contracts/internal/services"
	"github.com/diewo77/go-contracts/validation"
)

type SignatureHandler struct {
	signatures *services.SignatureService
}

func NewSignatureHandler(signatures *services.SignatureService) *SignatureHandler {
	return &SignatureHandler{signatures: signatures}
}

type requestSignatureRequest struct {
	Role     models.SignerRole        `json:"role"`
	Email    string                   `json:"email"`
	Provider models.SignatureProvider `json:"provider"`
}

func (h *SignatureHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req requestSignatureRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := make(validation.Violations)
	validation.Required("role", string(req.Role), v)
	validation.Required("email", req.Email, v)
	validation.Required("provider", string(req.Provider), v)
	if !v.Empty() {
		httpx.BadRequest(w, "validation_failed", v)
		return
	}

	sig, err := h.signatures.RequestSignature(r.Context(), r.PathValue("id"), req.Role, req.Email, req.Provider)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sig)
}

type recordSignatureRequest struct {
	SignatureData string `json:"signature_data"`
}

func (h *SignatureHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordSignatureRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	contract, err := h.signatures.RecordSignature(r.PathValue("id"), r.PathValue("requestID"), req.SignatureData)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contract)
}
