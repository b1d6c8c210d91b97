package handlers

import (
	"net/http"

	"github.com/diewo77/go-contracts/httpx"
	"github.com/diewo77/go-contracts/internal/services"
	"github.com/diewo77/go-contracts/validation"
)

type D112Handler struct {
	d112 *services.D112Service
}

func NewD112Handler(d112 *services.D112Service) *D112Handler {
	return &D112Handler{d112: d112}
}

type generateDeclarationRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (h *D112Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateDeclarationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := make(validation.Violations)
	validation.RangeInt("month", req.Month, 1, 12, v)
	validation.RangeInt("year", req.Year, 2000, 2100, v)
	if !v.Empty() {
		httpx.BadRequest(w, "validation_failed", v)
		return
	}

	decl, err := h.d112.Generate(userID(r), req.Month, req.Year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, decl)
}

func (h *D112Handler) Get(w http.ResponseWriter, r *http.Request) {
	decl, err := h.d112.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, decl)
}

func (h *D112Handler) Submit(w http.ResponseWriter, r *http.Request) {
	decl, err := h.d112.Submit(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, decl)
}
