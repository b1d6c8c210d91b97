package handlers

import (
	"net/http"

	"github.com/diewo77/go-contracts/httpx"
	"github.com/diewo77/go-contracts/internal/catalog"
)

type TemplateHandler struct {
	catalog *catalog.Catalog
}

func NewTemplateHandler(cat *catalog.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: cat}
}

type templateSummary struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Version  string           `json:"version"`
	Active   bool             `json:"active"`
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates := h.catalog.List()
	out := make([]templateSummary, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateSummary{
			ID:       t.ID,
			Name:     t.Name,
			Category: t.Category,
			Version:  t.Version,
			Active:   t.Active,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := h.catalog.Get(r.PathValue("id"))
	if !ok {
		httpx.NotFound(w, "template_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, t)
}
