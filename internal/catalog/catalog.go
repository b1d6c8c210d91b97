// Package catalog holds the static, versioned set of contract templates.
// The catalog is built once and never mutated, keeping generation and
// validation pure over an immutable table.
package catalog

// Category is one of the enumerated contract kinds.
type Category string

const (
	CategoryStandard       Category = "standard"
	CategoryFixedTerm      Category = "fixed_term"
	CategoryPartTime       Category = "part_time"
	CategoryTelework       Category = "telework"
	CategoryTemporary      Category = "temporary_agency"
	CategoryApprenticeship Category = "apprenticeship"
	CategoryInternship     Category = "internship"
	CategoryManagement     Category = "management"
	CategorySeasonal       Category = "seasonal"
	CategoryHomeWork       Category = "home_work"
)

// ClauseType describes how a clause participates in assembly.
type ClauseType string

const (
	ClauseMandatory   ClauseType = "mandatory"
	ClauseOptional    ClauseType = "optional"
	ClauseConditional ClauseType = "conditional"
)

// Clause is a titled, conditionally includable unit of contract text with
// declared template variables, in both locales.
type Clause struct {
	ID      string
	TitleRO string
	TitleEN string
	BodyRO  string
	BodyEN  string
	Type    ClauseType
	// Condition is a guard expression, only meaningful for conditional clauses
	Condition string
	Variables []string
	Order     int
	LegalRef  string
}

// Title returns the display title for a language, defaulting to Romanian.
func (c Clause) Title(lang string) string {
	if lang == "en" {
		return c.TitleEN
	}
	return c.TitleRO
}

// Body returns the clause body for a language, defaulting to Romanian.
func (c Clause) Body(lang string) string {
	if lang == "en" {
		return c.BodyEN
	}
	return c.BodyRO
}

// Template is an ordered list of clauses plus the field declarations a
// generation call must satisfy.
type Template struct {
	ID             string
	Category       Category
	Name           string
	Locale         string
	Clauses        []Clause
	RequiredFields []string
	OptionalFields []string
	LegalBasis     []string
	Version        string
	Active         bool
}

// Catalog is the immutable template table keyed by template id.
type Catalog struct {
	templates map[string]Template
	order     []string
}

// New builds a catalog from a template list, preserving order.
func New(templates []Template) *Catalog {
	c := &Catalog{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		if _, dup := c.templates[t.ID]; dup {
			continue
		}
		c.templates[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c
}

// Get looks up a template by id.
func (c *Catalog) Get(id string) (Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// List returns all templates in registration order.
func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.templates[id])
	}
	return out
}
