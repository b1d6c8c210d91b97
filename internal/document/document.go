// Package document assembles the final contract documents from the rendered
// clause list: a plain-text version and a standalone HTML version. Both are
// derived from the same clauses so they never diverge.
package document

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/diewo77/go-contracts/i18n"
	"github.com/diewo77/go-contracts/internal/models"
)

// AssembleText builds the newline-joined plain-text contract.
func AssembleText(meta models.ContractMetadata, clauses []models.GeneratedClause, lang string) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(i18n.T(lang, "contract_title")))
	b.WriteString("\n")
	b.WriteString(i18n.T(lang, "legal_basis"))
	b.WriteString("\n\n")

	n := 0
	for _, cl := range clauses {
		if !cl.Included {
			continue
		}
		n++
		fmt.Fprintf(&b, "Art. %d. %s\n%s\n\n", n, cl.Title, cl.Content)
	}

	b.WriteString(signatureBlockText(meta, lang))
	return b.String()
}

func signatureBlockText(meta models.ContractMetadata, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "date"), time.Now().Format("02.01.2006"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s,\n%s\n%s: ________________\n\n",
		i18n.T(lang, "employer"), meta.EmployerName, i18n.T(lang, "signature"))
	fmt.Fprintf(&b, "%s,\n%s\n%s: ________________\n",
		i18n.T(lang, "employee"), meta.EmployeeName, i18n.T(lang, "signature"))
	return b.String()
}

// htmlDoc is the standalone document wrapper. The output is consumed
// directly by browsers and PDF renderers, so it must be a complete document
// with a declared language and embedded styling.
var htmlDoc = template.Must(template.New("contract").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; max-width: 720px; margin: 2em auto; color: #1a1a1a; line-height: 1.5; }
h1 { font-size: 1.3em; text-align: center; text-transform: uppercase; }
p.legal-basis { text-align: center; font-style: italic; margin-bottom: 2em; }
h2 { font-size: 1em; margin: 1.2em 0 0.3em; }
section.clause p { margin: 0.3em 0; text-align: justify; }
div.signatures { display: flex; justify-content: space-between; margin-top: 3em; }
div.signatures div { width: 45%; }
span.sign-line { display: inline-block; min-width: 12em; border-bottom: 1px solid #1a1a1a; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="legal-basis">{{.LegalBasis}}</p>
{{range .Clauses}}<section class="clause">
<h2>Art. {{.Number}}. {{.Title}}</h2>
<p>{{.Content}}</p>
</section>
{{end}}<div class="signatures">
<div>
<p>{{.EmployerLabel}},<br>{{.EmployerName}}</p>
<p>{{.SignatureLabel}}: <span class="sign-line">&nbsp;</span></p>
</div>
<div>
<p>{{.EmployeeLabel}},<br>{{.EmployeeName}}</p>
<p>{{.SignatureLabel}}: <span class="sign-line">&nbsp;</span></p>
</div>
</div>
</body>
</html>
`))

type htmlClause struct {
	Number  int
	Title   string
	Content string
}

type htmlData struct {
	Lang           string
	Title          string
	LegalBasis     string
	Clauses        []htmlClause
	EmployerLabel  string
	EmployerName   string
	EmployeeLabel  string
	EmployeeName   string
	SignatureLabel string
}

// AssembleHTML builds the standalone HTML contract document.
func AssembleHTML(meta models.ContractMetadata, clauses []models.GeneratedClause, lang string) (string, error) {
	data := htmlData{
		Lang:           lang,
		Title:          i18n.T(lang, "contract_title"),
		LegalBasis:     i18n.T(lang, "legal_basis"),
		EmployerLabel:  i18n.T(lang, "employer"),
		EmployerName:   meta.EmployerName,
		EmployeeLabel:  i18n.T(lang, "employee"),
		EmployeeName:   meta.EmployeeName,
		SignatureLabel: i18n.T(lang, "signature"),
	}
	n := 0
	for _, cl := range clauses {
		if !cl.Included {
			continue
		}
		n++
		data.Clauses = append(data.Clauses, htmlClause{Number: n, Title: cl.Title, Content: cl.Content})
	}
	var b strings.Builder
	if err := htmlDoc.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
