package document

import (
	"strings"
	"testing"

	"github.com/diewo77/go-contracts/internal/models"
)

func sampleClauses() []models.GeneratedClause {
	return []models.GeneratedClause{
		{ClauseID: "parti", Title: "Părțile contractului", Content: "Angajator și salariat.", Included: true, Position: 1},
		{ClauseID: "neconcurenta", Title: "Clauza de neconcurență", Content: "Nu se aplică.", Included: false, Position: 2},
		{ClauseID: "salarizare", Title: "Salarizare", Content: "Salariul brut lunar este 6500 RON.", Included: true, Position: 3},
	}
}

func sampleMeta() models.ContractMetadata {
	return models.ContractMetadata{
		EmployerName: "Tehnologii SRL",
		EmployeeName: "Andrei Popescu",
	}
}

func TestAssembleTextNumbersIncludedClauses(t *testing.T) {
	text := AssembleText(sampleMeta(), sampleClauses(), "ro")

	if !strings.Contains(text, "Art. 1. Părțile contractului") {
		t.Error("first included clause should be Art. 1")
	}
	// The excluded clause does not consume a number.
	if !strings.Contains(text, "Art. 2. Salarizare") {
		t.Error("numbering must skip excluded clauses")
	}
	if strings.Contains(text, "neconcurență") {
		t.Error("excluded clause must not appear in the document")
	}
	if !strings.Contains(text, "Tehnologii SRL") || !strings.Contains(text, "Andrei Popescu") {
		t.Error("signature block should name both parties")
	}
}

func TestAssembleTextLocalized(t *testing.T) {
	ro := AssembleText(sampleMeta(), sampleClauses(), "ro")
	en := AssembleText(sampleMeta(), sampleClauses(), "en")

	if !strings.Contains(ro, "CONTRACT INDIVIDUAL DE MUNCĂ") {
		t.Error("romanian title missing")
	}
	if !strings.Contains(en, "INDIVIDUAL EMPLOYMENT CONTRACT") {
		t.Error("english title missing")
	}
	if ro == en {
		t.Error("language variants should differ")
	}
}

func TestAssembleHTML(t *testing.T) {
	html, err := AssembleHTML(sampleMeta(), sampleClauses(), "ro")
	if err != nil {
		t.Fatalf("AssembleHTML: %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("output should be a standalone document")
	}
	if !strings.Contains(html, `<html lang="ro">`) {
		t.Error("document language should be declared")
	}
	if !strings.Contains(html, "Art. 2. Salarizare") {
		t.Error("numbering must skip excluded clauses in html too")
	}
	if strings.Contains(html, "Nu se aplică.") {
		t.Error("excluded clause must not appear in html")
	}
}
