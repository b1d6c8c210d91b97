package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("fr-FR,fr;q=0.8") != "ro" {
		t.Fatalf("expected ro fallback")
	}
	if DetectLanguage("ro-RO,ro;q=0.9,en;q=0.5") != "ro" {
		t.Fatalf("expected ro")
	}
	if DetectLanguage("") != "ro" {
		t.Fatalf("expected default ro")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "employer") != "Employer" {
		t.Fatalf("expected Employer")
	}
	if T("ro", "employer") != "Angajator" {
		t.Fatalf("expected Angajator")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to ro translation if exists
	if T("es", "employer") != "Angajator" {
		t.Fatalf("expected ro fallback for es lang")
	}
}
