package render

import (
	"strings"
	"testing"
	"time"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	ctx := Context{
		"employeeName": "Ion Popescu",
		"salary":       8000.0,
		"startDate":    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	res := Render("{{employeeName}} primește {{salary}} RON începând cu {{startDate}}.", ctx)
	want := "Ion Popescu primește 8000 RON începând cu 01.03.2025."
	if res.Output != want {
		t.Errorf("output = %q, want %q", res.Output, want)
	}
	if res.VariablesUsed["employeeName"] != "Ion Popescu" {
		t.Errorf("expected employeeName recorded, got %v", res.VariablesUsed)
	}
	if res.VariablesUsed["startDate"] != "01.03.2025" {
		t.Errorf("expected formatted date recorded, got %v", res.VariablesUsed)
	}
}

func TestRenderLeavesUnmatchedPlaceholdersVerbatim(t *testing.T) {
	res := Render("Salariu: {{salary}} RON", Context{})
	if res.Output != "Salariu: {{salary}} RON" {
		t.Errorf("unmatched placeholder altered: %q", res.Output)
	}
	if len(res.VariablesUsed) != 0 {
		t.Errorf("expected no variables recorded, got %v", res.VariablesUsed)
	}
	// nil values count as absent
	res = Render("{{endDate}}", Context{"endDate": nil})
	if res.Output != "{{endDate}}" {
		t.Errorf("nil value substituted: %q", res.Output)
	}
}

func TestRenderIdempotentOnFullySubstituted(t *testing.T) {
	ctx := Context{"a": "unu", "b": 2}
	first := Render("{{a}} și {{b}}", ctx)
	second := Render(first.Output, ctx)
	if second.Output != first.Output {
		t.Errorf("re-render changed output: %q vs %q", second.Output, first.Output)
	}
}

func TestRenderConditionalBlocks(t *testing.T) {
	text := "Bază.{{#probation}} Perioadă de probă: {{probationDays}} zile.{{/probation}} Final."
	res := Render(text, Context{"probation": true, "probationDays": 90})
	if res.Output != "Bază. Perioadă de probă: 90 zile. Final." {
		t.Errorf("truthy block not spliced: %q", res.Output)
	}
	res = Render(text, Context{"probation": false, "probationDays": 90})
	if res.Output != "Bază. Final." {
		t.Errorf("falsy block not removed: %q", res.Output)
	}
	// absent flag behaves like false
	res = Render(text, Context{"probationDays": 90})
	if strings.Contains(res.Output, "probă") {
		t.Errorf("absent flag kept block: %q", res.Output)
	}
}

func TestRenderDottedBlockNames(t *testing.T) {
	text := "Telemuncă{{#telework.allowance}} cu indemnizație de {{telework.allowance}} RON{{/telework.allowance}}" +
		"{{#telework.schedule}}, conform programului {{telework.schedule}}{{/telework.schedule}}."

	res := Render(text, Context{"telework": map[string]any{"allowance": 400.0, "schedule": "09-17"}})
	want := "Telemuncă cu indemnizație de 400 RON, conform programului 09-17."
	if res.Output != want {
		t.Errorf("dotted blocks not spliced: %q", res.Output)
	}

	// Absent nested keys drop their blocks entirely.
	res = Render(text, Context{"telework": map[string]any{"daysPerWeek": 2}})
	if res.Output != "Telemuncă." {
		t.Errorf("dotted blocks not removed: %q", res.Output)
	}
	if strings.Contains(res.Output, "{{") {
		t.Errorf("block markers leaked into output: %q", res.Output)
	}
}

func TestRenderMismatchedBlockPassedThrough(t *testing.T) {
	text := "{{#telework}} conținut {{/altceva}}"
	res := Render(text, Context{"telework": true})
	if res.Output != text {
		t.Errorf("mismatched block should pass through literally, got %q", res.Output)
	}
}

func TestRenderBlockBodyResolvedRecursively(t *testing.T) {
	text := "{{#nonCompete}}Durata: {{nonCompete.duration}} luni{{/nonCompete}}"
	ctx := Context{"nonCompete": map[string]any{"duration": 12}}
	res := Render(text, ctx)
	if res.Output != "Durata: 12 luni" {
		t.Errorf("dotted access inside block failed: %q", res.Output)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"true bool", true, true},
		{"false bool", false, false},
		{"nil", nil, false},
		{"zero number", 0.0, false},
		{"number", 12.0, true},
		{"empty string", "", false},
		{"false string", "false", false},
		{"zero string", "0", false},
		{"string", "da", true},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"x": 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestStringifyTrimsFloats(t *testing.T) {
	if s := Stringify(4050.50); s != "4050.5" {
		t.Errorf("Stringify(4050.50) = %q", s)
	}
	if s := Stringify(40); s != "40" {
		t.Errorf("Stringify(40) = %q", s)
	}
}
