// Package render substitutes clause placeholders and resolves conditional
// blocks against a flat fact context. Rendering is deliberately permissive:
// unmatched placeholders and malformed blocks stay in the output verbatim,
// since the result is a human-reviewed legal draft, not a machine payload.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Context maps variable names to values. Nested maps give one level of
// dotted access (e.g. "telework.daysPerWeek").
type Context map[string]any

// Result carries the rendered output plus the variables that were actually
// substituted, keyed by name, for downstream auditing.
type Result struct {
	Output        string
	VariablesUsed map[string]string
}

// DateLayout is the calendar format used for date values in rendered text.
const DateLayout = "02.01.2006"

var placeholderRE = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)?)\}\}`)

// Render resolves {{name}} placeholders and {{#flag}}...{{/flag}} blocks.
// It never fails; anything it cannot resolve is passed through unchanged.
func Render(text string, ctx Context) Result {
	used := map[string]string{}
	out := renderPass(text, ctx, used)
	return Result{Output: out, VariablesUsed: used}
}

func renderPass(text string, ctx Context, used map[string]string) string {
	out := placeholderRE.ReplaceAllStringFunc(text, func(m string) string {
		name := m[2 : len(m)-2]
		v, ok := Lookup(ctx, name)
		if !ok || v == nil {
			return m
		}
		s := Stringify(v)
		used[name] = s
		return s
	})
	return renderBlocks(out, ctx, used)
}

// Block names follow the same grammar as placeholders: an identifier with
// at most one dotted level, so nested flags like telework.schedule can gate
// a section.
var blockNameRE = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// renderBlocks resolves conditional sections left to right. A block opener
// whose closing marker (with the same name) is missing is emitted literally.
func renderBlocks(text string, ctx Context, used map[string]string) string {
	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, "{{#")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		nameEnd := strings.Index(rest[start:], "}}")
		if nameEnd < 0 {
			b.WriteString(rest)
			break
		}
		name := rest[start+3 : start+nameEnd]
		bodyStart := start + nameEnd + 2
		closeTag := "{{/" + name + "}}"
		closeIdx := -1
		if blockNameRE.MatchString(name) {
			closeIdx = strings.Index(rest[bodyStart:], closeTag)
		}
		if closeIdx < 0 {
			b.WriteString(rest[:bodyStart])
			rest = rest[bodyStart:]
			continue
		}
		b.WriteString(rest[:start])
		body := rest[bodyStart : bodyStart+closeIdx]
		v, _ := Lookup(ctx, name)
		if Truthy(v) {
			b.WriteString(renderPass(body, ctx, used))
		}
		rest = rest[bodyStart+closeIdx+len(closeTag):]
	}
	return b.String()
}

// Lookup resolves a possibly dotted name against the context. Only one level
// of nesting is supported.
func Lookup(ctx Context, name string) (any, bool) {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		head, tail := name[:i], name[i+1:]
		nested, ok := ctx[head]
		if !ok {
			return nil, false
		}
		m, ok := nested.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[tail]
		return v, ok
	}
	v, ok := ctx[name]
	return v, ok
}

// Stringify renders a context value the way it should read in a contract:
// dates as calendar dates, numbers without trailing zeros, everything else
// in its natural form.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(DateLayout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(DateLayout)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truthy decides conditional inclusion: booleans are themselves, numbers are
// truthy when non-zero, strings when non-empty and not "false"/"0". The same
// rule backs guard expression identifiers so flags behave consistently.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.TrimSpace(t)
		return s != "" && s != "false" && s != "0"
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
