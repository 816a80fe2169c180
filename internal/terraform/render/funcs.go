package render

import (
	"fmt"
	"slices"
	"strings"
	"text/template"
	"unicode"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"quote":  quote,
		"hclmap": hclMap,
	}
}

// quote returns s as an HCL string literal. Template sequences are escaped
// so user input is never interpolated by Terraform.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	runes := []rune(s)
	for i, r := range runes {
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case (r == '$' || r == '%') && next == '{':
			b.WriteRune(r)
			b.WriteRune(r)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')
	return b.String()
}

// hclMap returns m as an HCL object with sorted keys. Nested lines are
// indented by indent spaces, the closing brace by indent-2.
func hclMap(indent int, m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(m))
	width := 0
	for k := range m {
		keys = append(keys, k)
		width = max(width, len(quote(k)))
	}
	slices.Sort(keys)

	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s%-*s = %s\n", pad, width, quote(k), quote(m[k]))
	}
	b.WriteString(strings.Repeat(" ", max(indent-2, 0)))
	b.WriteString("}")
	return b.String()
}
