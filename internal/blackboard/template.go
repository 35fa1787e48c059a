package blackboard

import (
	"math"
	"regexp"
	"strings"

	"github.com/KirkDiggler/operator-codex/internal/markup"
)

// placeholderPattern matches {key} and {key:format}; the body holds no whitespace
var placeholderPattern = regexp.MustCompile(`\{(\S+?)\}`)

// Formatter renders a resolved value for a format specifier
type Formatter func(v float64) string

var formatters = map[string]Formatter{
	"0%": Percent,
}

// Percent multiplies by 100, rounds half to even and appends a percent sign.
// 0.125 renders as "12%".
func Percent(v float64) string {
	return FormatNumber(math.RoundToEven(v*100)) + "%"
}

// Format applies the formatter registered for spec, if any
func Format(spec string, v float64) (string, bool) {
	formatter, ok := formatters[spec]
	if !ok {
		return "", false
	}
	return formatter(v), true
}

// NormalizeKey lowercases a placeholder key and drops leading hyphens
func NormalizeKey(raw string) string {
	return strings.TrimLeft(strings.ToLower(raw), "-")
}

// Resolve strips markup from template and substitutes every placeholder whose key
// exists on bb. Unknown keys are left in place verbatim.
func Resolve(bb Blackboard, template string) string {
	desc := markup.Strip(template)

	matches := placeholderPattern.FindAllStringSubmatch(desc, -1)
	if len(matches) == 0 {
		return desc
	}

	for _, match := range matches {
		placeholder, body := match[0], match[1]

		parts := strings.Split(body, ":")
		value, ok := bb.Lookup(NormalizeKey(parts[0]))
		if !ok {
			continue
		}

		rendered := FormatNumber(value)
		if len(parts) >= 2 {
			if formatted, ok := Format(parts[1], value); ok {
				rendered = formatted
			}
		}

		desc = strings.ReplaceAll(desc, placeholder, rendered)
	}

	return desc
}
