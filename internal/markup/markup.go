// Package markup removes the inline rich-text tags used by the game's description strings.
package markup

import (
	"regexp"
	"strings"
)

// tagPattern matches opening, closing and anonymous tags such as <@ba.vup>, <$ba.stun> and </>.
var tagPattern = regexp.MustCompile(`<[^<>]+>`)

// newlineEscape is the literal backslash-n pair stored in raw description text.
const newlineEscape = `\n`

// Strip removes every inline tag and leaves all other characters untouched.
// Literal escape sequences such as \n are kept as two characters.
func Strip(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return tagPattern.ReplaceAllString(text, "")
}

// Unescape turns the literal \n escape into a real newline.
// Only some output fields apply it; callers decide per field.
func Unescape(text string) string {
	return strings.ReplaceAll(text, newlineEscape, "\n")
}
