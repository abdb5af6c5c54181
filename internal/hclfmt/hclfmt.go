// Package hclfmt formats palette HCL sources into canonical style.
package hclfmt

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	runsOfBlankLines = regexp.MustCompile(`\n{3,}`)
	blankAfterOpen   = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeClose = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns src in canonical HCL style: hclwrite's indentation and
// alignment rules, at most one consecutive blank line, no blank lines
// hugging braces, and a trailing newline.
//
// Formatting is purely token-based and works on sources that do not parse
// as a valid palette.
func Format(src []byte) []byte {
	out := string(hclwrite.Format(src))
	out = runsOfBlankLines.ReplaceAllString(out, "\n\n")
	out = blankAfterOpen.ReplaceAllString(out, "{\n")
	out = blankBeforeClose.ReplaceAllString(out, "\n${1}")
	if out != "" && out[len(out)-1] != '\n' {
		out += "\n"
	}
	return []byte(out)
}

// Formatted reports whether src is already in canonical style.
func Formatted(src []byte) bool {
	return string(Format(src)) == string(src)
}
