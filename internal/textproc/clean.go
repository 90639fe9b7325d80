package textproc

import (
	"regexp"
	"strings"
)

var (
	reFencedCode = regexp.MustCompile("(?s)```.*```")
	reTableRow   = regexp.MustCompile(`\|.*\|`)
	reTag        = regexp.MustCompile(`<.*>`)
	reInlineCode = regexp.MustCompile("`.*`")
	reLink       = regexp.MustCompile(`http\S+`)
	reBlankLines = regexp.MustCompile(`\n\s*\n`)

	brackets    = strings.NewReplacer("[", "", "]", "")
	punctuation = strings.NewReplacer("_", "", "#", "", ":", "", "=", "")
)

// Clean strips markdown and HTML noise from README text. The patterns are
// greedy: a fenced block runs from the first fence to the last one, and a
// tag or inline-code match runs to the last closer on the line.
func Clean(content string) string {
	s := reFencedCode.ReplaceAllString(content, "")
	s = reTableRow.ReplaceAllString(s, "")
	s = reTag.ReplaceAllString(s, "")
	s = reInlineCode.ReplaceAllString(s, "")
	s = reLink.ReplaceAllString(s, "")
	s = brackets.Replace(s)
	s = reBlankLines.ReplaceAllString(s, "\n")
	s = punctuation.Replace(s)

	return s
}
