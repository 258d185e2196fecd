package diag

import (
	"fmt"
	"strings"
)

// FormatWithContext renders each diagnostic together with its
// line-numbered source line (no caret: a Diagnostic carries no
// column). It falls back to the plain one-line format when source text
// for the file is unavailable. The CLI does not call it; its -v flag
// prints the plain one-line format.
//
// sources maps a filename to its full source text, as read by the
// driver before parsing.
func (b *Bag) FormatWithContext(sources map[string]string) string {
	var sb strings.Builder
	for _, d := range b.items {
		src, ok := sources[d.File]
		if !ok {
			sb.WriteString(d.Error())
			sb.WriteByte('\n')
			continue
		}
		lines := strings.Split(src, "\n")
		sb.WriteString(d.Error())
		sb.WriteByte('\n')
		if d.Line >= 1 && d.Line <= len(lines) {
			prefix := fmt.Sprintf("%4d | ", d.Line)
			sb.WriteString(prefix)
			sb.WriteString(lines[d.Line-1])
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
