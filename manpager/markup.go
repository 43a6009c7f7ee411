package manpager

import (
	"regexp"
	"strings"
)

// Roff span and sanitizing helpers for man(7) output.

func bold(text string) string {
	return `\fB` + text + `\fP`
}

func italic(text string) string {
	return `\fI` + text + `\fP`
}

// escapeDashes protects hyphens from being typeset as typographic
// dashes, so options like --bind survive copy and paste.
func escapeDashes(text string) string {
	return strings.ReplaceAll(text, "-", `\-`)
}

var (
	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// sanitize prepares running text for a man page: trims the edges,
// condenses whitespace runs, escapes dashes, and turns blank lines into
// the given paragraph macro (".PP" at top level, ".IP" inside a .TP
// entry).
func sanitize(text, paragraph string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	parts := paragraphBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = whitespaceRun.ReplaceAllString(strings.TrimSpace(part), " ")
		if part == "" {
			continue
		}
		out = append(out, escapeDashes(part))
	}
	return strings.Join(out, "\n"+paragraph+"\n")
}
