package output

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render replaces <name>…</name> markup with the named style applied to the
// enclosed segment. Unknown style names fall back to the unstyled segment
// rather than failing; unmatched tags are emitted literally.
func (o *Output) Render(text string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(text, '<')
		if open < 0 {
			b.WriteString(text)
			return b.String()
		}
		name, rest, ok := scanTag(text[open:])
		if !ok {
			b.WriteString(text[:open+1])
			text = text[open+1:]
			continue
		}
		closing := "</" + name + ">"
		end := strings.Index(rest, closing)
		if end < 0 {
			b.WriteString(text[:open+1])
			text = text[open+1:]
			continue
		}
		b.WriteString(text[:open])
		b.WriteString(o.styleSegment(name, o.Render(rest[:end])))
		text = rest[end+len(closing):]
	}
}

// scanTag reads "<name>" at the start of s and returns the name and the
// text after the tag.
func scanTag(s string) (name, rest string, ok bool) {
	end := strings.IndexByte(s, '>')
	if end < 2 {
		return "", "", false
	}
	name = s[1:end]
	for _, r := range name {
		if !isTagRune(r) {
			return "", "", false
		}
	}
	return name, s[end+1:], true
}

func isTagRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

func (o *Output) styleSegment(name, text string) string {
	style, ok := o.styles[name]
	if !ok {
		return text
	}
	if o.profile == termenv.Ascii {
		return text
	}
	return style.render(o.renderer, text)
}
