package render

import (
	"unicode/utf8"
)

// Span is the byte range [Start, End) of one wrapped line.
type Span struct {
	Start, End int
}

// Wrap breaks buf into lines of at most cols bytes, breaking at spaces where it can and at newlines always. The
// spans point into buf; nothing is copied, so wiping buf wipes every line.
func Wrap(buf []byte, cols int) []Span {
	if cols <= 0 {
		return nil
	}
	var spans []Span
	for i := 0; i < len(buf); {
		end := i
		for end < len(buf) && buf[end] != '\n' {
			end++
		}
		spans = wrapParagraph(spans, buf, i, end, cols)
		i = end + 1
	}
	return spans
}

func wrapParagraph(spans []Span, buf []byte, s, e, cols int) []Span {
	if s == e {
		return append(spans, Span{s, s})
	}
	for s < e {
		if e-s <= cols {
			return append(spans, Span{s, e})
		}

		brk := -1
		// a space right after the last column is a fine place to break too
		for j := s + cols; j > s; j-- {
			if buf[j] == ' ' {
				brk = j
				break
			}
		}

		if brk < 0 {
			// no space; split the word, but not in the middle of a rune
			cut := s + cols
			for cut > s+1 && !utf8.RuneStart(buf[cut]) {
				cut--
			}
			spans = append(spans, Span{s, cut})
			s = cut
		} else {
			end := brk
			for end > s && buf[end-1] == ' ' {
				end--
			}
			spans = append(spans, Span{s, end})
			s = brk + 1
		}

		for s < e && buf[s] == ' ' {
			s++
		}
	}
	return spans
}
