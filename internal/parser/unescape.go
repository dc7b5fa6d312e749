package parser

import "strings"

// Unescape decodes backslash escapes of a string body:
// \n \r \t become control characters, any other escaped character
// (\" \' \\ \` included) stands for itself, a trailing lone backslash is dropped.
func Unescape(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(raw) {
			break
		}
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
