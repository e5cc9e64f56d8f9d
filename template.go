package phpdate

import "strings"

// process walks the template byte by byte. Specifier letters are all ASCII,
// so multi-byte UTF-8 literals fall through the default branch untouched.
func (r *render) process(template string) string {
	var b strings.Builder
	b.Grow(len(template) + len(template)/2)

	escaped := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case isSpecifier(c):
			b.WriteString(r.resolve(c))
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
