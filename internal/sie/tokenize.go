package sie

import "strings"

// Tokenize splits one record line into fields on ' '. A '"' toggles quoting
// and is dropped; spaces inside quotes are kept. Consecutive spaces give
// empty fields and the last field is always emitted, even when empty. An
// unterminated quote keeps the rest of the line as one field.
func Tokenize(line string) []string {
	var fields []string
	var cur strings.Builder
	quoted := false

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, cur.String())
}

// field returns fields[i], or "" when the line is too short.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
