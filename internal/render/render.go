// Package render expands entry templates.
//
// A template is copied verbatim except for these directives:
//
//	%N  account name
//	%L  link
//	%U  username
//	%P  password
//
// '%' followed by any other character is kept as both characters, and a
// trailing '%' is kept as is. Substituted fields are never re-expanded.
package render

import "github.com/org/pw/pkg/models"

// ListTemplate is the fixed format used when listing search results.
const ListTemplate = "%N (%L) %U %P"

// Format expands template against r. The result is a new buffer which
// may contain the password; callers should zero it once written.
func Format(template string, r models.Record) []byte {
	out := make([]byte, 0, len(template)+len(r.Name)+len(r.Link)+len(r.Username)+len(r.Secret))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			out = append(out, c)
			continue
		}
		if i+1 == len(template) {
			out = append(out, '%')
			break
		}
		i++
		switch d := template[i]; d {
		case 'N':
			out = append(out, r.Name...)
		case 'L':
			out = append(out, r.Link...)
		case 'U':
			out = append(out, r.Username...)
		case 'P':
			out = append(out, r.Secret...)
		default:
			out = append(out, '%', d)
		}
	}
	return out
}
