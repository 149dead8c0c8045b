package service

import "strings"

// Slugify derives a URL slug from a display name: lowercase, whitespace
// runs collapse to a single hyphen, anything outside [a-z0-9-] is dropped.
// "Televizorlar №1!" -> "televizorlar-1".
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if b.Len() > 0 {
				pendingHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
