package auth

import "strings"

// isValidEmail checks for a simple local@domain.tld shape. This is
// deliberately not full RFC 5322: both parts must be non-empty, must not
// start or end with a dot, must not contain a doubled dot, and the
// domain must contain at least one dot.
func isValidEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}

	local, domain := s[:at], s[at+1:]
	if !validEmailPart(local) || !validEmailPart(domain) {
		return false
	}

	return strings.Contains(domain, ".")
}

func validEmailPart(part string) bool {
	if part == "" {
		return false
	}
	if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
		return false
	}
	return !strings.Contains(part, "..")
}

// isStrongPassword requires minLength characters with at least one
// lowercase letter, one uppercase letter, one digit, and one symbol
// (anything outside [A-Za-z0-9]).
func isStrongPassword(s string, minLength int) bool {
	if len(s) < minLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

// normalizeEmail trims whitespace and lowercases; the normalized form is
// the login key and the value stored under the unique index
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
