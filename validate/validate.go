// Package validate holds the pure credential policy checks used by the
// auth state machine. Nothing here touches storage or emits output, so
// every check is independently unit-testable.
package validate

import "strings"

// Policy carries the two tunable knobs of the demo's identity space: the
// single allowed mail provider and the minimum password length.
type Policy struct {
	AllowedDomainSuffix string // suffix match, e.g. "@gmail.com"
	MinPasswordLength   int
}

// EmailShape reports whether s is structurally an email address: exactly
// one "@" with a non-empty local part and a domain containing a dot.
// This is a pragmatic check, not RFC 5322 grammar.
func EmailShape(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	domain := s[at+1:]
	if domain == "" || strings.ContainsAny(s, " \t") {
		return false
	}
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// AllowedDomain reports whether the email belongs to the policy's single
// allowed provider. The match is a case-insensitive suffix check, so
// "User@GMAIL.com" passes the "@gmail.com" policy.
func (p Policy) AllowedDomain(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(p.AllowedDomainSuffix))
}

// PasswordAcceptable reports whether the password meets the minimum
// length. Length is the only composition rule in this demo.
func (p Policy) PasswordAcceptable(password string) bool {
	return len(password) >= p.MinPasswordLength
}
