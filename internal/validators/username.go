package validators

import (
	"errors"
	"strings"
)

var ErrInvalidUsername = errors.New("invalid_username")

// NormalizeUsername trims and lowercases a username. An email address is
// reduced to its local part.
func NormalizeUsername(username string) string {
	u := strings.ToLower(strings.TrimSpace(username))
	if at := strings.IndexByte(u, '@'); at >= 0 {
		u = u[:at]
	}
	return u
}

// UsernameToEmail maps a campus username to its address in domain.
func UsernameToEmail(username, domain string) (string, error) {
	u := NormalizeUsername(username)
	if u == "" || strings.ContainsAny(u, " \t/\\") {
		return "", ErrInvalidUsername
	}
	return u + "@" + strings.TrimPrefix(domain, "@"), nil
}
