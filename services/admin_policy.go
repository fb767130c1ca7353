package services

import (
	"crypto/subtle"
	"strings"
)

// AdminPolicy decides who is an admin without touching storage. It is
// evaluated on every check, so editing ADMIN_EMAILS takes effect on the next
// login or /me call.
type AdminPolicy struct {
	Emails     []string
	InviteCode string
}

func (p AdminPolicy) IsBootstrapAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, allowed := range p.Emails {
		if strings.ToLower(allowed) == email {
			return true
		}
	}
	return false
}

func (p AdminPolicy) MatchesInviteCode(code string) bool {
	code = strings.TrimSpace(code)
	if p.InviteCode == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(p.InviteCode)) == 1
}
