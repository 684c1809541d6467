package auth

import "time"

// Strategy issues and verifies session tokens for authenticated users.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

// Options configures token issuance.
type Options struct {
	TTL time.Duration
}
