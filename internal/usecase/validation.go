package usecase

import (
	"strings"
	"unicode"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
)

// ValidateAddress checks that every shipping field is present. Field values
// are not format-checked beyond being non-empty.
func ValidateAddress(a model.Address) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"email", a.Email},
		{"address", a.Address},
		{"city", a.City},
		{"zip", a.Zip},
		{"country", a.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domainErrors.ValidationError{Field: "shippingAddress." + f.name, Reason: "required"}
		}
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address the way the store
// persists it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Slugify derives a URL slug from a name: lowercase, alphanumerics kept,
// runs of anything else collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
