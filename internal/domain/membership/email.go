package membership

import (
	"errors"
	"regexp"
)

var ErrInvalidEmail = errors.New("invalid email address")

// local-part of word characters, '-' and '.', then one or more dot-terminated
// labels and a final label of at least two characters.
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,}$`)

// ValidateEmail checks the shape of an address before it reaches the backend.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
