package console

import (
	"errors"
	"net/url"
	"os"
	"regexp"

	"gym_admin/internal/domain/membership"
	"gym_admin/internal/domain/training"
)

// Messages shown to the operator when an answer is rejected.
const (
	msgInvalidEmail   = "Please enter a valid email"
	msgInvalidPath    = "Please enter a valid file path"
	msgInvalidPDFPath = "Please enter a valid pdf file path"
	msgInvalidToken   = "Please enter a valid JWT Token"
	msgInvalidURL     = "Please enter a valid URL"
	msgInvalidDate    = "Please enter a date as d/m/yyyy"
)

var errInvalidToken = errors.New("access token is not a three-segment JWT")
var errInvalidURL = errors.New("url must be absolute with scheme and host")

// three base64url segments of at least two characters, dot separated
var jwtPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{2,}(?:\.[A-Za-z0-9_-]{2,}){2}$`)

// answerError carries the operator-facing message while keeping the domain
// error reachable through errors.Is.
type answerError struct {
	message string
	cause   error
}

func (e *answerError) Error() string { return e.message }
func (e *answerError) Unwrap() error { return e.cause }

func rejected(message string, cause error) error {
	return &answerError{message: message, cause: cause}
}

func validateEmailAnswer(answer string) error {
	if err := membership.ValidateEmail(answer); err != nil {
		return rejected(msgInvalidEmail, err)
	}
	return nil
}

func validateFileAnswer(answer string) error {
	info, err := os.Stat(answer)
	if err != nil {
		return rejected(msgInvalidPath, training.ErrFileNotFound)
	}
	if !info.Mode().IsRegular() {
		return rejected(msgInvalidPath, training.ErrNotRegularFile)
	}
	return nil
}

func validatePDFAnswer(answer string) error {
	err := training.ValidatePDFPath(answer)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, training.ErrNotPDF):
		return rejected(msgInvalidPDFPath, err)
	default:
		return rejected(msgInvalidPath, err)
	}
}

func validateTokenAnswer(answer string) error {
	if !jwtPattern.MatchString(answer) {
		return rejected(msgInvalidToken, errInvalidToken)
	}
	return nil
}

func validateURLAnswer(answer string) error {
	u, err := url.Parse(answer)
	if err != nil {
		return rejected(msgInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return rejected(msgInvalidURL, errInvalidURL)
	}
	return nil
}

func validateDateAnswer(answer string) error {
	if _, err := parseDate(answer); err != nil {
		return rejected(msgInvalidDate, err)
	}
	return nil
}
