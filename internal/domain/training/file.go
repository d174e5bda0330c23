package training

import (
	"errors"
	"os"
	"strings"
)

var (
	ErrFileNotFound   = errors.New("training file does not exist")
	ErrNotRegularFile = errors.New("training path is not a regular file")
	ErrNotPDF         = errors.New("training file is not a pdf")
)

// ValidatePDFPath checks that path names an existing regular file ending in ".pdf".
func ValidatePDFPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return ErrFileNotFound
	}
	if !info.Mode().IsRegular() {
		return ErrNotRegularFile
	}
	if !strings.HasSuffix(path, ".pdf") {
		return ErrNotPDF
	}
	return nil
}
