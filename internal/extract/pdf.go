package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ResumeText extracts plain text from PDF bytes. The caller decides whether
// the result is usable; this reports an error only when the file cannot be
// read as a PDF at all. The pdf library panics on structurally corrupt files
// instead of returning an error, so the panic is converted here.
func ResumeText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	if len(data) == 0 {
		return "", errors.New("empty file")
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return NormalizeWhitespace(buf.String()), nil
}

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

// NormalizeWhitespace collapses runs of spaces and newlines and trims the
// result, matching how scraped and extracted text is fed to the model.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
