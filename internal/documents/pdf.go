package documents

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const MimePDF = "application/pdf"

var (
	ErrEmptyDocument = errors.New("documents: empty document")
	ErrUnreadablePDF = errors.New("documents: unreadable pdf")
)

// IsPDF checks the declared content type first and falls back to the magic bytes.
func IsPDF(contentType string, data []byte) bool {
	if strings.EqualFold(strings.TrimSpace(strings.Split(contentType, ";")[0]), MimePDF) {
		return true
	}
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// ExtractPDFText returns the plain text of every page.
func ExtractPDFText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	// the parser panics on some malformed cross-reference tables
	defer func() {
		if recovered := recover(); recovered != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadablePDF, recovered)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	return strings.TrimSpace(buffer.String()), nil
}
