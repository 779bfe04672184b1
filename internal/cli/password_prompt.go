package cli

import (
	"errors"
	"io"
	"strings"
)

const maxPromptLineBytes = 1024

var errStdinUnavailable = errors.New("stdin unavailable")

// readPromptLine reads byte by byte so nothing past the newline is consumed
// before the next prompt.
func readPromptLine(reader io.Reader) ([]byte, error) {
	var line strings.Builder
	buffer := make([]byte, 1)
	for line.Len() < maxPromptLineBytes {
		read, err := reader.Read(buffer)
		if read == 1 {
			if buffer[0] == '\n' {
				break
			}
			line.WriteByte(buffer[0])
		}
		if errors.Is(err, io.EOF) {
			if line.Len() == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return []byte(strings.TrimRight(line.String(), "\r")), nil
}
