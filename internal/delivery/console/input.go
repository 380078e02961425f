package console

import (
	"bufio"
	"io"
	"strings"
)

// LineSource satrma-satr kiritish manbai. Kiritish tugaganda io.EOF qaytaradi.
type LineSource interface {
	ReadLine() (string, error)
}

type readerSource struct {
	reader *bufio.Reader
}

// NewReaderSource io.Reader ustidan LineSource yaratish. Qator uzunligi cheklanmagan.
func NewReaderSource(r io.Reader) LineSource {
	return &readerSource{reader: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		// Oxirgi qator yangi qatorsiz tugashi mumkin
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
