package snippet

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const maxLineSize = 1024 * 1024

// lineSource is a forward-only, fallible iterator over the lines of a
// stream. Input is decoded as UTF-8; a leading byte order mark (UTF-8,
// UTF-16LE or UTF-16BE) switches the decoder accordingly, and invalid
// UTF-8 in unmarked input is a read fault.
type lineSource struct {
	s   *bufio.Scanner
	err error
}

func newLineSource(r io.Reader) *lineSource {
	s := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(encoding.UTF8Validator)))
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineSource{s: s}
}

// Next returns the next line with the trailing "\n" (or "\r\n") removed.
// io.EOF signals clean end of input; any other error is a read fault.
// A fault is reported once, then the source just reads as exhausted.
func (l *lineSource) Next() (string, error) {
	if l.err != nil {
		return "", io.EOF
	}

	if !l.s.Scan() {
		l.err = l.s.Err()
		if l.err != nil {
			return "", l.err
		}
		l.err = io.EOF
		return "", io.EOF
	}

	return l.s.Text(), nil
}
