/*
Package snippet parses and serializes snippet files: named multi-line text
blocks delimited by "-- <name> --" and "-- end --" lines.

Parsing is incremental. Lines are pulled from the backing stream on demand,
one snippet per read, rather than materializing the whole file in memory.
*/
package snippet

import (
	"strings"
)

const (
	marker    = "--"
	endMarker = "-- end --"
)

// Snippet is a named multi-line block of text.
type Snippet struct {
	name string
	body string
}

func New(name string, body string) Snippet {
	return Snippet{name: name, body: body}
}

func (s Snippet) Name() string {
	return s.name
}

func (s Snippet) Body() string {
	return s.body
}

// Append adds text to the end of the snippet body.
func (s *Snippet) Append(text string) {
	s.body += text
}

// String renders the snippet in on-disk form, without a trailing newline:
//
//	-- <name> --
//	<body>
//	-- end --
func (s Snippet) String() string {
	b := &strings.Builder{}
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(s.name)
	b.WriteString(" ")
	b.WriteString(marker)
	b.WriteString("\n")
	b.WriteString(s.body)
	b.WriteString("\n")
	b.WriteString(endMarker)
	return b.String()
}
