package snippet

import (
	"context"
	"io"
	"strings"

	"github.com/go-courier/logr"
	"github.com/pkg/errors"
)

// Reader assembles snippets from a line-oriented stream, one per call to
// Next. The cursor is monotonic: lines are never re-read, and once the
// stream is exhausted Next keeps reporting no more snippets.
type Reader struct {
	lines  *lineSource
	faults int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{lines: newLineSource(r)}
}

// Next scans forward for the next complete snippet.
//
// Scanning starts at the first line containing "--"; the snippet name is
// that line with every "--" removed and surrounding whitespace trimmed.
// Subsequent lines accumulate as the body until a line containing
// "-- end --", which is discarded. Both markers match as substrings, which
// is the established grammar of the file format: a body line that merely
// contains "-- end --" still terminates the snippet.
//
// A stream that ends mid-snippet drops the partial snippet. A line read
// fault is treated as end of input: logged and counted (see Faults), never
// surfaced. The context carries the logger only; there is no cancellation.
func (r *Reader) Next(ctx context.Context) (Snippet, bool) {
	var (
		name       string
		collected  []string
		collecting bool
	)

	for {
		line, err := r.lines.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.faults++
				logr.FromContext(ctx).Warn(errors.Wrap(err, "snippet read fault, treating as end of input"))
			}
			return Snippet{}, false
		}

		if !collecting {
			if strings.Contains(line, marker) {
				name = strings.TrimSpace(strings.ReplaceAll(line, marker, ""))
				collecting = true
			}
			continue
		}

		if strings.Contains(line, endMarker) {
			return New(name, strings.Join(collected, "\n")), true
		}

		collected = append(collected, line)
	}
}

// Faults reports how many read faults have been absorbed so far.
func (r *Reader) Faults() int {
	return r.faults
}
