package snippet

import (
	"bytes"
	"context"
	"iter"
	"os"
	"slices"

	"github.com/pkg/errors"
)

// phase tracks which source an iteration session is currently draining.
// The transition from streaming to replaying is one-way per session.
type phase int

const (
	phaseStreaming phase = iota
	phaseReplaying
)

// File is a logical sequence of snippets: the parsed contents of a backing
// snippet file, if any, followed by snippets added in memory.
//
// Iteration via Next is forward-only and stateful. The streaming phase
// drains the backing file one snippet per call; once the stream reports
// exhaustion the sequence switches, irreversibly for the session, to
// replaying the in-memory list. A File is not safe for concurrent use.
type File struct {
	path string

	src    *os.File
	stream *Reader
	phase  phase

	snippets []Snippet
	replay   int
}

// NewFile returns an empty sequence with no backing file.
func NewFile() *File {
	return &File{phase: phaseReplaying}
}

// Load opens the snippet file at path for incremental reading. The file is
// held open until Close; snippets are parsed on demand by Next.
func Load(path string) (*File, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open snippet file %q", path)
	}

	return &File{
		path:   path,
		src:    src,
		stream: NewReader(src),
	}, nil
}

// FromSnippets returns a sequence holding the given snippets, with no
// backing file.
func FromSnippets(snippets ...Snippet) *File {
	return &File{
		phase:    phaseReplaying,
		snippets: slices.Clone(snippets),
	}
}

// Add appends a snippet to the tail of the in-memory list. It never touches
// the backing stream: the snippet becomes visible to All and to any
// iteration session that has not yet replayed past its position.
func (f *File) Add(s Snippet) {
	f.snippets = append(f.snippets, s)
}

// Next returns the next snippet in the sequence.
//
// While the backing stream has snippets left they are returned in file
// order. Once the stream reports exhaustion the sequence permanently falls
// through to the in-memory list for the rest of the session. The second
// result is false when both sources are spent, and on every call thereafter.
func (f *File) Next(ctx context.Context) (Snippet, bool) {
	if f.phase == phaseStreaming {
		if s, ok := f.stream.Next(ctx); ok {
			return s, true
		}
		f.phase = phaseReplaying
	}

	if f.replay < len(f.snippets) {
		s := f.snippets[f.replay]
		f.replay++
		return s, true
	}

	return Snippet{}, false
}

// Iter adapts Next into a single-use iter.Seq. It shares cursor state with
// Next and follows the same phase rules.
func (f *File) Iter(ctx context.Context) iter.Seq[Snippet] {
	return func(yield func(Snippet) bool) {
		for {
			s, ok := f.Next(ctx)
			if !ok {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// All returns every snippet in the sequence, backing file contents first,
// in-memory snippets after.
//
// Unlike Next it is non-destructive and repeatable. When a backing path is
// attached the file is re-opened and drained through an independent Reader,
// so in-progress Next state is never disturbed; the fresh handle is closed
// before All returns.
func (f *File) All(ctx context.Context) ([]Snippet, error) {
	if f.path == "" {
		return slices.Clone(f.snippets), nil
	}

	src, err := os.Open(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open snippet file %q", f.path)
	}
	defer src.Close()

	var all []Snippet

	r := NewReader(src)
	for {
		s, ok := r.Next(ctx)
		if !ok {
			break
		}
		all = append(all, s)
	}

	return append(all, f.snippets...), nil
}

// Lookup returns the first snippet whose name equals name exactly,
// searching file order then insertion order, or nil when absent. Duplicate
// names are allowed; later duplicates are never returned.
func (f *File) Lookup(ctx context.Context, name string) (*Snippet, error) {
	all, err := f.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].name == name {
			return &all[i], nil
		}
	}

	return nil, nil
}

// Bytes renders the whole sequence in on-disk form, with a newline after
// each snippet.
func (f *File) Bytes(ctx context.Context) ([]byte, error) {
	all, err := f.All(ctx)
	if err != nil {
		return nil, err
	}

	b := bytes.NewBuffer(nil)
	for _, s := range all {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}

// Save writes the serialized sequence to path.
func (f *File) Save(ctx context.Context, path string) error {
	data, err := f.Bytes(ctx)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, os.ModePerm)
	if err != nil {
		return errors.Wrapf(err, "create snippet file %q", path)
	}
	defer file.Close()

	_, err = file.Write(data)
	return err
}

// Faults reports how many read faults the current iteration session has
// absorbed. Always zero without a backing stream.
func (f *File) Faults() int {
	if f.stream == nil {
		return 0
	}
	return f.stream.Faults()
}

// Close releases the backing file handle, if any. A closed stream reads as
// exhausted, so the sequence stays usable for in-memory iteration, and All
// keeps working through its own re-opened handle.
func (f *File) Close() error {
	if f.src == nil {
		return nil
	}

	err := f.src.Close()
	f.src = nil
	f.phase = phaseReplaying

	return err
}
