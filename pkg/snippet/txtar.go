package snippet

import (
	"context"
	"strings"

	"golang.org/x/tools/txtar"
)

// Txtar converts the sequence to a txtar archive, one archive file per
// snippet. txtar file bodies are newline-terminated, so a body that does
// not end in "\n" gains one; FromTxtar removes exactly one.
func (f *File) Txtar(ctx context.Context) (*txtar.Archive, error) {
	all, err := f.All(ctx)
	if err != nil {
		return nil, err
	}

	a := &txtar.Archive{}
	for _, s := range all {
		body := s.Body()
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		a.Files = append(a.Files, txtar.File{
			Name: s.Name(),
			Data: []byte(body),
		})
	}
	return a, nil
}

// FromTxtar builds an in-memory sequence from a txtar archive, dropping the
// trailing newline txtar guarantees on each file body.
func FromTxtar(a *txtar.Archive) *File {
	f := NewFile()
	for _, file := range a.Files {
		f.Add(New(file.Name, strings.TrimSuffix(string(file.Data), "\n")))
	}
	return f
}
