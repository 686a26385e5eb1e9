package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/octohelm/snipfile/pkg/snippet"
)

var (
	write = flag.Bool("w", false, "rewrite files in place instead of printing to stdout")
	dump  = flag.Bool("v", false, "dump parsed snippets to stderr")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	for _, path := range flag.Args() {
		if err := format(ctx, path); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
			return
		}
	}
}

func format(ctx context.Context, path string) error {
	f, err := snippet.Load(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if *dump {
		all, err := f.All(ctx)
		if err != nil {
			return err
		}
		spew.Fdump(os.Stderr, all)
	}

	if *write {
		return f.Save(ctx, path)
	}

	data, err := f.Bytes(ctx)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
