package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/htmlint/htmlint"
	"github.com/jessevdk/go-flags"
)

type cmdopts struct {
	JSON    bool `long:"json" description:"emit diagnostics as JSON"`
	Version bool `long:"version" description:"show version and exit"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("htmlint: using htmlint version %s\n", htmlint.Version)
}

func showUsage() {
	fmt.Printf(`Usage : htmlint [options] HTMLfiles ...
	Validate the HTML files against the content-model rules of the
	HTML Living Standard and report diagnostics
	--json    : emit diagnostics as JSON
	--version : display the version of the htmlint library used
`)
}

type namedInput struct {
	name string
	r    io.Reader
}

type renderedDiag struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Tag    string `json:"tag"`
	Reason string `json:"reason,omitempty"`
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 2
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan namedInput)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filenames present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- namedInput{name: f, r: fh}
			}
		}()
	case !isTty(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- namedInput{name: "<stdin>", r: os.Stdin}
		}()
	default:
		showUsage()
		return 2
	}

	ctx := context.Background()
	found := false
	for in := range inputCh {
		buf, err := io.ReadAll(in.r)
		if c, ok := in.r.(io.Closer); ok {
			c.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 2
		}

		tree, err := htmlint.Parse(ctx, buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", in.name, err)
			return 2
		}

		diags := htmlint.Validate(ctx, tree)
		if len(diags) > 0 {
			found = true
		}
		if err := render(os.Stdout, in.name, buf, diags, opts.JSON); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 2
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 2
	default:
	}

	if found {
		return 1
	}
	return 0
}

func render(w io.Writer, name string, src []byte, diags []htmlint.Diagnostic, asJSON bool) error {
	rendered := make([]renderedDiag, 0, len(diags))
	for _, d := range diags {
		pos := htmlint.PositionOf(src, d.Span.Start)
		rendered = append(rendered, renderedDiag{
			File:   name,
			Line:   pos.Line,
			Column: pos.Column,
			Tag:    d.Tag.String(),
			Reason: d.Reason,
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rendered)
	}
	for _, r := range rendered {
		if r.Reason != "" {
			fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", r.File, r.Line, r.Column, r.Tag, r.Reason)
		} else {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", r.File, r.Line, r.Column, r.Tag)
		}
	}
	return nil
}

func isTty(f *os.File) bool {
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
