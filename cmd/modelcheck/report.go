package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/source"
)

type reporter interface {
	add(name string, input any, res modelcheck.Result) error
	flush() error
}

func newReporter(format string, w io.Writer) (reporter, error) {
	switch format {
	case "text", "":
		return &textReporter{w: w, p: newPalette(w)}, nil
	case "json":
		return &docReporter{w: w, f: source.FormatJSON}, nil
	case "yaml":
		return &docReporter{w: w, f: source.FormatYAML}, nil
	case "patch":
		return &patchReporter{w: w}, nil
	case "diff":
		return &diffReporter{w: w, p: newPalette(w)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// palette colors output only when it goes to a terminal.
type palette struct {
	ok, err, warn, dim *color.Color
}

func newPalette(w io.Writer) palette {
	p := palette{
		ok:   color.New(color.FgGreen, color.Bold),
		err:  color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		dim:  color.New(color.Faint),
	}
	f, isFile := w.(*os.File)
	if !isFile || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		for _, c := range []*color.Color{p.ok, p.err, p.warn, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

type textReporter struct {
	w io.Writer
	p palette
}

func (r *textReporter) add(name string, _ any, res modelcheck.Result) error {
	if res.OK() {
		fmt.Fprintf(r.w, "%s: %s (%d warnings)\n", name, r.p.ok.Sprint("ok"), len(res.Warnings))
		printIssues(r.w, "", res.Warnings, &r.p)
		return nil
	}
	fmt.Fprintf(r.w, "%s: %s (%d errors)\n", name, r.p.err.Sprint("errors"), len(res.Errors))
	printIssues(r.w, "", res.Errors, &r.p)
	return nil
}

func (r *textReporter) flush() error { return nil }

// printIssues writes one line per issue. A nil palette writes plain text.
func printIssues(w io.Writer, header string, iss modelcheck.Issues, p *palette) {
	if header != "" {
		fmt.Fprintf(w, "%s: invalid model\n", header)
	}
	for _, it := range iss {
		label := "error"
		if it.Code == modelcheck.CodeTypeCoercion || it.Code == modelcheck.CodeExtraKey {
			label = "warning"
		}
		if p != nil {
			if label == "error" {
				label = p.err.Sprint(label)
			} else {
				label = p.warn.Sprint(label)
			}
		}
		fmt.Fprintf(w, "  %s %s: %s\n", label, it.Pointer(), it.Message)
	}
}

type docEntry struct {
	Input  string            `json:"input" yaml:"input"`
	Result modelcheck.Result `json:"result" yaml:"result"`
}

type docReporter struct {
	w       io.Writer
	f       source.Format
	entries []docEntry
}

func (r *docReporter) add(name string, _ any, res modelcheck.Result) error {
	r.entries = append(r.entries, docEntry{Input: name, Result: res})
	return nil
}

func (r *docReporter) flush() error {
	b, err := source.Encode(r.f, r.entries)
	if err != nil {
		return err
	}
	_, err = r.w.Write(b)
	return err
}

type patchReporter struct{ w io.Writer }

func (r *patchReporter) add(name string, input any, res modelcheck.Result) error {
	if !res.OK() {
		fmt.Fprintf(r.w, "# %s: %d errors\n", name, len(res.Errors))
		printIssues(r.w, "", res.Errors, nil)
		return nil
	}
	before, err := source.EncodeJSON(input)
	if err != nil {
		return err
	}
	after, err := source.EncodeJSON(res.Sanitized)
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return fmt.Errorf("%s: merge patch: %w", name, err)
	}
	fmt.Fprintf(r.w, "# %s\n%s\n", name, patch)
	return nil
}

func (r *patchReporter) flush() error { return nil }

type diffReporter struct {
	w io.Writer
	p palette
}

func (r *diffReporter) add(name string, input any, res modelcheck.Result) error {
	if !res.OK() {
		fmt.Fprintf(r.w, "# %s: %d errors\n", name, len(res.Errors))
		printIssues(r.w, "", res.Errors, &r.p)
		return nil
	}
	before, err := source.EncodeJSON(input)
	if err != nil {
		return err
	}
	after, err := source.EncodeJSON(res.Sanitized)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.w, "--- %s\n+++ %s (sanitized)\n", name, name)
	for _, line := range lineDiff(string(before), string(after)) {
		switch line[0] {
		case '-':
			r.p.err.Fprintln(r.w, line)
		case '+':
			r.p.ok.Fprintln(r.w, line)
		default:
			r.p.dim.Fprintln(r.w, line)
		}
	}
	return nil
}

func (r *diffReporter) flush() error { return nil }

// lineDiff returns the lines of a and b prefixed with "-", "+" or " ".
func lineDiff(a, b string) []string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var out []string
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, prefix+strings.TrimSuffix(l, "\n"))
		}
	}
	return out
}
