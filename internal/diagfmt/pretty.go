package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mcl/internal/diag"
	"mcl/internal/source"
)

type palette struct {
	err, warn, info, note, loc, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgCyan),
		loc:    color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.loc, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	if int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity.String()), d.Code.ID(), d.Message)
		return
	}
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(file, fs, opts.PathMode), start.Line, start.Col)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.loc.Sprint(loc),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		d.Code.ID(),
		d.Message,
	)
	writeSnippet(w, file, start, end, opts, p)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		if int(note.Span.File) >= fs.Len() {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), note.Msg)
			continue
		}
		nfile := fs.Get(note.Span.File)
		nstart, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			p.note.Sprint("note:"),
			formatPath(nfile, fs, opts.PathMode), nstart.Line, nstart.Col,
			note.Msg,
		)
	}
}

func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts, p palette) {
	if start.Line == 0 {
		return
	}
	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := strings.TrimRight(file.GetLine(ln), "\r")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := strings.TrimRight(file.GetLine(start.Line), "\r")
	pad, width := caretLayout(line, start, end)
	if opts.Width > 0 && pad >= int(opts.Width) {
		return
	}
	marker := "^" + strings.Repeat("~", max(width-1, 0))
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
}

// caretLayout считает отступ и длину подчёркивания в колонках терминала.
// Колонки в LineCol байтовые, поэтому ширину берём от префикса строки.
func caretLayout(line string, start, end source.LineCol) (pad, width int) {
	from := min(int(start.Col)-1, len(line))
	from = max(from, 0)
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	to = max(to, from)

	pad = runewidth.StringWidth(strings.ReplaceAll(line[:from], "\t", " "))
	width = runewidth.StringWidth(line[from:to])
	if width == 0 {
		width = 1
	}
	return pad, width
}
