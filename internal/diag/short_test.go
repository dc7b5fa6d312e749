package diag

import (
	"testing"

	"mcl/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("testdata/sample.mcl", []byte("a\nb {\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnclosedTable,
			Message:  "unclosed table\nsecond line",
			Primary:  source.Span{File: file, Start: 4, End: 5},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 6, End: 6}, Msg: "input ends here"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SynInfo,
			Message:  "first",
			Primary:  source.Span{File: file, Start: 0, End: 1},
		},
	}

	expected := "warning SYN2000 testdata/sample.mcl:1:1 first\n" +
		"error SYN2008 testdata/sample.mcl:2:3 unclosed table second line\n" +
		"note SYN2008 testdata/sample.mcl:3:1 input ends here"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatShortDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
