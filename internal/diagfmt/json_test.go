package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"mcl/internal/diag"
	"mcl/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("name \"demo\"\nbad \"unterminated\n")
	fileID := fs.AddVirtual("test.mcl", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexNewlineInString,
		source.Span{File: fileID, Start: 16, End: 29},
		"cannot use newline character in strings",
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", d.Severity)
	}
	if d.Code != "LEX1003" {
		t.Errorf("Expected code=LEX1003, got %s", d.Code)
	}
	if d.Location.File != "test.mcl" {
		t.Errorf("Expected file=test.mcl, got %s", d.Location.File)
	}
	if d.Location.StartByte != 16 || d.Location.EndByte != 29 {
		t.Errorf("unexpected byte range %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 5 {
		t.Errorf("Expected 2:5, got %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

// TestJSONNotes проверяет вывод заметок вложенных контейнеров
func TestJSONNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("doc.mcl", []byte("a { b [1 }"))

	d := diag.NewError(diag.SynInvalidValue, source.Span{File: fileID, Start: 9, End: 10}, "invalid value '}'").
		WithNote(source.Span{File: fileID, Start: 6, End: 7}, "failed creating a list").
		WithNote(source.Span{File: fileID, Start: 2, End: 3}, "failed creating a table")
	bag := diag.NewBag(10)
	bag.Add(d)

	for _, include := range []bool{false, true} {
		var buf bytes.Buffer
		if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: include}); err != nil {
			t.Fatal(err)
		}
		var output DiagnosticsOutput
		if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
			t.Fatal(err)
		}
		notes := output.Diagnostics[0].Notes
		if !include {
			if len(notes) != 0 {
				t.Errorf("notes must be omitted, got %+v", notes)
			}
			continue
		}
		if len(notes) != 2 {
			t.Fatalf("Expected 2 notes, got %d", len(notes))
		}
		if notes[0].Message != "failed creating a list" || notes[0].Location.StartCol != 7 {
			t.Errorf("unexpected first note %+v", notes[0])
		}
		if notes[1].Location.StartCol != 3 {
			t.Errorf("unexpected second note %+v", notes[1])
		}
	}
}

// TestJSONWithoutPositions проверяет JSON без позиций строк/колонок
func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mcl", []byte("a @"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 2, End: 3}, "unrecognized character '@'"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("start_line")) {
		t.Errorf("positions must be omitted:\n%s", buf.String())
	}
}

// TestJSONMax проверяет обрезку вывода
func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mcl", []byte("@ @ @"))

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: i * 2, End: i*2 + 1}, "unrecognized character '@'"))
	}

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if output.Count != 2 || len(output.Diagnostics) != 2 {
		t.Errorf("Max ignored: %+v", output)
	}
	if empty := BuildDiagnosticsOutput(nil, fs, JSONOpts{}); empty.Diagnostics == nil || empty.Count != 0 {
		t.Errorf("nil bag must give an empty list, got %+v", empty)
	}
}
