package diagfmt

import (
	"fmt"
	"io"

	"mcl/internal/source"
	"mcl/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		// позиции считает сканер, FileSet нужен только для конца многострочных токенов
		startPos, endPos := tok.Start, tok.End
		if fs != nil && int(tok.Span.File) < fs.Len() {
			startPos, endPos = fs.Resolve(tok.Span)
		}

		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if len(tok.Raw) > 0 || tok.IsString() {
			fmt.Fprintf(w, " %q", tok.Raw)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		start, end := tok.StartPos(), tok.EndPos()
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text(),
			Start: start.Off,
			End:   end.Off,
			Line:  start.Line,
			Col:   start.Col,
		})

		if tok.Kind == token.EOF {
			break
		}
	}

	return writeIndentedJSON(w, output)
}
