package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"mcl/internal/source"
	"mcl/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on a token stream:
// 1) the stream is non-empty and ends with exactly one EOF token
// 2) every span belongs to sf and lies within its content bounds
// 3) spans do not overlap and go in source order
// 4) Start/End line-column pairs agree with the file's line index
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	if last := tokens[len(tokens)-1]; last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, want EOF", last.Kind)
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		if tok.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d: inverted span %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		if want := sf.Position(sp.Start).LineCol; tok.Start != want {
			return fmt.Errorf("token %d: start %v, line index says %v", i, tok.Start, want)
		}
		if want := sf.Position(sp.End).LineCol; tok.End != want {
			return fmt.Errorf("token %d: end %v, line index says %v", i, tok.End, want)
		}
		prevEnd = sp.End
	}
	return nil
}
