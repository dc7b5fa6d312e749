// Package diag defines the diagnostic model shared by the scanner, the tree
// builder and the driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable records of lexical and syntactic
//     failures with stable codes (LEXxxxx, SYNxxxx, IOxxxx).
//   - Offer light-weight utilities (Reporter, Bag) so producers can emit
//     diagnostics without coupling to storage or formatting.
//   - Carry the same information as a Go error (*Error) so library callers
//     get a single descriptive error value.
//
// # Scope
//
// Package diag does no formatting beyond the one-line short form, no IO and
// no CLI integration. Rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with stable string form.
//   - Message – short human oriented text.
//   - Primary – the source.Span pointing to the issue.
//   - Notes – secondary spans, e.g. the container a failure happened in.
//
// # Errors
//
// Both pipeline stages stop at the first failure and return *Error. A table
// or list failure wraps the inner error (Cause) with SynNestedTable /
// SynNestedList, so the chain reads outer-to-inner. Flatten turns the chain
// back into one Diagnostic whose notes list the enclosing containers.
// HasCode / CodeOf / RootCode inspect a chain via errors.As.
package diag
