package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LBrace opens a table.
	LBrace // {
	// RBrace closes a table.
	RBrace // }
	// LBracket opens a list.
	LBracket // [
	// RBracket closes a list.
	RBracket // ]

	// Ident represents a bareword.
	Ident
	// StringLit represents a "quoted" string.
	StringLit
	// TemplateLit represents a `template` string.
	TemplateLit
	// NumberLit represents an integer or decimal literal.
	NumberLit
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Ident:       "Ident",
	StringLit:   "StringLit",
	TemplateLit: "TemplateLit",
	NumberLit:   "NumberLit",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	KwNull:      "KwNull",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns a short user-facing description used in diagnostics.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Ident:
		return "identifier"
	case StringLit:
		return "string"
	case TemplateLit:
		return "template string"
	case NumberLit:
		return "number"
	case KwTrue:
		return "'true'"
	case KwFalse:
		return "'false'"
	case KwNull:
		return "'null'"
	default:
		return "invalid token"
	}
}
