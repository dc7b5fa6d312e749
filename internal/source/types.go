package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (stdin, test, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
)

// File captures metadata and content for a single MCL document.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // смещения всех '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
// Col counts bytes, not runes.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Position is a LineCol paired with its 0-based byte offset.
type Position struct {
	LineCol
	Off uint32
}
