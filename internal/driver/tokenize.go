package driver

import (
	"mcl/internal/diag"
	"mcl/internal/lexer"
	"mcl/internal/source"
	"mcl/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err — первая лексическая ошибка (уже лежит в Bag); Tokens тогда nil.
	Err error
}

// Tokenize loads path and runs the scanner over it. The returned error is
// only for I/O failures; lexical errors land in the result.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeBytes is Tokenize for in-memory input (stdin).
func TokenizeBytes(name string, data []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, data)
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	tokens, err := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     err,
	}
}
