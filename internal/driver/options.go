package driver

import (
	"mcl/internal/parser"
)

// DefaultExtensions are the file suffixes ParseDir picks up by default.
var DefaultExtensions = []string{".mcl"}

// Options configure Parse, ParseBytes and ParseDir.
type Options struct {
	MaxDiagnostics int
	Parser         parser.Options // Reporter заполняется драйвером
	// Cache, если не nil, хранит готовые деревья по хэшу содержимого.
	Cache *DiskCache
	// Extensions для ParseDir; пусто — DefaultExtensions.
	Extensions []string
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}
