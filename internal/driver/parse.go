package driver

import (
	"fmt"

	"mcl/internal/diag"
	"mcl/internal/lexer"
	"mcl/internal/observ"
	"mcl/internal/parser"
	"mcl/internal/source"
	"mcl/internal/value"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Value   value.Value
	Bag     *diag.Bag
	// Err — ошибка лексера или парсера, её диагностика уже в Bag.
	Err    error
	Timer  *observ.Timer
	Cached bool
}

// Parse loads path and parses it. The returned error is only for I/O
// failures; document errors are reported through the result.
func Parse(path string, opts Options) (*ParseResult, error) {
	timer := observ.NewTimer()
	idx := timer.Begin("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	return parseFile(fs.Get(fileID), fs, opts, timer, nil), nil
}

// ParseBytes parses in-memory input registered under name.
func ParseBytes(name string, data []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, data)
	return parseFile(fs.Get(fileID), fs, opts, observ.NewTimer(), nil)
}

func parseFile(file *source.File, fs *source.FileSet, opts Options, timer *observ.Timer, sink ProgressSink) *ParseResult {
	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
		Timer:   timer,
	}
	reporter := diag.BagReporter{Bag: res.Bag}

	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Hash, opts.Parser)
		if v, ok := lookupCache(opts.Cache, key, file, reporter, timer); ok {
			res.Value = v
			res.Cached = true
			return res
		}
	}

	emit(sink, Event{File: file.Path, Stage: StageTokenize, Status: StatusWorking})
	idx := timer.Begin("tokenize")
	tokens, err := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	timer.End(idx, fmt.Sprintf("%d tokens", len(tokens)))
	if err != nil {
		res.Err = err
		return res
	}

	emit(sink, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	popts := opts.Parser
	popts.Reporter = reporter
	idx = timer.Begin("parse")
	v, err := parser.Parse(tokens, popts)
	timer.End(idx, "")
	if err != nil {
		res.Err = err
		return res
	}
	res.Value = v

	if opts.Cache != nil {
		idx = timer.Begin("cache store")
		if err := opts.Cache.Put(key, &DiskPayload{Path: file.Path, Value: v}); err != nil {
			diag.ReportWarning(reporter, diag.IOCacheError, source.Span{File: file.ID},
				"cache write failed: "+err.Error()).Emit()
		}
		timer.End(idx, "")
	}
	return res
}

// lookupCache — ошибки чтения кэша не фатальны: предупреждение и обычный разбор.
func lookupCache(cache *DiskCache, key Digest, file *source.File, r diag.Reporter, timer *observ.Timer) (value.Value, bool) {
	idx := timer.Begin("cache lookup")
	var payload DiskPayload
	ok, err := cache.Get(key, &payload)
	if err != nil {
		diag.ReportWarning(r, diag.IOCacheError, source.Span{File: file.ID},
			"cache read failed: "+err.Error()).Emit()
	}
	note := "miss"
	if ok {
		note = "hit"
	}
	timer.End(idx, note)
	return payload.Value, ok
}
