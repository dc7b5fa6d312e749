package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mcl/internal/diag"
	"mcl/internal/observ"
	"mcl/internal/source"
	"mcl/internal/value"
)

// ParseDirResult содержит результат разбора одного файла
type ParseDirResult struct {
	Path   string        // путь к файлу (как его вернул обход директории)
	FileID source.FileID // ID файла в FileSet
	Value  value.Value
	Bag    *diag.Bag // Диагностики
	Err    error     // ошибка загрузки или разбора
	Cached bool
	Timing *observ.Report
}

// ListFiles возвращает отсортированный список файлов с нужными расширениями
func ListFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, filepath.ToSlash(filepath.Clean(path)))
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir разбирает все подходящие файлы в директории параллельно.
// Результаты идут в порядке ListFiles независимо от jobs.
func ParseDir(ctx context.Context, dir string, opts Options, jobs int, sink ProgressSink) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагрузка последовательно: FileSet не потокобезопасен на запись
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			// пустая заглушка, чтобы у диагностики был путь
			fileID = fileSet.AddVirtual(path, nil)
			loadErrors[path] = err
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.maxDiagnostics())
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{File: fileIDs[path]},
					"failed to load file: "+loadErr.Error()).Emit()
				results[i] = ParseDirResult{Path: path, FileID: fileIDs[path], Bag: bag, Err: loadErr}
				emit(sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(started)})
				return nil
			}

			fileID := fileIDs[path]
			res := parseFile(fileSet.Get(fileID), fileSet, opts, observ.NewTimer(), sink)
			report := res.Timer.Report()
			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				Value:  res.Value,
				Bag:    res.Bag,
				Err:    res.Err,
				Cached: res.Cached,
				Timing: &report,
			}

			evt := Event{File: path, Stage: StageParse, Status: StatusDone, Cached: res.Cached, Elapsed: time.Since(started)}
			if res.Err != nil {
				evt.Status = StatusError
				evt.Err = res.Err
			}
			emit(sink, evt)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	emit(sink, Event{Stage: StageParse, Status: StatusDone})
	return fileSet, results, nil
}

// CountFailed returns how many results carry an error.
func CountFailed(results []ParseDirResult) int {
	n := 0
	for i := range results {
		if results[i].Err != nil {
			n++
		}
	}
	return n
}
