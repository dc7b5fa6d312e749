package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addSyntaxSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.mcl файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".mcl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addSyntaxSeeds покрывает формы документа и граничные случаи сканера.
func addSyntaxSeeds(f *testing.F) {
	seeds := []string{
		"",
		"5",
		"null",
		"a 1 b 2",
		"{}",
		"[]",
		"{a [1 2 {b `t`}]}",
		"[1 2] 3",
		"a [1",
		"a { b",
		"01.5",
		"1.",
		"1.x",
		"-",
		"+",
		"\"\\",
		"`open",
		"/* open",
		"/x",
		"// only a comment",
		"k \"line\nbreak\"",
		"\xff",
		"é 1",
		"\"é\" 1",
		"}",
		"a }",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
