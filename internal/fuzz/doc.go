
// Package fuzztests houses Go fuzz harnesses that exercise the MCL pipeline
// (source -> lexer -> parser -> formatter). Its goal is to smoke test
// robustness and guard against panics, hangs and lost data on arbitrary
// inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер, а удачно разобранные деревья печатают и
// разбирают повторно.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/diagfmt.

package fuzztests
