package main

import (
	"fmt"
	"os"
)

// splitWriter spreads output over numbered files, perFile games each:
// base_1.pdn, base_2.pdn and so on. A new file is opened lazily by the
// first write after the previous one filled up. It is used from one
// goroutine only.
type splitWriter struct {
	base    string
	ext     string
	perFile int

	file  *os.File
	index int
	games int
}

func newSplitWriter(base, ext string, perFile int) *splitWriter {
	return &splitWriter{base: base, ext: ext, perFile: perFile}
}

func (sw *splitWriter) name(index int) string {
	return fmt.Sprintf("%s_%d%s", sw.base, index, sw.ext)
}

func (sw *splitWriter) Write(p []byte) (int, error) {
	if sw.file == nil || sw.games >= sw.perFile {
		if err := sw.rotate(); err != nil {
			return 0, err
		}
	}
	return sw.file.Write(p)
}

func (sw *splitWriter) rotate() error {
	if err := sw.Close(); err != nil {
		return err
	}
	sw.index++
	f, err := os.Create(sw.name(sw.index)) //nolint:gosec // G304: derived from the -o file name
	if err != nil {
		return err
	}
	sw.file, sw.games = f, 0
	return nil
}

// gameDone marks the end of a game; the next write may start a new file.
func (sw *splitWriter) gameDone() {
	sw.games++
}

func (sw *splitWriter) Close() error {
	if sw.file == nil {
		return nil
	}
	err := sw.file.Close()
	sw.file = nil
	return err
}
