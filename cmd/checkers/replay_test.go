package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

const replayInput = `[Event "a"]

1. 22-18 11-15 2. 18x11 8x15 2-0

[Event "b"]

1. 22-18 18-14 *

[Event "c"]

1. 22-18 11-15 2. 18x11 8x15 *
`

func writePDN(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func replayConfig(out, log io.Writer) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLog(log).
		Build()
}

func TestRunReplay(t *testing.T) {
	path := writePDN(t, "games.pdn", replayInput)

	var out, log bytes.Buffer
	res, err := runReplay(replayConfig(&out, &log), []string{path})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res, replayResult{Games: 3, Output: 2, Errors: 1, Mismatches: 1, Duplicates: 1})

	testutil.AssertEqual(t, strings.Count(out.String(), "[Event "), 2)
	testutil.AssertContains(t, out.String(), `[Round "3"]`)
	testutil.AssertContains(t, out.String(), "1. 22-18 11-15 2. 18x11 8x15 *")

	testutil.AssertContains(t, log.String(), "games.pdn:5: game 2, ply 2")
	testutil.AssertContains(t, log.String(), "game 1: result 2-0 but the position gives *")
}

func TestRunReplay_SuppressDuplicates(t *testing.T) {
	defer saveRestoreBool(suppressDups, true)()

	path := writePDN(t, "games.pdn", replayInput)

	var out bytes.Buffer
	res, err := runReplay(replayConfig(&out, io.Discard), []string{path})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Output, 1)
	testutil.AssertEqual(t, res.Duplicates, 1)
	testutil.AssertEqual(t, strings.Count(out.String(), "[Event "), 1)
}

func TestRunReplay_NumbersAcrossFiles(t *testing.T) {
	first := writePDN(t, "first.pdn", "1. 22-18 *\n")
	second := writePDN(t, "second.pdn", "1. 24-19 *\n")

	var out bytes.Buffer
	cfg := replayConfig(&out, io.Discard)
	cfg.Output.JSONFormat = true

	res, err := runReplay(cfg, []string{first, second})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Games, 2)
	testutil.AssertEqual(t, res.Output, 2)
	testutil.AssertContains(t, out.String(), `"round": 2`)
}

func TestRunReplay_MissingFile(t *testing.T) {
	var out bytes.Buffer
	_, err := runReplay(replayConfig(&out, io.Discard), []string{filepath.Join(t.TempDir(), "absent.pdn")})
	testutil.AssertError(t, err)
}

func TestReportReplay(t *testing.T) {
	var log bytes.Buffer
	cfg := replayConfig(io.Discard, &log)

	reportReplay(cfg, replayResult{Games: 4, Output: 2, Errors: 1, Duplicates: 1})
	testutil.AssertEqual(t, log.String(), "2 game(s) output, 1 error(s), 1 duplicate(s) out of 4.\n")

	log.Reset()
	reportReplay(cfg, replayResult{Games: 1, Output: 1, Mismatches: 1})
	testutil.AssertContains(t, log.String(), "1 game(s) with a result that does not match the play")
}
