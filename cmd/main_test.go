package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yuya-isaka/chibisearch/bsearch"
	"github.com/yuya-isaka/chibisearch/config"
)

// execute はオブザーバ付きのロガーでコマンドを実行する
func execute(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	a := newApp()
	a.buildLogger = func(level string) (*zap.Logger, error) {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		leveled, err := zapcore.NewIncreaseLevelCore(core, lvl)
		if err != nil {
			return nil, err
		}
		return zap.New(leveled), nil
	}

	root := a.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), logs, err
}

func TestDemoCmd(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)

	want := `Binary Search Demonstration
------------------------
Array: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]

Basic Search:
7 found at index: 6

Recursive Search:
4 found at index: 3

Array with Duplicates: [1, 2, 2, 2, 3, 4, 4, 5, 5, 5, 6]
First occurrence of 2: index 1
Last occurrence of 2: index 3
Total occurrences of 2: 3

Error Handling:
Attempted to search unsorted array - input must be a sorted array: element at index 1 is smaller than its predecessor
`
	assert.Equal(t, want, out)
}

func TestSearchCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Default", []string{"--values", "1,2,3,4,5,6,7,8,9,10", "--target", "7"}, "search 7: index 6\n"},
		{"Recursive", []string{"--op", "recursive", "--values", "1,2,3,4,5,6,7,8,9,10", "--target", "4"}, "recursive 4: index 3\n"},
		{"First", []string{"--op", "first", "--values", "1,2,2,2,3,4,4,5,5,5,6", "--target", "2"}, "first 2: index 1\n"},
		{"Last", []string{"--op", "LAST", "--values", "1,2,2,2,3,4,4,5,5,5,6", "--target", "2"}, "last 2: index 3\n"},
		{"Count", []string{"--op", "count", "--values", "1,2,2,2,3,4,4,5,5,5,6", "--target", "2"}, "count 2: 3\n"},
		{"Missing", []string{"--values", "1,3,5", "--target", "4"}, "search 4: not found\n"},
		{"NoValues", []string{"--op", "count", "--target", "4"}, "count 4: 0\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, logs, err := execute(t, append([]string{"search", "-v"}, test.args...)...)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
			assert.Equal(t, 1, logs.FilterMessage("search finished").Len())
		})
	}
}

func TestSearchCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "search", "--values", "5,3,1,4,2", "--target", "3")
	assert.ErrorIs(t, err, bsearch.ErrInvalidInput)

	_, _, err = execute(t, "search", "--op", "bisect", "--values", "1,2", "--target", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "search", "--values", "1,2")
	assert.ErrorContains(t, err, "target")

	_, _, err = execute(t, "search", "--log-level", "loud", "--values", "1,2", "--target", "1")
	assert.ErrorContains(t, err, "failed to initialize logger")
}

const batch = `
log:
  level: debug
datasets:
  - name: ten
    values: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
    queries:
      - {op: search, target: 7}
      - {op: recursive, target: 11}
  - name: dups
    values: [1, 2, 2, 2, 3, 4, 4, 5, 5, 5, 6]
    queries:
      - {op: first, target: 2}
      - {op: last, target: 2}
      - {op: count, target: 2}
`

func writeBatch(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunCmd(t *testing.T) {
	out, logs, err := execute(t, "run", "--config", writeBatch(t, batch))
	require.NoError(t, err)

	assert.Equal(t, `[ten] search 7: index 6
[ten] recursive 11: not found
[dups] first 2: index 1
[dups] last 2: index 3
[dups] count 2: 3
`, out)

	// 設定ファイルの debug レベルが効いている
	assert.Equal(t, 5, logs.FilterMessage("query").Len())

	finished := logs.FilterMessage("batch finished").All()
	require.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.EqualValues(t, 2, fields["datasets"])
	assert.EqualValues(t, 5, fields["queries"])
	assert.EqualValues(t, 0, fields["skipped"])
}

func TestRunCmd_FlagOverridesConfigLevel(t *testing.T) {
	_, logs, err := execute(t, "run", "--log-level", "info", "--config", writeBatch(t, batch))
	require.NoError(t, err)

	assert.Zero(t, logs.FilterMessage("query").Len())
	assert.Equal(t, 1, logs.FilterMessage("batch finished").Len())
}

func TestRunCmd_UnsortedDataset(t *testing.T) {
	path := writeBatch(t, `
datasets:
  - name: bad
    values: [5, 3, 1, 4, 2]
    queries:
      - {op: search, target: 3}
  - name: good
    values: [1, 2, 3]
    queries:
      - {op: count, target: 3}
`)

	out, logs, err := execute(t, "run", "-c", path)
	assert.ErrorIs(t, err, bsearch.ErrInvalidInput)
	assert.EqualError(t, err, "1 of 2 datasets skipped: input must be a sorted array")

	assert.Equal(t, `[bad] skipped: input must be a sorted array: element at index 1 is smaller than its predecessor
[good] count 3: 1
`, out)

	skipped := logs.FilterMessage("skipping dataset").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "bad", skipped[0].ContextMap()["dataset"])
}

func TestRunCmd_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
