package trace_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/reprint"
	"github.com/bjaus/reprint/trace"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// here returns the caller's line.
func here() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestLog(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf)

	line := here() + 1
	err := l.Log(trace.V("x", 5), trace.V("y", []int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("[trace_test.go:%d]: x = 5, y = [1, 2]\n", line), buf.String())
}

func TestLogNested(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf)
	line := here() + 1
	require.NoError(t, l.Log(trace.V("m", map[string][]reprint.Pair[int, int]{"a": {{First: 1, Second: 2}}})))
	assert.Equal(t, fmt.Sprintf("[trace_test.go:%d]: m = {a: [(1, 2)]}\n", line), buf.String())
}

func TestLogNoFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf)
	line := here() + 1
	require.NoError(t, l.Log())
	assert.Equal(t, fmt.Sprintf("[trace_test.go:%d]: \n", line), buf.String())
}

func TestLogv(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf)
	n, grid := 3, [][]int{{1, 0}, {0, 1}}
	line := here() + 1
	require.NoError(t, l.Logv("n, grid[0], len(grid)", n, grid[0], len(grid)))
	assert.Equal(t, fmt.Sprintf("[trace_test.go:%d]: n = 3, grid[0] = [1, 0], len(grid) = 2\n", line), buf.String())
}

func TestLogWithPrinter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf, trace.WithPrinter(reprint.Basic))
	require.NoError(t, l.Log(trace.V("y", []int{1, 2})))
	assert.True(t, strings.HasSuffix(buf.String(), "]: y = 1 2\n"), buf.String())
}

func TestLogWithRoot(t *testing.T) {
	t.Parallel()
	wd, err := os.Getwd()
	require.NoError(t, err)

	var buf bytes.Buffer
	l := trace.New(&buf, trace.WithRoot(filepath.Dir(wd)))
	require.NoError(t, l.Log(trace.V("a", 1)))
	assert.True(t, strings.HasPrefix(buf.String(), "[trace/trace_test.go:"), buf.String())
}

func TestLogDisabled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf, trace.WithEnabled(false))
	assert.False(t, l.Enabled())
	require.NoError(t, l.Log(trace.V("x", 1)))
	require.NoError(t, l.Logv("x", 1))
	assert.Empty(t, buf.String())
}

func TestLogNilLogger(t *testing.T) {
	t.Parallel()
	var l *trace.Logger
	assert.False(t, l.Enabled())
	assert.NoError(t, l.Log(trace.V("x", 1)))
}

func TestLogWriteError(t *testing.T) {
	t.Parallel()
	l := trace.New(&errWriter{})
	err := l.Log(trace.V("x", 1))
	assert.Same(t, errWriteFailed, err)
}

func TestLogConcurrent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf)
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Log(trace.V("i", i), trace.V("sq", []int{i, i * i}))
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Contains(t, line, "]: i = ")
		assert.True(t, strings.HasSuffix(line, "]"), line)
	}
}

func TestLogvEscapedQuote(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := trace.New(&buf)
	require.NoError(t, l.Logv(`"a\"b", z`, "a\"b", 2))
	assert.True(t, strings.HasSuffix(buf.String(), `]: "a\"b" = a"b, z = 2`+"\n"), buf.String())
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, trace.Default())
}

func TestPrefix(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		root, file string
		want       string
	}{
		"relative to root": {root: "/src/app", file: "/src/app/pkg/a.go", want: "[pkg/a.go:7]: "},
		"outside root":     {root: "/src/app", file: "/other/b.go", want: "[../../other/b.go:7]: "},
		"no root":          {root: "", file: "/src/app/a.go", want: "[/src/app/a.go:7]: "},
		"relative file":    {root: "/src/app", file: "a.go", want: "[a.go:7]: "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if runtime.GOOS == "windows" {
				t.Skip("unix paths")
			}
			assert.Equal(t, tt.want, trace.Prefix(tt.root, tt.file, 7))
		})
	}
}

func TestArgs(t *testing.T) {
	t.Parallel()
	fields := trace.Args("a, b", 1, 2, 3)
	assert.Equal(t, []trace.Field{
		trace.V("a", 1),
		trace.V("b", 2),
		trace.V("arg2", 3),
	}, fields)
	assert.Empty(t, trace.Args("x"))
}

func TestSplit(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want []string
	}{
		"blank":    {in: "  \t", want: nil},
		"single":   {in: "x", want: []string{"x"}},
		"trimmed":  {in: " a ,b ", want: []string{"a", "b"}},
		"call":     {in: "a, f(b, c)", want: []string{"a", "f(b, c)"}},
		"nested":   {in: "f(g(1, 2), 3), y", want: []string{"f(g(1, 2), 3)", "y"}},
		"index":    {in: "m[i, j], k", want: []string{"m[i, j]", "k"}},
		"literal":  {in: "[]int{1, 2}, z", want: []string{"[]int{1, 2}", "z"}},
		"quotes":   {in: `"x,y", 'a', b`, want: []string{`"x,y"`, "'a'", "b"}},
		"raw":      {in: "`,`, c", want: []string{"`,`", "c"}},
		"paren in": {in: `f(")"), d`, want: []string{`f(")")`, "d"}},
		"escaped":  {in: `"a\"b", z`, want: []string{`"a\"b"`, "z"}},
		"rune":     {in: `'\'', y`, want: []string{`'\''`, "y"}},
		"raw bs":   {in: "`a\\`, w", want: []string{"`a\\`", "w"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, trace.Split(tt.in))
		})
	}
}
