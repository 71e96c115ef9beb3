package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/reprint"
)

const compactStyles = `compact:
  tuple: {open: "<", sep: ",", close: ">"}
  list: {open: "[", sep: ",", close: "]"}
  dict: {open: "{", sep: ",", close: "}", kv_sep: "="}
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"pretty default": {
			stdin: "a: [1, 2]\nb: {c: x}\n",
			want:  "{a: [1, 2], b: {c: x}}\n",
		},
		"basic": {
			stdin: "a: [1, 2]\nb: {c: x}\n",
			args:  []string{"--style", "basic"},
			want:  "a 1 2 b c x\n",
		},
		"document order": {
			stdin: "zeta: 1\nalpha: 2\n",
			want:  "{zeta: 1, alpha: 2}\n",
		},
		"json": {
			stdin: `{"z": 1, "a": [true, null, 2.5]}`,
			want:  "{z: 1, a: [true, <nil>, 2.5]}\n",
		},
		"multiple documents": {
			stdin: "1\n---\n[1, 2]\n---\nhello\n",
			want:  "1\n[1, 2]\nhello\n",
		},
		"anchors": {
			stdin: "base: &b [1]\ncopy: *b\n",
			want:  "{base: [1], copy: [1]}\n",
		},
		"max depth": {
			stdin: "a: [1]\nb: 2\n",
			args:  []string{"--max-depth", "1"},
			want:  "{a: ..., b: 2}\n",
		},
		"max width": {
			stdin: "[abcdefgh]\n",
			args:  []string{"--max-width", "5"},
			want:  "[ab...]\n",
		},
		"empty input": {
			stdin: "",
			want:  "",
		},
		"stdin dash": {
			stdin: "[x]\n",
			args:  []string{"-"},
			want:  "[x]\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderFiles(t *testing.T) {
	t.Parallel()
	a := writeFile(t, "a.yaml", "[1]\n")
	b := writeFile(t, "b.json", `{"k": "v"}`)
	out, err := run(t, "", a, b)
	require.NoError(t, err)
	assert.Equal(t, "[1]\n{k: v}\n", out)
}

// fdWatcher notes whether path is open by this process whenever it is read.
type fdWatcher struct {
	path    string
	r       io.Reader
	sawOpen bool
}

func (w *fdWatcher) Read(p []byte) (int, error) {
	if isOpen(w.path) {
		w.sawOpen = true
	}
	return w.r.Read(p)
}

func isOpen(path string) bool {
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return false
	}
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err == nil && target == path {
			return true
		}
	}
	return false
}

func TestReadDocumentsClosesEachFile(t *testing.T) {
	t.Parallel()
	if _, err := os.Stat("/proc/self/fd"); err != nil {
		t.Skip("needs /proc/self/fd")
	}
	first, err := filepath.EvalSymlinks(writeFile(t, "first.yaml", "[1]\n"))
	require.NoError(t, err)
	last := writeFile(t, "last.yaml", "[3]\n")

	stdin := &fdWatcher{path: first, r: strings.NewReader("[2]\n")}
	docs, err := readDocuments(stdin, []string{first, "-", last})
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1}, []any{2}, []any{3}}, docs)
	assert.False(t, stdin.sawOpen, "first file still open while reading stdin")
}

func TestRenderMissingFile(t *testing.T) {
	t.Parallel()
	_, err := run(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderInvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := run(t, "a: [1, 2\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestRenderCustomStyle(t *testing.T) {
	t.Parallel()
	styles := writeFile(t, "styles.yaml", compactStyles)
	out, err := run(t, "a: [1, 2]\nb: x\n", "--styles-file", styles, "--style", "compact")
	require.NoError(t, err)
	assert.Equal(t, "{a=[1,2],b=x}\n", out)
}

func TestRenderUnknownStyle(t *testing.T) {
	t.Parallel()
	_, err := run(t, "1\n", "--style", "fancy")
	assert.ErrorIs(t, err, reprint.ErrUnknownStyle)
}

func TestRenderConfigFile(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, "config.yaml", "style: basic\nmax_depth: 1\n")
	out, err := run(t, "[[1], 2]\n", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "... 2\n", out)
}

func TestRenderFlagOverridesConfig(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, "config.yaml", "style: basic\n")
	out, err := run(t, "[1, 2]\n", "--config", cfg, "--style", "pretty")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n", out)
}

func TestRenderMissingConfigFile(t *testing.T) {
	t.Parallel()
	_, err := run(t, "1\n", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestStylesCmd(t *testing.T) {
	t.Parallel()
	styles := writeFile(t, "styles.yaml", compactStyles)
	out, err := run(t, "", "styles", "--styles-file", styles)
	require.NoError(t, err)
	assert.Equal(t, "basic\npretty\ncompact\n", out)
}

func TestStylesCmdInvalidFile(t *testing.T) {
	t.Parallel()
	styles := writeFile(t, "styles.yaml", "compact:\n  colour: red\n")
	_, err := run(t, "", "styles", "--styles-file", styles)
	assert.ErrorIs(t, err, reprint.ErrInvalidStyles)
}

func TestClassifyCmd(t *testing.T) {
	t.Parallel()
	out, err := run(t, "1\n---\n[1]\n---\na: 1\n", "classify")
	require.NoError(t, err)
	assert.Equal(t, "scalar\nsequence\nmapping\n", out)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "reprint "+version+"\n", out)
}
