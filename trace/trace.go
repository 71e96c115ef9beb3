// Package trace writes one-line debug records of named values:
//
//	[internal/solver/solve.go:42]: x = 5, y = [1, 2]
//
// The location is the caller's file, relative to a root directory, and line.
// Values are rendered with a [reprint.Printer], Pretty by default.
package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/bjaus/reprint"
)

// EnvTrace enables the package-level logger when set to a true value.
const EnvTrace = "REPRINT_TRACE"

// Field is a named value.
type Field struct {
	Name  string
	Value any
}

// V returns a Field.
func V(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Args pairs a comma-separated list of names with values, so a call site can
// spell each name once:
//
//	trace.Log(trace.Args("n, grid[0], f(a, b)", n, grid[0], f(a, b))...)
//
// Names are split with [Split]. A value without a name is called argN.
func Args(names string, values ...any) []Field {
	split := Split(names)
	fields := make([]Field, len(values))
	for i, v := range values {
		name := "arg" + strconv.Itoa(i)
		if i < len(split) {
			name = split[i]
		}
		fields[i] = Field{Name: name, Value: v}
	}
	return fields
}

// Logger writes trace records to a writer. It is safe for concurrent use.
// A nil or disabled Logger writes nothing.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	printer reprint.Printer
	root    string
	enabled bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithPrinter sets the printer used for values.
func WithPrinter(p reprint.Printer) Option {
	return func(l *Logger) { l.printer = p }
}

// WithRoot sets the directory caller paths are made relative to.
// Default: the working directory when the Logger is created.
func WithRoot(dir string) Option {
	return func(l *Logger) { l.root = dir }
}

// WithEnabled turns the logger on or off. Default: on.
func WithEnabled(enabled bool) Option {
	return func(l *Logger) { l.enabled = enabled }
}

// New returns a Logger writing to w.
func New(w io.Writer, opts ...Option) *Logger {
	l := &Logger{w: w, printer: reprint.Pretty, enabled: true}
	if wd, err := os.Getwd(); err == nil {
		l.root = wd
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enabled reports whether l writes records.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Log writes one record holding fields, tagged with the caller's location.
// The writer's error is returned unchanged.
func (l *Logger) Log(fields ...Field) error {
	return l.log(2, fields)
}

// Logv is Log(Args(names, values...)...).
func (l *Logger) Logv(names string, values ...any) error {
	return l.log(2, Args(names, values...))
}

func (l *Logger) log(skip int, fields []Field) error {
	if !l.Enabled() {
		return nil
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}

	var buf bytes.Buffer
	buf.WriteString(Prefix(l.root, file, line))
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(f.Name)
		buf.WriteString(" = ")
		_ = l.printer.Fprint(&buf, f.Value)
	}
	buf.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.w.Write(buf.Bytes())
	return err
}

// Prefix returns the "[path:line]: " tag for file and line, with file made
// relative to root when possible.
func Prefix(root, file string, line int) string {
	return fmt.Sprintf("[%s:%d]: ", relative(root, file), line)
}

func relative(root, file string) string {
	if root == "" || !filepath.IsAbs(file) {
		return filepath.ToSlash(file)
	}
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return filepath.ToSlash(file)
	}
	return filepath.ToSlash(rel)
}

var std = New(os.Stderr, WithEnabled(envEnabled()))

func envEnabled() bool {
	on, err := strconv.ParseBool(os.Getenv(EnvTrace))
	return err == nil && on
}

// Default returns the package-level Logger. It writes to stderr and is
// enabled when REPRINT_TRACE is true.
func Default() *Logger { return std }

// Log writes a record to the package-level Logger.
func Log(fields ...Field) error {
	return std.log(2, fields)
}

// Logv writes a record to the package-level Logger.
func Logv(names string, values ...any) error {
	return std.log(2, Args(names, values...))
}
