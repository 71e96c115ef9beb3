package reprint

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStyle  = errors.New("unknown style")
	ErrInvalidStyles = errors.New("invalid styles")
)

// Shape is the category a value is rendered as.
type Shape int

const (
	ShapeScalar Shape = iota
	ShapePair
	ShapeTuple
	ShapeSequence
	ShapeSet
	ShapeMapping
	ShapeAdaptor
)

var shapeNames = []string{"scalar", "pair", "tuple", "sequence", "set", "mapping", "adaptor"}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// --- Capability Interfaces ---

// Pairer is implemented by two-component records. Rendered with the tuple
// style as open, first, sep, second, close.
type Pairer interface {
	Parts() (first, second any)
}

// Tupler is implemented by fixed-arity heterogeneous records. Components are
// rendered in positional order with the tuple style.
type Tupler interface {
	Fields() []any
}

// Mappable is implemented by key-value collections. Entries are rendered in
// the order the iterator yields them. Duplicate keys are allowed.
type Mappable interface {
	Entries() iter.Seq2[any, any]
}

// Membered is implemented by set-like collections. Members are rendered with
// the list style, in iteration order.
type Membered interface {
	Members() iter.Seq[any]
}

// Sequencer is implemented by ordered collections that are not slices,
// arrays, or iterator funcs.
type Sequencer interface {
	Elements() iter.Seq[any]
}

// Snapshotter is implemented by restricted containers (stacks, queues,
// priority queues) that do not expose iteration. Snapshot returns a
// read-only copy of the backing storage in observation order; the renderer
// renders it with its own shape. It must not alias the live storage.
type Snapshotter interface {
	Snapshot() any
}

// Printer renders values using one style per composite shape.
//
// Tuple decorates pairs and tuples, List decorates sequences and sets, Dict
// decorates mappings. MaxDepth, when positive, replaces composites nested
// deeper than the limit with "...". MaxWidth, when positive, truncates each
// scalar to that many terminal columns.
type Printer struct {
	Tuple    Style `yaml:"tuple"`
	List     Style `yaml:"list"`
	Dict     Style `yaml:"dict"`
	MaxDepth int   `yaml:"max_depth"`
	MaxWidth int   `yaml:"max_width"`
}

// Fprint renders v to w. The first write error from w is returned unchanged.
func (p Printer) Fprint(w io.Writer, v any) error {
	r := renderer{p: &p, w: w}
	r.value(v, 0)
	return r.err
}

// Sprint renders v and returns the text.
func (p Printer) Sprint(v any) string {
	var sb strings.Builder
	_ = p.Fprint(&sb, v)
	return sb.String()
}

// Wrap returns a fmt.Formatter that renders v with p for any verb, so a
// value can be passed straight to fmt.Printf and friends.
func (p Printer) Wrap(v any) fmt.Formatter {
	return wrapped{p: p, v: v}
}

type wrapped struct {
	p Printer
	v any
}

func (w wrapped) Format(f fmt.State, _ rune) {
	_ = w.p.Fprint(f, w.v)
}

// Fprint renders v to w with the Pretty printer.
func Fprint(w io.Writer, v any) error { return Pretty.Fprint(w, v) }

// Sprint renders v with the Pretty printer.
func Sprint(v any) string { return Pretty.Sprint(v) }

// Fprintb renders v to w with the Basic printer.
func Fprintb(w io.Writer, v any) error { return Basic.Fprint(w, v) }

// Sprintb renders v with the Basic printer.
func Sprintb(v any) string { return Basic.Sprint(v) }

// Wrap wraps v for use with the fmt package using the Pretty printer.
func Wrap(v any) fmt.Formatter { return Pretty.Wrap(v) }
