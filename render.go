package reprint

import (
	"container/list"
	"fmt"
	"io"
	"iter"
	"reflect"
)

const (
	elided             = "..."
	adaptorPlaceholder = "<adaptor>"
)

// renderer carries one Fprint call. After the first write error every
// further write is skipped and the error is reported by Fprint.
type renderer struct {
	p   *Printer
	w   io.Writer
	err error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) value(v any, depth int) {
	if r.err != nil {
		return
	}
	if v == nil {
		r.scalar(v)
		return
	}
	info := classifyType(reflect.TypeOf(v))
	if info.shape == ShapeScalar {
		r.scalar(v)
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		r.scalar(v)
		return
	}
	if info.shape != ShapeAdaptor && r.p.MaxDepth > 0 && depth >= r.p.MaxDepth {
		r.write(elided)
		return
	}
	if info.deref {
		rv = rv.Elem()
	}
	if info.addr {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		rv, v = ptr, ptr.Interface()
	}

	switch info.src {
	case fromPairer:
		first, second := v.(Pairer).Parts()
		r.pair(first, second, depth)
	case fromTupler:
		r.tuple(v.(Tupler).Fields(), depth)
	case fromMappable:
		r.mapping(v.(Mappable).Entries(), depth)
	case fromMembered:
		r.list(v.(Membered).Members(), depth)
	case fromSequencer:
		r.list(v.(Sequencer).Elements(), depth)
	case fromSnapshotter:
		r.value(v.(Snapshotter).Snapshot(), depth)
	case fromPushPop:
		r.write(adaptorPlaceholder)
	case fromMapKeys:
		r.list(mapKeys(rv), depth)
	case fromMap:
		r.mapping(mapEntries(rv), depth)
	case fromIndex:
		r.list(indexed(rv), depth)
	case fromList:
		r.list(listElements(v.(*list.List)), depth)
	case fromSeqFunc:
		r.list(funcSeq(rv), depth)
	case fromSeq2Func:
		r.mapping(funcSeq2(rv), depth)
	case fromAllSeq:
		r.list(funcSeq(rv.MethodByName("All").Call(nil)[0]), depth)
	case fromAllSeq2:
		r.mapping(funcSeq2(rv.MethodByName("All").Call(nil)[0]), depth)
	default:
		r.scalar(v)
	}
}

func (r *renderer) scalar(v any) {
	r.write(truncate(fmt.Sprint(v), r.p.MaxWidth))
}

func (r *renderer) pair(first, second any, depth int) {
	st := r.p.Tuple
	r.write(st.Open)
	r.value(first, depth+1)
	r.write(st.Sep)
	r.value(second, depth+1)
	r.write(st.Close)
}

func (r *renderer) tuple(fields []any, depth int) {
	st := r.p.Tuple
	r.write(st.Open)
	for i, f := range fields {
		if r.err != nil {
			return
		}
		if i > 0 {
			r.write(st.Sep)
		}
		r.value(f, depth+1)
	}
	r.write(st.Close)
}

func (r *renderer) list(seq iter.Seq[any], depth int) {
	st := r.p.List
	r.write(st.Open)
	first := true
	for e := range seq {
		if r.err != nil {
			return
		}
		if !first {
			r.write(st.Sep)
		}
		first = false
		r.value(e, depth+1)
	}
	r.write(st.Close)
}

func (r *renderer) mapping(seq iter.Seq2[any, any], depth int) {
	st := r.p.Dict
	r.write(st.Open)
	first := true
	for k, v := range seq {
		if r.err != nil {
			return
		}
		if !first {
			r.write(st.Sep)
		}
		first = false
		r.value(k, depth+1)
		r.write(st.KeyValueSep)
		r.value(v, depth+1)
	}
	r.write(st.Close)
}

// --- Reflective walkers ---

func indexed(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

// mapKeys yields the keys of a built-in map in sorted order.
func mapKeys(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, k := range sortedKeys(rv) {
			if !yield(k.Interface()) {
				return
			}
		}
	}
}

// mapEntries yields the entries of a built-in map in sorted key order.
func mapEntries(rv reflect.Value) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, k := range sortedKeys(rv) {
			if !yield(k.Interface(), rv.MapIndex(k).Interface()) {
				return
			}
		}
	}
}

func listElements(l *list.List) iter.Seq[any] {
	return func(yield func(any) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// funcSeq adapts a reflected func(yield func(T) bool).
func funcSeq(fn reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		if fn.IsNil() {
			return
		}
		yt := fn.Type().In(0)
		cb := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			ok := yield(args[0].Interface())
			return []reflect.Value{reflect.ValueOf(ok).Convert(yt.Out(0))}
		})
		fn.Call([]reflect.Value{cb})
	}
}

// funcSeq2 adapts a reflected func(yield func(K, V) bool).
func funcSeq2(fn reflect.Value) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if fn.IsNil() {
			return
		}
		yt := fn.Type().In(0)
		cb := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			ok := yield(args[0].Interface(), args[1].Interface())
			return []reflect.Value{reflect.ValueOf(ok).Convert(yt.Out(0))}
		})
		fn.Call([]reflect.Value{cb})
	}
}
