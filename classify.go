package reprint

import (
	"container/list"
	"fmt"
	"reflect"
	"sync"
)

// source records which rule produced a shape, so the renderer knows how to
// walk the value without classifying it twice.
type source int

const (
	fromDefault source = iota
	fromPairer
	fromTupler
	fromMappable
	fromMembered
	fromSequencer
	fromSnapshotter
	fromMapKeys   // map[K]struct{}
	fromMap       // map[K]V
	fromIndex     // slice or array
	fromList      // *list.List
	fromSeqFunc   // func(yield func(T) bool)
	fromSeq2Func  // func(yield func(K, V) bool)
	fromAllSeq    // All() iter.Seq[T]
	fromAllSeq2   // All() iter.Seq2[K, V]
	fromPushPop   // Push/Pop without iteration
)

type shapeInfo struct {
	shape Shape
	src   source
	deref bool // render the pointer's target
	addr  bool // render through a pointer to a copy
}

var (
	pairerType      = reflect.TypeFor[Pairer]()
	tuplerType      = reflect.TypeFor[Tupler]()
	mappableType    = reflect.TypeFor[Mappable]()
	memberedType    = reflect.TypeFor[Membered]()
	sequencerType   = reflect.TypeFor[Sequencer]()
	snapshotterType = reflect.TypeFor[Snapshotter]()
	stringerType    = reflect.TypeFor[fmt.Stringer]()
	errorType       = reflect.TypeFor[error]()
	listType        = reflect.TypeFor[*list.List]()
)

// shapes memoises classification per dynamic type.
var shapes sync.Map // reflect.Type -> shapeInfo

// Classify reports the shape v renders as. It never fails: values that match
// no rule are scalars.
func Classify(v any) Shape {
	if v == nil {
		return ShapeScalar
	}
	return classifyType(reflect.TypeOf(v)).shape
}

// ClassifyType reports the shape values of dynamic type t render as.
// A nil type is a scalar.
func ClassifyType(t reflect.Type) Shape {
	if t == nil {
		return ShapeScalar
	}
	return classifyType(t).shape
}

func classifyType(t reflect.Type) shapeInfo {
	if info, ok := shapes.Load(t); ok {
		return info.(shapeInfo)
	}
	info := classifyUncached(t)
	shapes.Store(t, info)
	return info
}

func classifyUncached(t reflect.Type) shapeInfo {
	// Explicit capabilities first, in priority order.
	switch {
	case t.Implements(pairerType):
		return shapeInfo{shape: ShapePair, src: fromPairer}
	case t.Implements(tuplerType):
		return shapeInfo{shape: ShapeTuple, src: fromTupler}
	case t.Implements(mappableType):
		return shapeInfo{shape: ShapeMapping, src: fromMappable}
	case t.Implements(memberedType):
		return shapeInfo{shape: ShapeSet, src: fromMembered}
	case t.Implements(sequencerType):
		return shapeInfo{shape: ShapeSequence, src: fromSequencer}
	case t.Implements(snapshotterType):
		return shapeInfo{shape: ShapeAdaptor, src: fromSnapshotter}
	case t.Implements(stringerType), t.Implements(errorType):
		return shapeInfo{shape: ShapeScalar}
	case t == listType:
		return shapeInfo{shape: ShapeSequence, src: fromList}
	}

	if t.Kind() == reflect.Pointer {
		switch t.Elem().Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			// The target's storage is iterable, so its kind wins over
			// pointer-receiver methods such as heap.Interface's Push/Pop.
			info, _ := structural(t.Elem())
			info.deref = true
			return info
		}
	}
	if info, ok := structural(t); ok {
		return info
	}
	if t.Kind() == reflect.Pointer {
		if info, ok := structural(t.Elem()); ok {
			info.deref = true
			return info
		}
		return shapeInfo{shape: ShapeScalar}
	}

	// Values whose capabilities have pointer receivers, such as an
	// OrderedMap held in a slice.
	if info := classifyType(reflect.PointerTo(t)); info.shape != ShapeScalar && !info.deref {
		info.addr = true
		return info
	}
	return shapeInfo{shape: ShapeScalar}
}

// structural classifies t by kind and method set alone.
func structural(t reflect.Type) (shapeInfo, bool) {
	switch t.Kind() {
	case reflect.Map:
		if t.Elem().Size() == 0 {
			return shapeInfo{shape: ShapeSet, src: fromMapKeys}, true
		}
		return shapeInfo{shape: ShapeMapping, src: fromMap}, true
	case reflect.Slice, reflect.Array:
		return shapeInfo{shape: ShapeSequence, src: fromIndex}, true
	case reflect.Func:
		switch seqArity(t) {
		case 1:
			return shapeInfo{shape: ShapeSequence, src: fromSeqFunc}, true
		case 2:
			return shapeInfo{shape: ShapeMapping, src: fromSeq2Func}, true
		}
		return shapeInfo{}, false
	}

	if m, ok := t.MethodByName("All"); ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
		switch seqArity(m.Type.Out(0)) {
		case 1:
			return shapeInfo{shape: ShapeSequence, src: fromAllSeq}, true
		case 2:
			return shapeInfo{shape: ShapeMapping, src: fromAllSeq2}, true
		}
	}

	_, push := t.MethodByName("Push")
	_, pop := t.MethodByName("Pop")
	if push && pop {
		return shapeInfo{shape: ShapeAdaptor, src: fromPushPop}, true
	}
	return shapeInfo{}, false
}

// seqArity reports 1 for func(yield func(T) bool), 2 for
// func(yield func(K, V) bool), and 0 for anything else.
func seqArity(t reflect.Type) int {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return 0
	}
	switch y.NumIn() {
	case 1, 2:
		return y.NumIn()
	default:
		return 0
	}
}
