package reprint

import (
	"io"
	"iter"
)

// WriteSeq renders the values of seq as a sequence, as they arrive, without
// collecting them first.
func WriteSeq[T any](w io.Writer, p Printer, seq iter.Seq[T]) error {
	r := renderer{p: &p, w: w}
	r.list(erase(seq), 0)
	return r.err
}

// WriteSeq2 renders the pairs of seq as a mapping, in the order they arrive.
func WriteSeq2[K, V any](w io.Writer, p Printer, seq iter.Seq2[K, V]) error {
	r := renderer{p: &p, w: w}
	r.mapping(erase2(seq), 0)
	return r.err
}

// WriteChan renders values received from ch as a sequence. It returns once
// ch is closed, or after the first write error.
// It is a thin wrapper around [WriteSeq].
func WriteChan[T any](w io.Writer, p Printer, ch <-chan T) error {
	return WriteSeq(w, p, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
