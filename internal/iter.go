package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Range yields (index, get(index)) for each index in [from, to).
func IterSeq2Range[T any](from, to int, get func(index int) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for n := from; n < to; n++ {
			if !yield(n, get(n)) {
				return
			}
		}
	}
}
