package internal

import (
	"iter"
)

// Concat2 yields the pairs of each sequence in turn. A key already yielded
// by an earlier sequence is skipped, so earlier sequences take precedence.
func Concat2[K comparable, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := map[K]bool{}
		for _, seq := range seqs {
			for key, value := range seq {
				if seen[key] {
					continue
				}
				seen[key] = true
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
