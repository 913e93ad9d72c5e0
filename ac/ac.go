// Package ac defines the frequency model the arithmetic coding algorithm requires.
// See its subpackages for particular finite precision realizations of the algorithm.
package ac

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyPartition is returned when symbols are encoded or decoded against a partition whose total count is zero.
	ErrEmptyPartition = errors.New("empty partition")

	// ErrNoMatchingRange is returned when a decoded value does not fall into any symbol's range.
	// It only happens for buffers that were not produced by the same model.
	ErrNoMatchingRange = errors.New("no symbol range matches the decoded value")

	// ErrTruncated is returned when there are insufficient bits sent to the decoder to reconstruct the original data.
	ErrTruncated = errors.New("insufficient bits sent to decoder")

	// ErrDuplicateSymbol is returned when a frequency table lists the same symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol in frequency table")

	// ErrAlphabetTooLarge is returned when a frequency table has more distinct symbols than MaxTotal.
	ErrAlphabetTooLarge = errors.New("alphabet too large")

	// ErrTotalTooLarge is returned when a model's total frequency exceeds MaxTotal.
	ErrTotalTooLarge = errors.New("model total exceeds MaxTotal")

	// ErrTotalOverflow is returned when the counts of a frequency table do not fit in 64 bits.
	ErrTotalOverflow = errors.New("frequency table total overflows")
)

// A Model is a static probabilistic model on a sequence of symbols,
// as expected by the arithmetic coding algorithm.
// The model partitions [0, Total()) into disjoint half-open ranges, one per symbol.
type Model[S comparable] interface {
	// Total returns the sum of all symbol frequencies.
	Total() uint64

	// Freq returns the cumulative frequency range [lo, hi) of s.
	// ok is false if s has no range.
	Freq(s S) (lo, hi uint64, ok bool)

	// Find returns the symbol whose range contains the cumulative frequency c.
	// ok is false if c >= Total().
	Find(c uint64) (s S, lo, hi uint64, ok bool)
}
