// Package witten implements the arithmetic coding algorithm described in
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540,
// for static models over arbitrary symbol alphabets.
//
// The coding interval is kept in 32-bit fixed point.
// An Encoder turns a whole symbol sequence into a byte buffer, and a Decoder recovers the sequence
// given the buffer, the same model, and the number of encoded symbols.
package witten

import (
	"github.com/fumin/arith/ac"
)

const (
	codeValueBits = 32
	one           = uint64(1) << codeValueBits
	half          = one / 2
	firstQtr      = one / 4
	thirdQtr      = 3 * firstQtr
)

// A step is the outcome of a single renormalization.
type step int

const (
	noStep step = iota
	emitZero
	emitOne
	// follow records a bit whose value is only known once the next bit is decided,
	// the interval straddling the midpoint within its middle half.
	follow
)

// offset returns how much a step subtracts from the interval bounds before doubling them.
func (s step) offset() uint64 {
	switch s {
	case emitOne:
		return half
	case follow:
		return firstQtr
	default:
		return 0
	}
}

// An interval is the current coding interval [low, high), in units of 2^-codeValueBits.
// It holds 0 <= low < high <= one.
type interval struct {
	low  uint64
	high uint64
}

func newInterval() interval {
	return interval{high: one}
}

// renormalize performs at most one renormalization step and reports which one.
// The interval is left untouched when it returns noStep.
func (iv *interval) renormalize() step {
	var s step
	switch {
	case iv.high <= half:
		s = emitZero
	case iv.low >= half:
		s = emitOne
	case iv.low >= firstQtr && iv.high <= thirdQtr:
		s = follow
	default:
		return noStep
	}

	off := s.offset()
	iv.low = 2 * (iv.low - off)
	iv.high = 2 * (iv.high - off)
	return s
}

// narrow shrinks the interval to the sub-interval [lo, hi) of a model whose frequencies add up to total.
// After renormalization the interval is wider than firstQtr, and since total <= ac.MaxTotal
// every non-empty [lo, hi) yields a non-empty interval.
func (iv *interval) narrow(lo, hi, total uint64) {
	span := iv.high - iv.low
	iv.high = iv.low + span*hi/total
	iv.low = iv.low + span*lo/total
}

func checkModel[S comparable](model ac.Model[S]) error {
	if model.Total() > ac.MaxTotal {
		return ac.ErrTotalTooLarge
	}
	return nil
}
