package witten

import (
	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
)

// ErrFlushed is returned when symbols are pushed to an Encoder after DumpBin.
var ErrFlushed = errors.New("encoder already flushed")

// An Encoder carries the state of one encoding session.
// It is not safe for concurrent use.
type Encoder[S comparable] struct {
	model ac.Model[S]
	iv    interval
	fbits int    // follow bits awaiting the next decided bit
	cache []bool // renormalization output
	out   []byte
}

// NewEncoder returns an Encoder narrowing its interval according to model.
func NewEncoder[S comparable](model ac.Model[S]) (*Encoder[S], error) {
	if err := checkModel(model); err != nil {
		return nil, errors.Wrap(err, "")
	}
	e := &Encoder[S]{
		model: model,
		iv:    newInterval(),
	}
	return e, nil
}

func (e *Encoder[S]) bitPlusFollow(bit bool) {
	e.cache = append(e.cache, bit)
	for ; e.fbits > 0; e.fbits-- {
		e.cache = append(e.cache, !bit)
	}
}

// drain renormalizes until no more bits are determined, and returns the number of steps taken.
func (e *Encoder[S]) drain() int {
	n := 0
	for {
		switch e.iv.renormalize() {
		case noStep:
			return n
		case emitZero:
			e.bitPlusFollow(false)
		case emitOne:
			e.bitPlusFollow(true)
		case follow:
			e.fbits++
		}
		n++
	}
}

// PushLetter narrows the interval to the range of s.
// Symbols without a range in the model are skipped silently.
func (e *Encoder[S]) PushLetter(s S) error {
	if e.out != nil {
		return ErrFlushed
	}
	total := e.model.Total()
	if total == 0 {
		return ac.ErrEmptyPartition
	}
	lo, hi, ok := e.model.Freq(s)
	if !ok {
		return nil
	}

	e.drain()
	e.iv.narrow(lo, hi, total)
	return nil
}

// PushText pushes the symbols of seq from left to right.
func (e *Encoder[S]) PushText(seq []S) error {
	for i, s := range seq {
		if err := e.PushLetter(s); err != nil {
			return errors.Wrapf(err, "symbol %d", i)
		}
	}
	return nil
}

// DumpBin terminates the encoding and returns the encoded buffer.
// The buffer holds the renormalization bits followed by the binary expansion of the final interval's midpoint,
// written at the full fixed-point precision, and zero padded to a byte boundary.
// Subsequent calls return the same buffer.
func (e *Encoder[S]) DumpBin() []byte {
	if e.out != nil {
		return e.out
	}

	e.drain()
	mid := e.iv.low + (e.iv.high-e.iv.low)/2
	for i := 0; i < codeValueBits; i++ {
		bit := mid >= half
		if bit {
			mid -= half
		}
		mid *= 2
		e.bitPlusFollow(bit)
	}

	e.out = ac.PackBits(e.cache)
	e.cache = nil
	return e.out
}

// Encode encodes seq according to model.
// Symbols of seq missing from model are skipped and must not be counted when decoding.
func Encode[S comparable](seq []S, model ac.Model[S]) ([]byte, error) {
	e, err := NewEncoder(model)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	if err := e.PushText(seq); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return e.DumpBin(), nil
}
