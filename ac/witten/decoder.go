package witten

import (
	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
)

// maxPrealloc bounds the capacity reserved for decoded symbols up front.
const maxPrealloc = 1 << 16

// A Decoder carries the state of one decoding session.
// It is not safe for concurrent use.
type Decoder[S comparable] struct {
	model ac.Model[S]
	iv    interval
	value uint64 // codeValueBits wide window into the input
	bits  []bool
	pos   int
}

// NewDecoder returns a Decoder for buffers encoded according to model.
func NewDecoder[S comparable](model ac.Model[S]) (*Decoder[S], error) {
	if err := checkModel(model); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return &Decoder[S]{model: model}, nil
}

func (d *Decoder[S]) readBit() (uint64, error) {
	if d.pos >= len(d.bits) {
		return 0, ac.ErrTruncated
	}
	b := d.bits[d.pos]
	d.pos++
	if b {
		return 1, nil
	}
	return 0, nil
}

// drain mirrors Encoder.drain, shifting a fresh input bit into the value for every step.
func (d *Decoder[S]) drain() error {
	for {
		s := d.iv.renormalize()
		if s == noStep {
			return nil
		}
		bit, err := d.readBit()
		if err != nil {
			return err
		}
		d.value = 2*(d.value-s.offset()) + bit
	}
}

// PopLetter returns the symbol whose range contains the current value, and narrows the interval to it.
func (d *Decoder[S]) PopLetter() (S, error) {
	var s S
	if d.value < d.iv.low || d.value >= d.iv.high {
		return s, ac.ErrNoMatchingRange
	}

	total := d.model.Total()
	span := d.iv.high - d.iv.low
	c := ((d.value-d.iv.low+1)*total - 1) / span
	s, lo, hi, ok := d.model.Find(c)
	if !ok {
		return s, errors.Wrapf(ac.ErrNoMatchingRange, "cumulative frequency %d", c)
	}

	d.iv.narrow(lo, hi, total)
	return s, nil
}

// PopString decodes n symbols from buf.
func (d *Decoder[S]) PopString(buf []byte, n int) ([]S, error) {
	if n < 0 {
		return nil, errors.Errorf("negative symbol count %d", n)
	}
	// n may come from an untrusted header.
	out := make([]S, 0, min(n, maxPrealloc))
	if n == 0 {
		return out, nil
	}
	if d.model.Total() == 0 {
		return nil, ac.ErrEmptyPartition
	}

	d.iv = newInterval()
	d.bits = ac.UnpackBits(buf)
	d.pos = 0
	d.value = 0
	for i := 0; i < codeValueBits; i++ {
		bit, err := d.readBit()
		if err != nil {
			return nil, errors.Wrap(err, "initial value")
		}
		d.value = 2*d.value + bit
	}

	for i := 0; i < n; i++ {
		s, err := d.PopLetter()
		if err != nil {
			return nil, errors.Wrapf(err, "symbol %d", i)
		}
		out = append(out, s)
		if err := d.drain(); err != nil {
			return nil, errors.Wrapf(err, "symbol %d", i)
		}
	}
	return out, nil
}

// Decode decodes n symbols from buf, which must have been encoded according to model.
func Decode[S comparable](buf []byte, model ac.Model[S], n int) ([]S, error) {
	d, err := NewDecoder(model)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	out, err := d.PopString(buf, n)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return out, nil
}
