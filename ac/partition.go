package ac

import (
	"cmp"
	"math/bits"
	"sort"

	"github.com/pkg/errors"
)

// MaxTotal is the largest total frequency a Partition works with.
// Tables whose counts add up to more are scaled down.
// Coders that keep their interval wider than MaxTotal never produce an empty symbol interval.
const MaxTotal uint64 = 1 << 30

// A Count is the number of occurrences of a symbol.
type Count[S comparable] struct {
	Symbol S
	Count  uint64
}

// A Table is an ordered frequency table.
type Table[S comparable] []Count[S]

// Total returns the sum of all counts in t.
func (t Table[S]) Total() (uint64, error) {
	var total, carry uint64
	for _, c := range t {
		total, carry = bits.Add64(total, c.Count, 0)
		if carry != 0 {
			return 0, ErrTotalOverflow
		}
	}
	return total, nil
}

// CountSymbols groups seq by symbol.
// The returned table is sorted by symbol in ascending order.
func CountSymbols[S cmp.Ordered](seq []S) Table[S] {
	counts := make(map[S]uint64)
	for _, s := range seq {
		counts[s]++
	}
	t := make(Table[S], 0, len(counts))
	for s, n := range counts {
		t = append(t, Count[S]{Symbol: s, Count: n})
	}
	sort.Slice(t, func(i, j int) bool { return t[i].Symbol < t[j].Symbol })
	return t
}

type symbolRange[S comparable] struct {
	symbol S
	lo     uint64
	hi     uint64
}

// A Partition assigns each symbol of a frequency table a half-open range of cumulative frequency.
// Ranges are laid out in descending order of count, ties keeping their table order.
// A Partition is immutable and safe for concurrent use.
type Partition[S comparable] struct {
	ranges []symbolRange[S]
	index  map[S]int
	total  uint64
}

// BuildPartition returns the partition of t.
// Symbols with a zero count get no range.
// An empty table, or one whose counts are all zero, results in an empty partition.
func BuildPartition[S comparable](t Table[S]) (*Partition[S], error) {
	total, err := t.Total()
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	sorted := make(Table[S], 0, len(t))
	seen := make(map[S]struct{}, len(t))
	for _, c := range t {
		if _, ok := seen[c.Symbol]; ok {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%v", c.Symbol)
		}
		seen[c.Symbol] = struct{}{}
		if c.Count == 0 {
			continue
		}
		sorted = append(sorted, c)
	}
	if uint64(len(sorted)) > MaxTotal {
		return nil, errors.Wrapf(ErrAlphabetTooLarge, "%d symbols", len(sorted))
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })

	if total > MaxTotal {
		scale(sorted, total)
	}

	p := &Partition[S]{
		ranges: make([]symbolRange[S], 0, len(sorted)),
		index:  make(map[S]int, len(sorted)),
	}
	for _, c := range sorted {
		p.index[c.Symbol] = len(p.ranges)
		p.ranges = append(p.ranges, symbolRange[S]{symbol: c.Symbol, lo: p.total, hi: p.total + c.Count})
		p.total += c.Count
	}
	return p, nil
}

// scale maps the counts of t, which add up to total, onto at most MaxTotal.
// Every count stays at least 1, and the relative order of counts is preserved.
func scale[S comparable](t Table[S], total uint64) {
	budget := MaxTotal - uint64(len(t))
	for i := range t {
		hi, lo := bits.Mul64(t[i].Count, budget)
		q, _ := bits.Div64(hi, lo, total)
		t[i].Count = q + 1
	}
}

// Total returns the sum of all frequencies in the partition, after scaling.
func (p *Partition[S]) Total() uint64 {
	return p.total
}

// Len returns the number of symbols with a range.
func (p *Partition[S]) Len() int {
	return len(p.ranges)
}

// Freq returns the cumulative frequency range [lo, hi) of s.
func (p *Partition[S]) Freq(s S) (lo, hi uint64, ok bool) {
	i, ok := p.index[s]
	if !ok {
		return 0, 0, false
	}
	r := p.ranges[i]
	return r.lo, r.hi, true
}

// Find scans the ranges in partition order for the one containing c.
func (p *Partition[S]) Find(c uint64) (s S, lo, hi uint64, ok bool) {
	for _, r := range p.ranges {
		if r.lo <= c && c < r.hi {
			return r.symbol, r.lo, r.hi, true
		}
	}
	return s, 0, 0, false
}

// Range returns the sub-interval of [0, 1) assigned to s.
func (p *Partition[S]) Range(s S) (lo, hi float64, ok bool) {
	clo, chi, ok := p.Freq(s)
	if !ok {
		return 0, 0, false
	}
	total := float64(p.total)
	return float64(clo) / total, float64(chi) / total, true
}

// Symbols returns the symbols of p in partition order.
func (p *Partition[S]) Symbols() []S {
	syms := make([]S, len(p.ranges))
	for i, r := range p.ranges {
		syms[i] = r.symbol
	}
	return syms
}
