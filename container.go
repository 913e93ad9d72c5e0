package arith

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
)

// ErrCorrupt is returned when a container is malformed.
var ErrCorrupt = errors.New("arith: container is corrupted")

const (
	fixedHeaderLen = 3 * 8
	entryLen       = 1 + 8
	maxInt         = uint64(math.MaxInt64)
)

// A Header describes the content of a container.
type Header struct {
	// SymbolCount is the number of encoded symbols.
	SymbolCount uint64

	// Table is the frequency table the encoded buffer was produced with.
	Table ac.Table[byte]
}

// WriteContainer writes h and the encoded buffer buf to w.
// All integers are 64 bit little endian:
//
//	[SymbolCount][len(buf)][len(Table)][len(Table) × (symbol byte, count)][buf]
func WriteContainer(w io.Writer, h Header, buf []byte) error {
	hdr := make([]byte, 0, fixedHeaderLen+entryLen*len(h.Table))
	hdr = binary.LittleEndian.AppendUint64(hdr, h.SymbolCount)
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(len(buf)))
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(len(h.Table)))
	for _, c := range h.Table {
		hdr = append(hdr, c.Symbol)
		hdr = binary.LittleEndian.AppendUint64(hdr, c.Count)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr); err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// ReadContainer reads a container written by WriteContainer.
// It returns io.EOF if and only if no bytes are read at all,
// and io.ErrUnexpectedEOF if r ends within the container.
func ReadContainer(r io.Reader) (h Header, buf []byte, err error) {
	h, buf, err = readContainer(r)
	if err != nil && err != io.EOF {
		return Header{}, nil, errors.Wrap(err, "")
	}
	return h, buf, err
}

func readContainer(r io.Reader) (h Header, buf []byte, err error) {
	var fixed [fixedHeaderLen]byte
	n, err := io.ReadFull(r, fixed[:])
	if n == 0 && err == io.EOF {
		return Header{}, nil, io.EOF
	}
	if err != nil {
		return Header{}, nil, err
	}
	h.SymbolCount = binary.LittleEndian.Uint64(fixed[0:])
	bufLen := binary.LittleEndian.Uint64(fixed[8:])
	distinct := binary.LittleEndian.Uint64(fixed[16:])
	if h.SymbolCount > maxInt || bufLen > maxInt {
		return Header{}, nil, errors.Wrapf(ErrCorrupt, "symbol count %d, encoded length %d", h.SymbolCount, bufLen)
	}
	if distinct > 1<<8 { // One entry per byte value at most
		return Header{}, nil, errors.Wrapf(ErrCorrupt, "%d distinct symbols", distinct)
	}

	entries := make([]byte, entryLen*distinct)
	if _, err := io.ReadFull(r, entries); err != nil {
		return Header{}, nil, noEOF(err)
	}
	h.Table = make(ac.Table[byte], 0, distinct)
	var total uint64
	for i := 0; i < len(entries); i += entryLen {
		c := ac.Count[byte]{Symbol: entries[i], Count: binary.LittleEndian.Uint64(entries[i+1:])}
		if c.Count > h.SymbolCount-total {
			return Header{}, nil, errors.Wrapf(ErrCorrupt, "count %d of %q exceeds symbol count %d", c.Count, c.Symbol, h.SymbolCount)
		}
		total += c.Count
		h.Table = append(h.Table, c)
	}
	if total != h.SymbolCount {
		return Header{}, nil, errors.Wrapf(ErrCorrupt, "counts add up to %d, want %d", total, h.SymbolCount)
	}

	// The declared length is not trusted for allocation.
	var bb bytes.Buffer
	cnt, err := io.CopyN(&bb, r, int64(bufLen))
	if uint64(cnt) < bufLen {
		return Header{}, nil, noEOF(err)
	}
	return h, bb.Bytes(), nil
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
