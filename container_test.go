package arith

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestContainerLayout(t *testing.T) {
	h, buf, err := Encode([]byte("aaab"))
	assert.Nil(t, err)

	var bb bytes.Buffer
	assert.Nil(t, WriteContainer(&bb, h, buf))

	want := []byte{
		4, 0, 0, 0, 0, 0, 0, 0, // symbol count
		5, 0, 0, 0, 0, 0, 0, 0, // encoded length
		2, 0, 0, 0, 0, 0, 0, 0, // distinct symbols
		'a', 3, 0, 0, 0, 0, 0, 0, 0,
		'b', 1, 0, 0, 0, 0, 0, 0, 0,
		0x5e, 0x80, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, bb.Bytes())

	gotH, gotBuf, err := ReadContainer(bytes.NewReader(want))
	assert.Nil(t, err)
	assert.Equal(t, h, gotH)
	assert.Equal(t, buf, gotBuf)

	text, err := Decode(gotH, gotBuf)
	assert.Nil(t, err)
	assert.Equal(t, "aaab", string(text))
}

func TestContainerEOF(t *testing.T) {
	_, _, err := ReadContainer(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)

	h, buf, err := Encode([]byte("the quick brown fox"))
	assert.Nil(t, err)
	var bb bytes.Buffer
	assert.Nil(t, WriteContainer(&bb, h, buf))
	data := bb.Bytes()
	for n := 1; n < len(data); n++ {
		_, _, err := ReadContainer(bytes.NewReader(data[:n]))
		assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err), "prefix of %d bytes", n)
	}
}

func TestContainerCorrupt(t *testing.T) {
	header := func(count, bufLen, distinct uint64, entries ...ac.Count[byte]) []byte {
		b := binary.LittleEndian.AppendUint64(nil, count)
		b = binary.LittleEndian.AppendUint64(b, bufLen)
		b = binary.LittleEndian.AppendUint64(b, distinct)
		for _, c := range entries {
			b = append(b, c.Symbol)
			b = binary.LittleEndian.AppendUint64(b, c.Count)
		}
		return b
	}

	vectors := []struct {
		desc  string
		input []byte
	}{{
		"too many distinct symbols",
		header(1, 0, 257),
	}, {
		"counts do not add up",
		header(5, 0, 2, ac.Count[byte]{Symbol: 'a', Count: 3}, ac.Count[byte]{Symbol: 'b', Count: 1}),
	}, {
		"counts overflow",
		header(5, 0, 2, ac.Count[byte]{Symbol: 'a', Count: 3}, ac.Count[byte]{Symbol: 'b', Count: 1 << 63}),
	}, {
		"negative encoded length",
		header(0, 1<<63, 0),
	}, {
		"negative symbol count",
		header(1<<63, 0, 1, ac.Count[byte]{Symbol: 'a', Count: 1 << 63}),
	}}
	for _, v := range vectors {
		_, _, err := ReadContainer(bytes.NewReader(v.input))
		assert.Equal(t, ErrCorrupt, errors.Cause(err), v.desc)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestContainerWriteError(t *testing.T) {
	h, buf, err := Encode([]byte("abc"))
	assert.Nil(t, err)
	err = WriteContainer(failWriter{}, h, buf)
	assert.Equal(t, io.ErrClosedPipe, errors.Cause(err))
}

func TestDecompressCorruptBuffer(t *testing.T) {
	h, buf, err := Encode([]byte("four score and seven years ago"))
	assert.Nil(t, err)

	// Dropping the tail of the encoded buffer must be reported, not zero filled.
	var bb bytes.Buffer
	assert.Nil(t, WriteContainer(&bb, h, buf[:len(buf)-1]))
	err = Decompress(io.Discard, &bb)
	assert.True(t, errors.Is(err, ac.ErrTruncated), "%+v", err)
}

func TestDecompressHugeSymbolCount(t *testing.T) {
	b := binary.LittleEndian.AppendUint64(nil, 1<<62)
	b = binary.LittleEndian.AppendUint64(b, 4)
	b = binary.LittleEndian.AppendUint64(b, 2)
	b = append(b, 'a')
	b = binary.LittleEndian.AppendUint64(b, 1<<61)
	b = append(b, 'b')
	b = binary.LittleEndian.AppendUint64(b, 1<<61)
	b = append(b, 0x12, 0x34, 0x56, 0x78)

	// The header is well formed, but four bytes cannot hold that many symbols.
	err := Decompress(io.Discard, bytes.NewReader(b))
	assert.True(t, errors.Is(err, ac.ErrTruncated), "%+v", err)
}
