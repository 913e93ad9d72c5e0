// Package arith provides a lossless compression/decompression utility built on a static, order-0 arithmetic coder.
// The symbol frequencies of the whole input are counted upfront and stored alongside the encoded buffer.
// The coder itself lives in package ac and its subpackages.
//
// Below is an example of using this package to compress Lincoln's Gettysburg address:
//
//	go run compress/main.go gettysburg.txt > gettys.ac
//	cat gettys.ac | go run decompress/main.go > gettys.dac
//	diff gettysburg.txt gettys.dac
package arith

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/fumin/arith/ac"
	"github.com/fumin/arith/ac/witten"
	"github.com/pkg/errors"
)

// Encode encodes text and returns the header describing it together with the encoded buffer.
func Encode(text []byte) (Header, []byte, error) {
	h := Header{SymbolCount: uint64(len(text)), Table: ac.CountSymbols(text)}
	p, err := ac.BuildPartition(h.Table)
	if err != nil {
		return Header{}, nil, errors.Wrap(err, "")
	}
	buf, err := witten.Encode(text, p)
	if err != nil {
		return Header{}, nil, errors.Wrap(err, "")
	}
	return h, buf, nil
}

// Decode is the inverse of Encode.
func Decode(h Header, buf []byte) ([]byte, error) {
	p, err := ac.BuildPartition(h.Table)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	text, err := witten.Decode[byte](buf, p, int(h.SymbolCount))
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return text, nil
}

// Compress compresses the file name and writes the container to w.
func Compress(w io.Writer, name string) error {
	text, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if err := CompressBytes(w, text); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}

// CompressBytes compresses text and writes the container to w.
func CompressBytes(w io.Writer, text []byte) error {
	h, buf, err := Encode(text)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if err := WriteContainer(w, h, buf); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// Decompress reads a container from r and writes the decompressed text to w.
func Decompress(w io.Writer, r io.Reader) error {
	h, buf, err := ReadContainer(r)
	if err != nil {
		return errors.Wrap(err, "")
	}
	text, err := Decode(h, buf)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := w.Write(text); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// Dump writes buf to w as space separated hexadecimal bytes, followed by a newline.
func Dump(w io.Writer, buf []byte) error {
	bw := bufio.NewWriter(w)
	for _, b := range buf {
		if _, err := fmt.Fprintf(bw, "%02x ", b); err != nil {
			return errors.Wrap(err, "")
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
