package main

import (
	"bytes"
	"io"
	"sort"

	"github.com/dsnet/compress/bzip2"
	"github.com/fumin/arith"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// A compressor returns the compressed size of data in bytes.
type compressor func(data []byte) (int, error)

var compressors = make(map[string]compressor)

func registerCompressor(name string, c compressor) {
	compressors[name] = c
}

// registerStream registers a compressor built on a streaming writer.
func registerStream(name string, newWriter func(io.Writer) (io.WriteCloser, error)) {
	registerCompressor(name, func(data []byte) (int, error) {
		var buf bytes.Buffer
		zw, err := newWriter(&buf)
		if err != nil {
			return -1, errors.Wrap(err, name)
		}
		if _, err := zw.Write(data); err != nil {
			return -1, errors.Wrap(err, name)
		}
		if err := zw.Close(); err != nil {
			return -1, errors.Wrap(err, name)
		}
		return buf.Len(), nil
	})
}

func codecNames() []string {
	names := make([]string, 0, len(compressors))
	for name := range compressors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	registerCompressor("arith", func(data []byte) (int, error) {
		var buf bytes.Buffer
		if err := arith.CompressBytes(&buf, data); err != nil {
			return -1, errors.Wrap(err, "arith")
		}
		return buf.Len(), nil
	})
	registerStream("zstd", func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	})
	registerStream("gzip", func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	})
	registerStream("xz", func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	})
	registerStream("bzip2", func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	})
}
