package main

import (
	"io/ioutil"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// A measurer approximates the complexity of files by their compressed size.
type measurer struct {
	compress compressor
	cache    *lru.Cache[string, float64]
}

func newMeasurer(c compressor, cacheSize int) (*measurer, error) {
	cache, err := lru.New[string, float64](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return &measurer{compress: c, cache: cache}, nil
}

// complexity returns the compressed size of the concatenation of the files fpaths.
func (m *measurer) complexity(fpaths ...string) (float64, error) {
	key := ""
	for _, fpath := range fpaths {
		key += fpath + "\x00"
	}
	if size, ok := m.cache.Get(key); ok {
		return size, nil
	}

	var data []byte
	for _, fpath := range fpaths {
		b, err := ioutil.ReadFile(fpath)
		if err != nil {
			return -1, errors.Wrap(err, "")
		}
		data = append(data, b...)
	}
	n, err := m.compress(data)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}

	size := float64(n)
	m.cache.Add(key, size)
	return size, nil
}

// distance returns the normalized compression distance between the files x and y.
func (m *measurer) distance(x, y string) (float64, error) {
	kxy, err := m.complexity(x, y)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	kx, err := m.complexity(x)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	ky, err := m.complexity(y)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}

	minxy := kx
	if ky < kx {
		minxy = ky
	}
	maxxy := kx
	if ky > kx {
		maxxy = ky
	}

	if maxxy == 0 {
		return 0, nil
	}
	dist := (kxy - minxy) / maxxy
	return dist, nil
}

// distanceMatrix returns the upper triangle of the distance matrix of data, row by row.
func (m *measurer) distanceMatrix(data []string) ([]float64, error) {
	n := len(data)
	mat := make([]float64, 0, n*(n-1)/2)
	for i, dx := range data[:n-1] {
		for _, dy := range data[i+1:] {
			dist, err := m.distance(dx, dy)
			if err != nil {
				return nil, errors.Wrap(err, "")
			}
			mat = append(mat, dist)
			log.Printf("\"%s\"-\"%s\": %f", dx, dy, dist)
		}
	}
	return mat, nil
}
