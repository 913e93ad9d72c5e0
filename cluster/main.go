// Command cluster prints the normalized compression distance matrix of the files in a directory.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io/ioutil"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	flagConfig = flag.String("c", `{
		"Dir": "testdata",
		"Codec": "arith",
		"CacheSize": 1024
		}`, "configuration")
)

// Config configures a distance computation.
type Config struct {
	// Dir is the directory whose files are compared.
	Dir string

	// Codec names the compressor that approximates the Kolmogorov complexity.
	Codec string

	// CacheSize is the number of compressed sizes kept in memory.
	CacheSize int
}

func parseConfig(s string) (Config, error) {
	var config Config
	if err := json.Unmarshal([]byte(s), &config); err != nil {
		return Config{}, errors.Wrap(err, "")
	}
	if _, ok := compressors[config.Codec]; !ok {
		return Config{}, errors.Errorf("unknown codec %q, want one of %v", config.Codec, codecNames())
	}
	if config.CacheSize <= 0 {
		return Config{}, errors.Errorf("cache size %d", config.CacheSize)
	}
	return config, nil
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	config, err := parseConfig(*flagConfig)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := run(config); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(config Config) error {
	data, err := listFiles(config.Dir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	m, err := newMeasurer(compressors[config.Codec], config.CacheSize)
	if err != nil {
		return errors.Wrap(err, "")
	}
	distMat, err := m.distanceMatrix(data)
	if err != nil {
		return errors.Wrap(err, "")
	}

	names, dists := display(data, distMat)
	log.Printf("[%s]", names)
	log.Printf("[%s]", dists)
	return nil
}

// display formats the file names and the distance matrix as comma separated arrays.
func display(data []string, distMat []float64) (string, string) {
	buf := bytes.NewBuffer(nil)
	for i, fpath := range data {
		name := filepath.Base(fpath)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		buf.WriteString(strconv.Quote(base))
		if i < len(data)-1 {
			buf.WriteByte(',')
		}
	}
	names := buf.String()

	buf.Reset()
	for i, f := range distMat {
		buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
		if i < len(distMat)-1 {
			buf.WriteByte(',')
		}
	}
	return names, buf.String()
}

func listFiles(dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	data := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data = append(data, filepath.Join(dir, f.Name()))
	}
	if len(data) < 2 {
		return nil, errors.Errorf("%s: need at least two files, got %d", dir, len(data))
	}
	return data, nil
}
