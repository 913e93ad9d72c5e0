package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/fumin/arith"
	"github.com/pkg/errors"
)

var verbose = flag.Bool("verbose", false, "log the encoded buffer and the compression ratio")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [filename]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	name := flag.Arg(0)
	if name == "" {
		var err error
		name, err = prompt(os.Stderr, os.Stdin, "Please enter the file containing your text")
		if err != nil {
			log.Fatalf("%+v", err)
		}
	}

	if err := run(os.Stdout, name, *verbose); err != nil {
		log.Fatalf("%+v", err)
	}
}

// prompt asks for a value on w and reads the first word of the answer from r.
func prompt(w io.Writer, r io.Reader, question string) (string, error) {
	if _, err := fmt.Fprintln(w, question); err != nil {
		return "", errors.Wrap(err, "")
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "")
		}
		return "", errors.New("no filename given")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func run(w io.Writer, name string, verbose bool) error {
	if !verbose {
		if err := arith.Compress(w, name); err != nil {
			return errors.Wrap(err, "")
		}
		return nil
	}

	text, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	h, buf, err := arith.Encode(text)
	if err != nil {
		return errors.Wrap(err, name)
	}
	if err := arith.Dump(os.Stderr, buf); err != nil {
		return errors.Wrap(err, "")
	}

	var out bytes.Buffer
	if err := arith.WriteContainer(&out, h, buf); err != nil {
		return errors.Wrap(err, "")
	}
	log.Printf("%s: %d symbols, %d distinct, %sB encoded, %sB container",
		name, h.SymbolCount, len(h.Table),
		unitconv.FormatPrefix(float64(len(buf)), unitconv.IEC, 2),
		unitconv.FormatPrefix(float64(out.Len()), unitconv.IEC, 2))
	if _, err := out.WriteTo(w); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
