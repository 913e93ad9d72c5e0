package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/fumin/arith"
	"github.com/pkg/errors"
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run() error {
	w := bufio.NewWriter(os.Stdout)
	if err := arith.Decompress(w, bufio.NewReader(os.Stdin)); err != nil {
		return errors.Wrap(err, "")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
