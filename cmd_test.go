package arith

import (
	"bytes"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestCompress(t *testing.T) {
	gettys, err := ioutil.ReadFile("gettysburg.txt")
	if err != nil {
		t.Fatalf("%v", err)
	}
	allBytes := make([]byte, 0, 3*256)
	for i := 0; i < 3*256; i++ {
		allBytes = append(allBytes, byte(i))
	}
	noise := make([]byte, 4096)
	rand.New(rand.NewSource(0)).Read(noise)

	tests := []struct {
		name     string
		contents []byte // nil means the file does not exist
	}{
		{name: "gettysburg", contents: gettys},
		{name: "empty", contents: []byte{}},
		{name: "one symbol", contents: bytes.Repeat([]byte{'z'}, 1000)},
		{name: "all bytes", contents: allBytes},
		{name: "noise", contents: noise},
		{name: "missing"},
	}
	for _, test := range tests {
		name := filepath.Join(t.TempDir(), "input")
		if test.contents != nil {
			if err := ioutil.WriteFile(name, test.contents, 0644); err != nil {
				t.Fatalf("%v", err)
			}
		}

		// Compress
		f, err := ioutil.TempFile(t.TempDir(), "arith.TestCompress.Compress")
		if err != nil {
			t.Fatalf("%v", err)
		}
		defer f.Close()
		err = Compress(f, name)
		if test.contents == nil {
			if !os.IsNotExist(errors.Cause(err)) {
				t.Errorf("%s: %+v", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %+v", test.name, err)
		}

		// Decompress
		if _, err := f.Seek(0, 0); err != nil {
			t.Fatalf("%v", err)
		}
		var decom bytes.Buffer
		if err := Decompress(&decom, f); err != nil {
			t.Fatalf("%s: %+v", test.name, err)
		}

		// Check if the decompressed result is the same as the original file
		if !bytes.Equal(test.contents, decom.Bytes()) {
			t.Errorf("%s: %v %v", test.name, test.contents, decom.Bytes())
		}
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, []byte{0x5e, 0x80, 0x00, 0x0f}); err != nil {
		t.Fatalf("%+v", err)
	}
	if got, want := buf.String(), "5e 80 00 0f \n"; got != want {
		t.Errorf("%q != %q", got, want)
	}
}
