package ac

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPackBits(t *testing.T) {
	tests := []struct {
		bits string
		want []byte
	}{
		{"", []byte{}},
		{"1", []byte{0x80}},
		{"0000000", []byte{0x00}},
		{"10110011", []byte{0xb3}},
		{"101100111", []byte{0xb3, 0x80}},
		{"1111111100000001011", []byte{0xff, 0x01, 0x60}},
	}
	for _, tt := range tests {
		bits := make([]bool, len(tt.bits))
		for i, c := range tt.bits {
			bits[i] = c == '1'
		}
		got := PackBits(bits)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PackBits(%s) mismatch (-want +got):\n%s", tt.bits, diff)
		}

		// Unpacking restores the bits followed by the zero padding.
		unpacked := UnpackBits(got)
		if len(unpacked)%8 != 0 || len(unpacked) < len(bits) {
			t.Fatalf("%s: %d bits unpacked", tt.bits, len(unpacked))
		}
		if diff := cmp.Diff(bits, unpacked[:len(bits)]); diff != "" {
			t.Errorf("UnpackBits(%x) mismatch (-want +got):\n%s", got, diff)
		}
		for i, b := range unpacked[len(bits):] {
			if b {
				t.Errorf("%s: padding bit %d is set", tt.bits, i)
			}
		}
	}
}
