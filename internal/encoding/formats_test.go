package encoding

import (
	"encoding"
	"testing"

	"github.com/lc3kit/asm/internal/vm"
)

var (
	_ encoding.BinaryMarshaler   = Raw{}
	_ encoding.BinaryUnmarshaler = (*Raw)(nil)
	_ encoding.TextMarshaler     = BinASCII{}
	_ encoding.TextMarshaler     = HexASCII{}
)

var sample = vm.ObjectCode{
	Orig: 0x3000,
	Code: []vm.Word{0x5020, 0xf025},
}

func TestRaw_MarshalBinary(t *testing.T) {
	bs, err := Raw{Code: sample}.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []byte{0x30, 0x00, 0x50, 0x20, 0xf0, 0x25}
	if len(bs) != len(want) {
		t.Fatalf("got %d bytes, want %d: %x", len(bs), len(want), bs)
	}

	for i := range want {
		if bs[i] != want[i] {
			t.Errorf("byte %d: got %#02x, want %#02x", i, bs[i], want[i])
		}
	}
}

func TestRaw_UnmarshalBinary(t *testing.T) {
	bs := []byte{0x30, 0x00, 0x50, 0x20, 0xf0, 0x25}

	var raw Raw
	if err := raw.UnmarshalBinary(bs); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if raw.Code.Orig != sample.Orig || len(raw.Code.Code) != len(sample.Code) {
		t.Fatalf("got %#v, want %#v", raw.Code, sample)
	}

	for i := range sample.Code {
		if raw.Code.Code[i] != sample.Code[i] {
			t.Errorf("word %d: got %s, want %s", i, raw.Code.Code[i], sample.Code[i])
		}
	}
}

func TestRaw_UnmarshalBinary_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"odd length", []byte{0x30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw Raw
			if err := raw.UnmarshalBinary(tt.in); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRaw_RoundTrip(t *testing.T) {
	bs, err := Raw{Code: sample}.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}

	var raw Raw
	if err := raw.UnmarshalBinary(bs); err != nil {
		t.Fatalf("unmarshal: %s", err)
	}

	if raw.Code.Orig != sample.Orig {
		t.Errorf("Orig = %s, want %s", raw.Code.Orig, sample.Orig)
	}
}

func TestBinASCII_MarshalText(t *testing.T) {
	bs, err := BinASCII{Code: sample}.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := "0011000000000000\n" +
		"0101000000100000\n" +
		"1111000000100101\n"

	if string(bs) != want {
		t.Errorf("got:\n%s\nwant:\n%s", bs, want)
	}
}

func TestHexASCII_MarshalText(t *testing.T) {
	bs, err := HexASCII{Code: sample}.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := "0x3000\n0x5020\n0xF025\n"

	if string(bs) != want {
		t.Errorf("got %q, want %q", bs, want)
	}
}
