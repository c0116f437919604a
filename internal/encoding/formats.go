package encoding

// formats.go implements the three plain serializations the command line front end can select
// with -format: raw bytes, an ASCII binary rendering and an ASCII hex rendering. All three
// include the origin word as the first word emitted, matching the raw object format the
// assembler has always produced.

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/lc3kit/asm/internal/vm"
)

var errShortRaw = errors.New("raw: object too small")

// Raw marshals object code as two bytes per word, high byte first, the origin word first.
type Raw struct {
	Code vm.ObjectCode
}

func (r Raw) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	words := append([]vm.Word{r.Code.Orig}, r.Code.Code...)
	if err := binary.Write(&buf, binary.BigEndian, words); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the raw format produced by MarshalBinary: the origin word followed by
// zero or more code words, each big-endian.
func (r *Raw) UnmarshalBinary(bs []byte) error {
	if len(bs) < 2 || len(bs)%2 != 0 {
		return errShortRaw
	}

	words := make([]vm.Word, len(bs)/2)
	if err := binary.Read(bytes.NewReader(bs), binary.BigEndian, words); err != nil {
		return err
	}

	r.Code = vm.ObjectCode{Orig: words[0], Code: words[1:]}

	return nil
}

// BinASCII marshals every word, including the origin, as 16 '0'/'1' characters followed by a
// newline.
type BinASCII struct {
	Code vm.ObjectCode
}

func (b BinASCII) MarshalText() ([]byte, error) {
	var buf bytes.Buffer

	words := append([]vm.Word{b.Code.Orig}, b.Code.Code...)

	for _, w := range words {
		for bit := 15; bit >= 0; bit-- {
			if w&(1<<uint(bit)) != 0 {
				buf.WriteByte('1')
			} else {
				buf.WriteByte('0')
			}
		}

		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// HexASCII marshals every word, including the origin, as "0x" followed by four uppercase hex
// digits and a newline.
type HexASCII struct {
	Code vm.ObjectCode
}

func (h HexASCII) MarshalText() ([]byte, error) {
	var buf bytes.Buffer

	words := append([]vm.Word{h.Code.Orig}, h.Code.Code...)

	for _, w := range words {
		fmt.Fprintf(&buf, "0x%04X\n", uint16(w))
	}

	return buf.Bytes(), nil
}
