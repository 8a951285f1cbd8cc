package tuplekey

import (
	"bytes"
	"reflect"
	"sort"
	"testing"
)

func TestEncode7_KnownVectors(t *testing.T) {
	cases := []struct {
		in  []byte
		out []byte
	}{
		// 0x61 = 01100001 -> groups 0110000, 1000000(padded)
		{[]byte{0x61}, []byte{0x61, 0x80}},
		{[]byte{0x00}, []byte{0x01, 0x00}},
		{[]byte{0xff}, []byte{0xff, 0x80}},
		{nil, nil},
	}
	for _, tc := range cases {
		got := Encode7(tc.in)
		if !bytes.Equal(got, tc.out) {
			t.Errorf("Encode7(%x): expected %x, got %x", tc.in, tc.out, got)
		}
	}
}

func TestEncode7_ContinuationBits(t *testing.T) {
	coded := Encode7([]byte("hello, world"))
	for i, b := range coded {
		last := i == len(coded)-1
		if cont := b&1 == 1; cont == last {
			t.Errorf("byte %d: continuation bit %v at last=%v", i, cont, last)
		}
	}
}

func TestDecode7_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xff},
		[]byte("a"),
		[]byte("hello, world"),
		{0x00, 0x01, 0x02, 0xfe, 0xff},
		bytes.Repeat([]byte{0xab}, 100),
	}
	for _, in := range inputs {
		out, err := Decode7(Encode7(in))
		if err != nil {
			t.Fatalf("decode %x: %v", in, err)
		}
		if !bytes.Equal(out, in) {
			t.Errorf("round trip %x: got %x", in, out)
		}
	}
}

func TestDecode7_Corrupt(t *testing.T) {
	cases := []struct {
		name  string
		coded []byte
	}{
		{"unterminated", []byte{0xc3, 0x81}},
		{"early terminator", []byte{0xc2, 0x80}},
		{"nonzero padding", []byte{0xc3, 0x82}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode7(tc.coded); err == nil {
				t.Error("expected corruption error")
			}
		})
	}
}

func TestPack_Unpack(t *testing.T) {
	tuples := []Tuple{
		{},
		{""},
		{"", ""},
		{"a"},
		{"a", "b"},
		{"compaction", "01234567", "input"},
		{string([]byte{0x00, 0xff})},
	}
	for _, tup := range tuples {
		back, err := Unpack(Pack(tup))
		if err != nil {
			t.Fatalf("unpack %q: %v", tup, err)
		}
		if len(tup) == 0 && len(back) == 0 {
			continue
		}
		if !reflect.DeepEqual(back, tup) {
			t.Errorf("round trip %q: got %q", tup, back)
		}
	}
}

func TestPack_OrderPreserving(t *testing.T) {
	tuples := []Tuple{
		{"a"},
		{"a", ""},
		{"a", "b"},
		{"ab"},
		{"b"},
		{"b", "a", "c"},
		{"ba"},
	}
	packed := make([][]byte, len(tuples))
	for i, tup := range tuples {
		packed[i] = Pack(tup)
	}
	if !sort.SliceIsSorted(packed, func(i, j int) bool {
		return bytes.Compare(packed[i], packed[j]) < 0
	}) {
		t.Errorf("packed keys out of order: %x", packed)
	}
}

func TestPack_PrefixProperty(t *testing.T) {
	full := Pack(Tuple{"table", "row", "col"})
	prefix := Pack(Tuple{"table", "row"})
	if !bytes.HasPrefix(full, prefix) {
		t.Errorf("expected %x to extend %x", full, prefix)
	}
}

func TestHasPrefix(t *testing.T) {
	tup := Tuple{"a", "b", "c"}
	if !tup.HasPrefix(Tuple{}) || !tup.HasPrefix(Tuple{"a", "b"}) || !tup.HasPrefix(tup) {
		t.Error("expected prefixes to match")
	}
	if tup.HasPrefix(Tuple{"b"}) || tup.HasPrefix(Tuple{"a", "b", "c", "d"}) {
		t.Error("expected non-prefixes to miss")
	}
}

func TestPrefixSuccessor(t *testing.T) {
	if got := PrefixSuccessor([]byte{0x01, 0x02}); !bytes.Equal(got, []byte{0x01, 0x03}) {
		t.Errorf("expected 0103, got %x", got)
	}
	if got := PrefixSuccessor([]byte{0x01, 0xff}); !bytes.Equal(got, []byte{0x02}) {
		t.Errorf("expected 02, got %x", got)
	}
	if got := PrefixSuccessor([]byte{0xff, 0xff}); got != nil {
		t.Errorf("expected nil, got %x", got)
	}
}
