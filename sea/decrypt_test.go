//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sea

import (
	"bytes"
	"errors"
	"testing"
)

// Golden vectors were captured from a reference run of the legacy
// decoder and pin the exact keystream and index arithmetic.

func TestDecodeFileGolden(t *testing.T) {
	raw := []byte{0x12, 0x34, 0x56, 0x78, 0x00, 0x00, 0x00, 0x00}

	plain, err := DecodeFile("TEST.SC4", raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	expected := []byte{0x2f, 0xb3, 0x04, 0xd5}
	if !bytes.Equal(plain, expected) {
		t.Fatalf("plaintext: expected %#v, got %#v", expected, plain)
	}
}

func TestDecryptGolden(t *testing.T) {
	mask := CreateMask(DeriveKey("TEST.SC4"))

	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}

	expected := []byte{
		0x61, 0x88, 0x38, 0x4c, 0x24, 0x24, 0xf4, 0xec,
		0x1b, 0x10, 0xf6, 0xf8, 0x46, 0x14, 0x39, 0x1f,
	}
	if out := Decrypt(data, mask); !bytes.Equal(out, expected) {
		t.Fatalf("plaintext: expected %#v, got %#v", expected, out)
	}
}

func TestDecryptLeavesInput(t *testing.T) {
	mask := CreateMask(DeriveKey("TEST.SC4"))

	data := []byte{0xde, 0xad, 0xbe, 0xef}
	saved := append([]byte{}, data...)

	Decrypt(data, mask)
	if !bytes.Equal(data, saved) {
		t.Fatalf("input mutated: %#v", data)
	}
}

func TestDecodeFileDeterminism(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}

	first, err := DecodeFile("Forest Frontiers.sea", raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := DecodeFile("Forest Frontiers.sea", raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("outputs differ: %#v vs %#v", first, second)
	}

	expected := []byte{0x47, 0xdd, 0xae, 0x51}
	if !bytes.Equal(first, expected) {
		t.Fatalf("plaintext: expected %#v, got %#v", expected, first)
	}
}

func TestDecodeFileLength(t *testing.T) {
	for _, size := range []int{4, 5, 21, 100} {
		raw := make([]byte, size)

		plain, err := DecodeFile("TEST.SC4", raw)
		if err != nil {
			t.Fatalf("size %v: %v", size, err)
		}
		if len(plain) != size-4 {
			t.Fatalf("size %v: expected %v plaintext bytes, got %v", size, size-4, len(plain))
		}
	}
}

func TestDecodeFileTooShort(t *testing.T) {
	for size := 0; size < 4; size++ {
		_, err := DecodeFile("TEST.SC4", make([]byte, size))
		if !errors.Is(err, ErrTooShort) {
			t.Fatalf("size %v: expected ErrTooShort, got %v", size, err)
		}
	}
}

func TestDecodeFileChecksum(t *testing.T) {
	raw := []byte{0x12, 0x34, 0x56, 0x78, 0xaa, 0xbb, 0xcc, 0xdd}

	_, checksum, err := DecodeFileChecksum("TEST.SC4", raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if checksum != 0xddccbbaa {
		t.Fatalf("checksum: expected %#v, got %#v", uint32(0xddccbbaa), checksum)
	}
}
