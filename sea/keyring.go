//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package sea recovers the plaintext of RCT Classic '.sea' scenario
// files, which wrap an RCT1 scenario in a stream cipher keyed by the
// file's own name.
package sea

import (
	"math/bits"
)

const (
	// MaskSize is the keystream length, fixed regardless of file size.
	MaskSize = 0x1000

	seedSalt = 0xF7654321
)

// Key seeds the keystream. Both words are derived from the bare file
// name, so the name (case and extension included) is part of the
// format: a different spelling yields a valid key and garbage output,
// with no error signalled anywhere.
type Key struct {
	Seed0 uint32
	Seed1 uint32
}

// DeriveKey folds a file name into a Key. Seed0 accumulates the name
// bytes last to first, Seed1 first to last, with the same shift-add
// hash on wrapping 32-bit words. An empty name gives the zero key.
func DeriveKey(fileName string) (key Key) {
	for i := len(fileName) - 1; i >= 0; i-- {
		key.Seed0 = (key.Seed0 + key.Seed0<<5) ^ uint32(fileName[i])
	}

	for i := 0; i < len(fileName); i++ {
		key.Seed1 = (key.Seed1 + key.Seed1<<5) ^ uint32(fileName[i])
	}

	return
}

// Keyring emits the keystream, four bytes per generator round. The
// emission order is part of the format: a round yields the three low
// slices of seed0 as it stood before the round stepped it, then the
// top byte of the freshly stepped seed1.
type Keyring struct {
	seed0 uint32
	seed1 uint32

	round [4]byte
	index int
}

func NewKeyring(key Key) (kr *Keyring) {
	kr = &Keyring{
		seed0: key.Seed0,
		seed1: key.Seed1,
	}

	return
}

// Next returns the next keystream byte.
func (kr *Keyring) Next() (k byte) {
	if kr.index == 0 {
		s0 := kr.seed0
		kr.seed0 = bits.RotateLeft32(kr.seed1^seedSalt, 25) + s0
		kr.seed1 = bits.RotateLeft32(s0, 29)

		kr.round[0] = byte(s0 >> 3)
		kr.round[1] = byte(s0 >> 11)
		kr.round[2] = byte(s0 >> 19)
		kr.round[3] = byte(kr.seed1 >> 24)
	}

	k = kr.round[kr.index]
	kr.index = (kr.index + 1) & 3

	return
}

func (kr *Keyring) Read(buff []byte) (size int, err error) {
	for n := range buff {
		buff[n] = kr.Next()
	}
	size = len(buff)

	return
}

// CreateMask materializes the MaskSize-byte keystream for a key. A
// mask is immutable once created and may be shared across decodes of
// files carrying the same name.
func CreateMask(key Key) (mask []byte) {
	mask = make([]byte, MaskSize)
	NewKeyring(key).Read(mask)

	return
}
