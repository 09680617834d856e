//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sea

import (
	"encoding/binary"
	"fmt"
)

const checksumSize = 4

// Decrypt applies the keystream to data, returning the plaintext in a
// fresh buffer of the same length. Three rolling indices walk the
// mask; a and the in-place reduction of c happen modulo MaskSize at
// point of use, while b and c otherwise accumulate unreduced. The
// reduction points are part of the format and must not be moved.
func Decrypt(data, mask []byte) (out []byte) {
	out = make([]byte, len(data))

	var b, c uint32
	for i := range data {
		a := b % MaskSize
		c = c % MaskSize
		b = (a + 1) % MaskSize

		out[i] = ((data[i] - mask[b]) ^ mask[c]) + mask[a]

		c += 3
		b = a + 7
	}

	return
}

// DecodeFile decrypts the raw contents of a '.sea' file. fileName
// must be the bare file name, not a path, since it keys the cipher.
func DecodeFile(fileName string, raw []byte) (plain []byte, err error) {
	plain, _, err = DecodeFileChecksum(fileName, raw)

	return
}

// DecodeFileChecksum is DecodeFile, also returning the stored trailing
// checksum word. The word is never verified against the plaintext
// here; the legacy decoder does not check it either.
func DecodeFileChecksum(fileName string, raw []byte) (plain []byte, checksum uint32, err error) {
	if len(raw) < checksumSize {
		err = fmt.Errorf("%s: %w (%d bytes)", fileName, ErrTooShort, len(raw))
		return
	}

	body := raw[:len(raw)-checksumSize]
	checksum = binary.LittleEndian.Uint32(raw[len(raw)-checksumSize:])

	plain = Decrypt(body, CreateMask(DeriveKey(fileName)))

	return
}
