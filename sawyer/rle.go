//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sawyer

import (
	"errors"
	"math/bits"
)

var (
	// ErrTruncated is returned when an encoded payload ends inside a
	// control sequence.
	ErrTruncated = errors.New("encoded chunk truncated")
	// ErrBadOffset is returned when a repeat control points before the
	// start of the output.
	ErrBadOffset = errors.New("repeat offset before start of output")
)

// decodeRLE expands the run-length layer. A control byte with the high
// bit set is a run: the next byte repeated 257-control times. Any
// other control byte is followed by control+1 literal bytes.
func decodeRLE(src []byte) (dst []byte, err error) {
	for i := 0; i < len(src); i++ {
		code := int(src[i])
		if code&0x80 != 0 {
			i++
			if i >= len(src) {
				err = ErrTruncated
				return
			}
			count := 257 - code
			for n := 0; n < count; n++ {
				dst = append(dst, src[i])
			}
		} else {
			if i+1+code >= len(src) {
				err = ErrTruncated
				return
			}
			dst = append(dst, src[i+1:i+2+code]...)
			i += code + 1
		}
	}

	return
}

// decodeRepeat expands the back-reference layer that follows RLE in
// RLECompressed chunks. 0xff escapes one literal byte; any other
// control copies (control&7)+1 bytes from offset (control>>3)-32
// relative to the current end of output. Copies may overlap their own
// output, so they go byte by byte.
func decodeRepeat(src []byte) (dst []byte, err error) {
	for i := 0; i < len(src); i++ {
		if src[i] == 0xff {
			i++
			if i >= len(src) {
				err = ErrTruncated
				return
			}
			dst = append(dst, src[i])
			continue
		}

		count := int(src[i]&7) + 1
		start := len(dst) + int(src[i]>>3) - 32
		if start < 0 {
			err = ErrBadOffset
			return
		}
		for n := 0; n < count; n++ {
			dst = append(dst, dst[start+n])
		}
	}

	return
}

// decodeRotate undoes the per-byte bit rotation: byte i is rotated
// right by a counter that starts at 1 and advances by 2 modulo 8.
func decodeRotate(src []byte) (dst []byte) {
	dst = make([]byte, len(src))

	code := 1
	for i, b := range src {
		dst[i] = bits.RotateLeft8(b, -code)
		code = (code + 2) & 7
	}

	return
}
