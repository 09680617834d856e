//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sawyer

// Checksum is the additive checksum used across the format family: a
// plain wrapping sum of every byte into a 32-bit word. It is exposed
// for callers that want to compare against a file's stored trailing
// word; the legacy loaders mostly do not.
func Checksum(data []byte) (sum uint32) {
	for _, b := range data {
		sum += uint32(b)
	}

	return
}
