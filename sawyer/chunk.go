//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package sawyer decodes the chunked container format that RCT1
// scenario and save payloads use once decrypted.
package sawyer

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-restruct/restruct"
)

// Chunk payload encodings.
const (
	EncodingNone      = 0
	EncodingRLE       = 1
	EncodingRLERepeat = 2 // RLE, then repeat expansion
	EncodingRotate    = 3
)

type ChunkHeader struct {
	Encoding uint8  // 00:
	Length   uint32 // 01: payload bytes following the header
}

const chunkHeaderSize = 5

type Chunk struct {
	Header ChunkHeader
	Data   []byte // payload, still encoded
}

// ReadChunk reads one chunk header and its raw payload. At a clean end
// of input it returns io.EOF; a header that promises more payload than
// the input holds returns io.ErrUnexpectedEOF.
func ReadChunk(reader io.Reader) (chunk *Chunk, err error) {
	buff := make([]byte, chunkHeaderSize)
	_, err = io.ReadFull(reader, buff)
	if err != nil {
		return
	}

	var header ChunkHeader
	err = restruct.Unpack(buff, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	data := make([]byte, header.Length)
	_, err = io.ReadFull(reader, data)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return
	}

	chunk = &Chunk{Header: header, Data: data}

	return
}

// ReadChunks reads chunks until the input is exhausted.
func ReadChunks(reader io.Reader) (chunks []*Chunk, err error) {
	for {
		var chunk *Chunk
		chunk, err = ReadChunk(reader)
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			return
		}

		chunks = append(chunks, chunk)
	}
}

// Decode expands the chunk payload according to its encoding.
func (chunk *Chunk) Decode() (out []byte, err error) {
	switch chunk.Header.Encoding {
	case EncodingNone:
		out = append([]byte{}, chunk.Data...)
	case EncodingRLE:
		out, err = decodeRLE(chunk.Data)
	case EncodingRLERepeat:
		out, err = decodeRLE(chunk.Data)
		if err == nil {
			out, err = decodeRepeat(out)
		}
	case EncodingRotate:
		out = decodeRotate(chunk.Data)
	default:
		err = fmt.Errorf("chunk encoding %v unknown", chunk.Header.Encoding)
	}

	return
}
