package internal

import (
	"encoding/binary"
	"iter"
)

// Words iterates the little-endian 16-bit words of data, with their index.
// A trailing odd byte is not visited.
func Words(data []byte) iter.Seq2[int, uint16] {
	return func(yield func(int, uint16) bool) {
		for n := range len(data) / 2 {
			if !yield(n, binary.LittleEndian.Uint16(data[2*n:])) {
				return // Stop if the consumer stops
			}
		}
	}
}

// AppendWords appends the values of a word sequence in little-endian order.
func AppendWords[K any](data []byte, words iter.Seq2[K, uint16]) []byte {
	for _, word := range words {
		data = binary.LittleEndian.AppendUint16(data, word)
	}
	return data
}
