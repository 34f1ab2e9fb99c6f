package wire

import "github.com/spaolacci/murmur3"

// Hash buckets an encoded record. The 128-bit murmur3 sum of the bytes is
// reduced to the higher order bits of its first half, keeping the lower
// order ones free in case they are wanted separately later.
func Hash(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	v1, _ := murmur3.Sum128(b)
	return int(v1 >> 32)
}

// Hash returns the bucket hash of the fields buffered so far.
func (e *Encoder) Hash() int {
	return Hash(e.buf.Bytes())
}
