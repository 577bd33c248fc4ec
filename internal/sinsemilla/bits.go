package sinsemilla

import "github.com/bits-and-blooms/bitset"

// BitsFromBytes expands b into a little-endian bit sequence (bit 0 of
// byte 0 first), the convention every Sinsemilla message and every
// running-sum window uses throughout this module.
func BitsFromBytes(b []byte) []bool {
	bs := bitset.New(uint(len(b)) * 8)
	for byteIdx, v := range b {
		for bit := 0; bit < 8; bit++ {
			if v&(1<<uint(bit)) != 0 {
				bs.Set(uint(byteIdx*8 + bit))
			}
		}
	}
	out := make([]bool, len(b)*8)
	for i := range out {
		out[i] = bs.Test(uint(i))
	}
	return out
}
