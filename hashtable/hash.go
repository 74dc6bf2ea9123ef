// SPDX-License-Identifier: MIT
package hashtable

import "unicode/utf16"

// Hash is the textbook string hash h = h*31 + c over the UTF-16 code units of
// key, wrapped to int32 and made non-negative. For ASCII keys it equals the
// absolute value of Java's String.hashCode. math.MinInt32 maps to 2147483648.
// Not suitable for anything beyond teaching.
func Hash(key string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(key)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}

	return int(v)
}

// Index maps a hash to a bucket: hash mod capacity.
func Index(hash, capacity int) int {
	return hash % capacity
}
