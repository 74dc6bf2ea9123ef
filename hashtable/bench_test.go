package hashtable_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/algotrace/hashtable"
)

// BenchmarkPut_WithRehash inserts 100 keys into a small table, forcing
// several rehash sub-traces.
func BenchmarkPut_WithRehash(b *testing.B) {
	keys := make([]string, 100)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := hashtable.NewState[int](4, hashtable.DefaultLoadFactor)
		for j, k := range keys {
			s = hashtable.Put(s, k, j).Final
		}
	}
}
