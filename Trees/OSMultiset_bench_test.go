package Trees

import (
	"testing"

	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN uint32 = 1 << 17
	bQryN uint32 = bAddN / 2
)

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		tree := New[int64, uint32]()
		for range bAddN {
			tree.Insert(rg.Int63())
		}
	}
}

// ascending input is the worst case, keep it small.
func BenchmarkInsertSorted(b *testing.B) {
	for range b.N {
		tree := New[int64, uint32]()
		for i := range int64(bAddN >> 6) {
			tree.Insert(i)
		}
	}
}

func BenchmarkLLRBInsert(b *testing.B) {
	for range b.N {
		tree := llrb.New()
		for range bAddN {
			tree.InsertNoReplace(llrbKey(rg.Int63()))
		}
	}
}

func BenchmarkRankOf(b *testing.B) {
	tree := New[int64, uint32]()
	for range bAddN {
		tree.Insert(rg.Int63n(int64(bAddN)))
	}
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.RankOf(rg.Int63n(int64(bAddN)), true)
		}
	}
}

func BenchmarkFrom(b *testing.B) {
	all := make([]int64, bAddN)
	for i := range all {
		all[i] = int64(i >> 2)
	}
	b.ResetTimer()
	for range b.N {
		From[int64, uint32](all, false)
	}
}
