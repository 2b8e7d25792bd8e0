package Trees

import (
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN = 1 << 16
	bKeys = rg.Perm(bAddN)
)

var sideEff *int

func BenchmarkBSTree_Insert(b *testing.B) {
	for range b.N {
		tree := New[int]()
		for _, k := range bKeys {
			tree.Insert(k)
		}
	}
}

func BenchmarkArrBSTree_Insert(b *testing.B) {
	for range b.N {
		tree := NewArr[int, uint32](uint32(bAddN))
		for _, k := range bKeys {
			tree.Insert(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		tree := llrb.New()
		for _, k := range bKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkBSTree_Has(b *testing.B) {
	tree := New[int]()
	for _, k := range bKeys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for range b.N {
		for k := range bAddN {
			tree.Has(k)
		}
	}
}

func benchOrder(b *testing.B, tree Tree[int], order func(Tree[int]) Iterator[int]) {
	b.Helper()
	for _, k := range bKeys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for range b.N {
		for p := range Seq(order(tree)) {
			sideEff = p
		}
	}
}

func BenchmarkBSTree_PreOrder(b *testing.B) {
	benchOrder(b, New[int](), Tree[int].PreOrder)
}
func BenchmarkBSTree_InOrder(b *testing.B) {
	benchOrder(b, New[int](), Tree[int].InOrder)
}
func BenchmarkBSTree_PostOrder(b *testing.B) {
	benchOrder(b, New[int](), Tree[int].PostOrder)
}
func BenchmarkArrBSTree_PreOrder(b *testing.B) {
	benchOrder(b, NewArr[int, uint32](0), Tree[int].PreOrder)
}
func BenchmarkArrBSTree_InOrder(b *testing.B) {
	benchOrder(b, NewArr[int, uint32](0), Tree[int].InOrder)
}
func BenchmarkArrBSTree_PostOrder(b *testing.B) {
	benchOrder(b, NewArr[int, uint32](0), Tree[int].PostOrder)
}

func BenchmarkBTree_Ascend(b *testing.B) {
	tree := btree.NewOrderedG[int](32)
	for _, k := range bKeys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		tree.Ascend(func(k int) bool {
			sideEff = &k
			return true
		})
	}
}

func BenchmarkLLRB_Ascend(b *testing.B) {
	tree := llrb.New()
	for _, k := range bKeys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		tree.AscendGreaterOrEqual(llrb.Inf(-1), func(i llrb.Item) bool {
			k := int(i.(llrb.Int))
			sideEff = &k
			return true
		})
	}
}
