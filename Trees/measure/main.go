package main

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bAddN     = 1 << 12
	bNumSteps = 20
)

var _R rand.Rand = *rand.New(rand.NewSource(0))

var sideEff int

// a contender builds its tree from keys and returns a function walking it in
// ascending order once.
type contender struct {
	name  string
	build func(keys []int) func()
}

func drain(it Trees.Iterator[int]) {
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		sideEff = *p
	}
}

var contenders = []contender{
	{"BSTree", func(keys []int) func() {
		tree := Trees.New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		return func() { drain(tree.InOrder()) }
	}},
	{"BSTree/post", func(keys []int) func() {
		tree := Trees.New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		return func() { drain(tree.PostOrder()) }
	}},
	{"ArrBSTree", func(keys []int) func() {
		tree := Trees.NewArr[int, uint32](uint32(len(keys)))
		for _, k := range keys {
			tree.Insert(k)
		}
		return func() { drain(tree.InOrder()) }
	}},
	{"google/btree", func(keys []int) func() {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
		return func() {
			tree.Ascend(func(k int) bool {
				sideEff = k
				return true
			})
		}
	}},
	{"gods/redblacktree", func(keys []int) func() {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, nil)
		}
		return func() {
			for it := tree.Iterator(); it.Next(); {
				sideEff = it.Key().(int)
			}
		}
	}},
	{"GoLLRB", func(keys []int) func() {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		return func() {
			tree.AscendGreaterOrEqual(llrb.Inf(-1), func(i llrb.Item) bool {
				sideEff = int(i.(llrb.Int))
				return true
			})
		}
	}},
}

// measure the walk of trees of growing sizes, returning ns per key of each step.
func measure(c contender, sorted bool) []float64 {
	var cs []float64
	for i := 1; i <= bNumSteps; i++ {
		n := bAddN / bNumSteps * i
		keys := _R.Perm(n)
		if sorted {
			slices.Sort(keys)
		}
		walk := c.build(keys)
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				walk()
			}
		})
		cs = append(cs, float64(br.NsPerOp())/float64(n))
	}
	return cs
}

func stats(cs []float64) (avg, stddev float64) {
	for _, v := range cs {
		avg += v
	}
	avg /= float64(len(cs))
	for _, v := range cs {
		a := v - avg
		stddev += a * a
	}
	return avg, math.Sqrt(stddev / float64(len(cs)))
}

func main() {
	testing.Init()
	for _, sorted := range []bool{false, true} {
		fmt.Printf("sorted insertion: %v\n", sorted)
		for _, c := range contenders {
			avg, sd := stats(measure(c, sorted))
			fmt.Printf("%-20s average: %fns/key stddev: %fns/key\n", c.name, avg, sd)
		}
	}
}
