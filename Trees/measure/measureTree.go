package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/recordtree/Trees"
	"github.com/sirupsen/logrus"
)

var (
	bAddN = 100000
	bRmvN = bAddN
	bQryN = bRmvN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, all []int) (*Trees.RecordTree[uint32], []int) {
	b.Helper()
	tree := Trees.MakeRecordTree[uint32](Trees.WithStackCap(64))
	for range bAddN {
		a := _R.Int()
		tree.Insert(Trees.Record{ID: a})
		all = append(all, a)
	}
	return tree, all
}

var (
	__r1   bool
	depths []float64
)

func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *Trees.RecordTree[uint32]
		tree, all = create(b, all[:0])
		b.StartTimer()
		for _, v := range all[:bRmvN] {
			__r1 = tree.Remove(v)
		}
		for _, v := range all[bRmvN:] {
			__r1 = tree.Has(v)
		}
		for range bQryN {
			__r1 = tree.Has(_R.Int())
		}
		b.StopTimer()
		depths = append(depths, float64(tree.Height()))
		b.StartTimer()
	}
}

const bNumSteps = 20

func mean(xs []float64) float64 {
	var sum float64 = 0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

func main() {
	testing.Init()
	log := logrus.WithField("bench", "DelQry")
	var cs []float64
	for i := 1; i < bNumSteps; i++ {
		bRmvN = bAddN / bNumSteps * i
		bQryN = bRmvN
		depths = depths[:0]
		br := testing.Benchmark(BenchmarkDelQry)
		cs = append(cs, float64(br.T.Milliseconds())/float64(br.N))
		log.WithFields(logrus.Fields{
			"step":    i,
			"removed": bRmvN,
			"height":  mean(depths),
		}).Info("measured")
	}
	avg := mean(cs)
	fmt.Printf("average: %fms/op\n", avg)
	var sum float64 = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}
