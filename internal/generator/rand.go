package generator

import (
	"math/rand"
	"sync"
)

// Stage tags keep the per-record random streams of different stages disjoint.
const (
	stageCustomers int64 = iota + 1
	stageEmails
	stageMerchants
	stagePayments
	stageSettlements
)

// recordRand returns the random source for one record of one stage. Streams
// depend only on (seed, stage, index), so records can be produced by any
// number of workers and still come out identical.
func recordRand(seed, stage int64, index int) *rand.Rand {
	return rand.New(rand.NewSource(mix64(seed, stage, int64(index))))
}

// mix64 is a splitmix64-style finalizer over the three inputs.
func mix64(seed, stage, index int64) int64 {
	z := uint64(seed) ^ uint64(stage)*0x9e3779b97f4a7c15 ^ uint64(index)*0xbf58476d1ce4e5b9
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return int64(z)
}

// parallelFill runs fill for every index in [0, n), split across workers.
// fill must only write state owned by its index.
func parallelFill(n, workers int, fill func(i int)) {
	if workers <= 1 || n < workers*2 {
		for i := 0; i < n; i++ {
			fill(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fill(i)
			}
		}(start, end)
	}
	wg.Wait()
}

type weighted[T any] struct {
	value  T
	weight float64
}

// pickWeighted draws one value; weights need not sum to 1. The last entry is
// the fallback against floating point drift.
func pickWeighted[T any](rng *rand.Rand, choices []weighted[T]) T {
	var total float64
	for _, c := range choices {
		total += c.weight
	}
	r := rng.Float64() * total
	for _, c := range choices {
		if r < c.weight {
			return c.value
		}
		r -= c.weight
	}
	return choices[len(choices)-1].value
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}
