package wiredlist

import "math/rand"

const testIndexCount = 3000

// random indexes, generated upfront, so that the benchmarks don't measure the random generator
var testIndexes []int

func init() {
	testIndexes = randomInts(testIndexCount)
}

func randomInts(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = rand.Int()
	}

	return p
}

// returns an index valid for a list of size n, or n itself when inclusive is true
func randomIndex(i, n int, inclusive bool) int {
	if inclusive {
		n++
	}

	return testIndexes[i%len(testIndexes)] % n
}

func sequence(n int) *List[int] {
	l := &List[int]{}
	for i := 0; i < n; i++ {
		l.Append(i)
	}

	return l
}
