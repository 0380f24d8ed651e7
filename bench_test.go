package wiredlist

import "testing"

func benchmarkGet(b *testing.B, n int) {
	l := sequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Get(randomIndex(i, n, false))
	}
}

func benchmarkInsertRemove(b *testing.B, n int) {
	l := sequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index := randomIndex(i, n, true)
		l.Insert(index, i)
		l.Remove(index)
	}
}

// cuts the second half of the list and embeds it back. The pointer work doesn't depend on the length of the
// segment, only walking to its ends does.
func benchmarkCutEmbed(b *testing.B, n int) {
	l := sequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, _ := l.Cut(n/2, n)
		l.Embed(n/2, c)
	}
}

func benchmarkMove(b *testing.B, n int) {
	l := sequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := randomIndex(i, n, false)
		to := from + randomIndex(i+1, n-from, true)
		l.Move(from, to, randomIndex(i+2, n-(to-from), true))
	}
}

func BenchmarkGet10(b *testing.B)     { benchmarkGet(b, 10) }
func BenchmarkGet100(b *testing.B)    { benchmarkGet(b, 100) }
func BenchmarkGet1000(b *testing.B)   { benchmarkGet(b, 1000) }
func BenchmarkGet10000(b *testing.B)  { benchmarkGet(b, 10000) }
func BenchmarkGet100000(b *testing.B) { benchmarkGet(b, 100000) }

func BenchmarkInsertRemove10(b *testing.B)     { benchmarkInsertRemove(b, 10) }
func BenchmarkInsertRemove100(b *testing.B)    { benchmarkInsertRemove(b, 100) }
func BenchmarkInsertRemove1000(b *testing.B)   { benchmarkInsertRemove(b, 1000) }
func BenchmarkInsertRemove10000(b *testing.B)  { benchmarkInsertRemove(b, 10000) }
func BenchmarkInsertRemove100000(b *testing.B) { benchmarkInsertRemove(b, 100000) }

func BenchmarkCutEmbed10(b *testing.B)     { benchmarkCutEmbed(b, 10) }
func BenchmarkCutEmbed100(b *testing.B)    { benchmarkCutEmbed(b, 100) }
func BenchmarkCutEmbed1000(b *testing.B)   { benchmarkCutEmbed(b, 1000) }
func BenchmarkCutEmbed10000(b *testing.B)  { benchmarkCutEmbed(b, 10000) }
func BenchmarkCutEmbed100000(b *testing.B) { benchmarkCutEmbed(b, 100000) }

func BenchmarkMove10(b *testing.B)     { benchmarkMove(b, 10) }
func BenchmarkMove100(b *testing.B)    { benchmarkMove(b, 100) }
func BenchmarkMove1000(b *testing.B)   { benchmarkMove(b, 1000) }
func BenchmarkMove10000(b *testing.B)  { benchmarkMove(b, 10000) }
func BenchmarkMove100000(b *testing.B) { benchmarkMove(b, 100000) }
