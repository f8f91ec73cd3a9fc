package bptree

import "testing"

func BenchmarkInsertSequential(b *testing.B) {
	tree, _ := New(Config[int]{Less: intLess})
	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}

func BenchmarkInsertEraseChurn(b *testing.B) {
	tree, _ := New(Config[int]{Less: intLess})
	for i := 0; i < 1024; i++ {
		tree.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Erase(i % 1024)
		tree.Insert(i % 1024)
	}
}
