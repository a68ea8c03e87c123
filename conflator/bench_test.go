package conflator

import (
	"testing"
)

func BenchmarkLastValueSet(b *testing.B) {
	c, _ := NewLastValue[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set(i%1024, i)
	}
}

func BenchmarkOHLCSet(b *testing.B) {
	c, _ := NewOHLC[int, float64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set(i%1024, float64(i))
	}
}

func BenchmarkMeanSet(b *testing.B) {
	c, _ := NewMean[int, float64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set(i%1024, float64(i))
	}
}
