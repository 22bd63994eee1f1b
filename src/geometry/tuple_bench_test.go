package geometry

import "testing"

var (
	benchTupleResult Tuple
	benchFloatResult float64
	benchBoolResult  bool

	benchTuple1 = Vector(1, 2, 3)
	benchTuple2 = Vector(2, 3, 4)
)

func BenchmarkTupleAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchTupleResult = benchTuple1.Add(benchTuple2)
	}
}

func BenchmarkTupleNormalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchTupleResult = benchTuple1.Normalize()
	}
}

func BenchmarkTupleDot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult, benchBoolResult = benchTuple1.Dot(benchTuple2)
	}
}

func BenchmarkTupleCross(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchTupleResult, benchBoolResult = benchTuple1.Cross(benchTuple2)
	}
}

func BenchmarkTupleEquals(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchBoolResult = benchTuple1.Equals(benchTuple2)
	}
}
