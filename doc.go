// Package tdynamic is a small numeric container library: fixed-length
// sequences and square matrices with value semantics.
//
// 🚀 What is inside?
//
//	• dynamic.Sequence[T]     — fixed-length vector, bounds-checked access,
//	                            scalar ops, Add/Sub, Dot
//	• dynamic.SquareMatrix[T] — n×n matrix built from n row sequences,
//	                            MulScalar, MulVec, Add/Sub, Mul, Transpose
//	• text I/O                — whitespace-delimited ReadFrom/WriteTo
//	• cmd/tdcalc              — command-line calculator over text operands
//
// ✨ Guarantees:
//
//   - Every container owns its storage; copies are deep, arithmetic is pure.
//   - No panics on user errors: ErrSize, ErrIndex, ErrSizeMismatch and
//     ErrInvalidArgument are returned and matchable with errors.Is.
//   - Pure Go, single-threaded value types.
//
// Layout:
//
//	dynamic/     — Sequence, SquareMatrix, errors, text I/O
//	cmd/tdcalc/  — CLI (YAML job files, logrus logging)
//	examples/    — runnable scenarios (Markov chain, Fibonacci by matrix power)
//
//	go get github.com/katalvlaran/tdynamic/dynamic
package tdynamic
