// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/tdynamic/dynamic"
)

// opFunc reads its operands from r and writes the result to w.
type opFunc func(cfg *Config, r io.Reader, w io.Writer) error

// ops is the operation table; keys are the -op values.
var ops = map[string]opFunc{
	"vadd":       seqBinary((*dynamic.Sequence[float64]).Add),
	"vsub":       seqBinary((*dynamic.Sequence[float64]).Sub),
	"vdot":       seqDot,
	"vscale":     seqScale,
	"madd":       squareBinary((*dynamic.SquareMatrix[float64]).Add),
	"msub":       squareBinary((*dynamic.SquareMatrix[float64]).Sub),
	"mmul":       squareBinary((*dynamic.SquareMatrix[float64]).Mul),
	"mscale":     squareScale,
	"mvec":       squareVec,
	"mtranspose": squareTranspose,
}

func readSeq(r io.Reader, n int) (*dynamic.Sequence[float64], error) {
	s, err := dynamic.New[float64](n)
	if err != nil {
		return nil, err
	}
	if _, err = s.ReadFrom(r); err != nil {
		return nil, err
	}
	return s, nil
}

func readSquare(r io.Reader, n int) (*dynamic.SquareMatrix[float64], error) {
	m, err := dynamic.NewSquare[float64](n)
	if err != nil {
		return nil, err
	}
	if _, err = m.ReadFrom(r); err != nil {
		return nil, err
	}
	return m, nil
}

// writeSeq writes s on a single line.
func writeSeq(w io.Writer, s *dynamic.Sequence[float64]) error {
	if _, err := s.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func seqBinary(op func(a, b *dynamic.Sequence[float64]) (*dynamic.Sequence[float64], error)) opFunc {
	return func(cfg *Config, r io.Reader, w io.Writer) error {
		a, err := readSeq(r, cfg.Dim)
		if err != nil {
			return err
		}
		b, err := readSeq(r, cfg.Dim)
		if err != nil {
			return err
		}
		res, err := op(a, b)
		if err != nil {
			return err
		}
		return writeSeq(w, res)
	}
}

func seqDot(cfg *Config, r io.Reader, w io.Writer) error {
	a, err := readSeq(r, cfg.Dim)
	if err != nil {
		return err
	}
	b, err := readSeq(r, cfg.Dim)
	if err != nil {
		return err
	}
	d, err := a.Dot(b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, d)
	return err
}

func seqScale(cfg *Config, r io.Reader, w io.Writer) error {
	a, err := readSeq(r, cfg.Dim)
	if err != nil {
		return err
	}
	return writeSeq(w, a.MulScalar(cfg.Scalar))
}

func squareBinary(op func(a, b *dynamic.SquareMatrix[float64]) (*dynamic.SquareMatrix[float64], error)) opFunc {
	return func(cfg *Config, r io.Reader, w io.Writer) error {
		a, err := readSquare(r, cfg.Dim)
		if err != nil {
			return err
		}
		b, err := readSquare(r, cfg.Dim)
		if err != nil {
			return err
		}
		res, err := op(a, b)
		if err != nil {
			return err
		}
		_, err = res.WriteTo(w)
		return err
	}
}

func squareScale(cfg *Config, r io.Reader, w io.Writer) error {
	m, err := readSquare(r, cfg.Dim)
	if err != nil {
		return err
	}
	_, err = m.MulScalar(cfg.Scalar).WriteTo(w)
	return err
}

func squareVec(cfg *Config, r io.Reader, w io.Writer) error {
	m, err := readSquare(r, cfg.Dim)
	if err != nil {
		return err
	}
	v, err := readSeq(r, cfg.Dim)
	if err != nil {
		return err
	}
	res, err := m.MulVec(v)
	if err != nil {
		return err
	}
	return writeSeq(w, res)
}

func squareTranspose(cfg *Config, r io.Reader, w io.Writer) error {
	m, err := readSquare(r, cfg.Dim)
	if err != nil {
		return err
	}
	_, err = m.Transpose().WriteTo(w)
	return err
}

// run executes one job. Operands are read from one buffered reader; being an
// io.RuneScanner it is scanned directly, without per-byte reads of in.
func run(cfg *Config, in io.Reader, out io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	return ops[cfg.Op](cfg, bufio.NewReader(in), out)
}
