// SPDX-License-Identifier: MIT
// Package: dynamic
//
// Purpose:
//   - Whitespace-delimited text I/O for Sequence and SquareMatrix.
//   - Reading consumes exactly as many tokens as the container holds; there is
//     no length prefix in either direction.
//   - Reads are all-or-nothing: tokens are parsed into a scratch buffer that is
//     swapped in only after every element parsed.
//
// Notes:
//   - Readers that cannot unread are decoded one byte at a time, so a read
//     stops right after the delimiter that ends the last token. Consecutive
//     ReadFrom calls on the same plain io.Reader see every token.

package dynamic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const ctxWriteTo = "WriteTo"

// maxEmptyReads bounds retries on a reader that returns (0, nil).
const maxEmptyReads = 100

// runeSource is what fmt.Fscan needs to avoid reading past a token.
type runeSource interface {
	io.Reader
	io.RuneScanner
}

// runeReader decodes runes from a plain io.Reader without read-ahead and
// keeps one rune of pushback.
type runeReader struct {
	r       io.Reader
	raw     [utf8.UTFMax]byte // bytes of the last rune read
	size    int               // len of raw in use
	off     int               // bytes of a pushed-back rune already served by Read
	unread  bool              // raw[off:size] is pending
	canBack bool              // UnreadRune is allowed
}

func (rr *runeReader) readByte() (byte, error) {
	var one [1]byte
	for i := 0; i < maxEmptyReads; i++ {
		n, err := rr.r.Read(one[:])
		if n == 1 {
			return one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}

	return 0, io.ErrNoProgress
}

func (rr *runeReader) ReadRune() (rune, int, error) {
	if rr.unread {
		rr.unread, rr.canBack = false, true
		r, _ := utf8.DecodeRune(rr.raw[rr.off:rr.size])
		n := rr.size - rr.off
		rr.off = 0

		return r, n, nil
	}
	rr.canBack = false
	b, err := rr.readByte()
	if err != nil {
		return 0, 0, err
	}
	rr.raw[0], rr.size = b, 1
	for b >= utf8.RuneSelf && rr.size < utf8.UTFMax && !utf8.FullRune(rr.raw[:rr.size]) {
		c, err := rr.readByte()
		if err != nil {
			break
		}
		rr.raw[rr.size] = c
		rr.size++
	}
	r, _ := utf8.DecodeRune(rr.raw[:rr.size])
	rr.canBack = true

	return r, rr.size, nil
}

func (rr *runeReader) UnreadRune() error {
	if !rr.canBack {
		return bufio.ErrInvalidUnreadRune
	}
	rr.unread, rr.canBack, rr.off = true, false, 0

	return nil
}

func (rr *runeReader) Read(p []byte) (int, error) {
	rr.canBack = false
	if !rr.unread {
		return rr.r.Read(p)
	}
	n := copy(p, rr.raw[rr.off:rr.size])
	rr.off += n
	if rr.off == rr.size {
		rr.unread, rr.off = false, 0
	}

	return n, nil
}

// countingSource tracks the bytes consumed from an underlying runeSource,
// net of unread runes, so ReadFrom can report io.ReaderFrom-style counts.
type countingSource struct {
	src  runeSource
	n    int64
	last int // size of the last rune read, for UnreadRune
}

// newCountingSource wraps r; readers that cannot unread get a runeReader.
func newCountingSource(r io.Reader) *countingSource {
	if cs, ok := r.(*countingSource); ok {
		return cs
	}
	rs, ok := r.(runeSource)
	if !ok {
		rs = &runeReader{r: r}
	}

	return &countingSource{src: rs}
}

func (c *countingSource) Read(p []byte) (int, error) {
	n, err := c.src.Read(p)
	c.n += int64(n)
	c.last = 0

	return n, err
}

func (c *countingSource) ReadRune() (r rune, size int, err error) {
	r, size, err = c.src.ReadRune()
	c.n += int64(size)
	c.last = size

	return r, size, err
}

func (c *countingSource) UnreadRune() error {
	if err := c.src.UnreadRune(); err != nil {
		return err
	}
	c.n -= int64(c.last)
	c.last = 0

	return nil
}

// scanInto parses len(dst) tokens from cs into dst. done is the number of
// tokens the caller already consumed for the same container; a stream that
// ends after at least one token reports io.ErrUnexpectedEOF.
func scanInto[T Number](cs *countingSource, dst []T, done int) error {
	for i := range dst {
		if _, err := fmt.Fscan(cs, &dst[i]); err != nil {
			if errors.Is(err, io.EOF) && done+i > 0 {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// writeElems writes each element followed by a single space.
// It returns the bytes accepted by bw.
func writeElems[T Number](bw *bufio.Writer, src []T) (int64, error) {
	var total int64
	for i := range src {
		n, err := fmt.Fprint(bw, src[i], _fmtElemSep)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// delivered converts bytes accepted by bw into bytes that reached the
// underlying writer; whatever is still buffered never made it.
func delivered(bw *bufio.Writer, accepted int64) int64 {
	return accepted - int64(bw.Buffered())
}

// ReadFrom reads exactly Len() whitespace-delimited elements from r in index order.
// MAIN DESCRIPTION:
//   - Parse tokens into T via fmt.Fscan; newlines count as whitespace.
//
// Implementation:
//   - Stage 1: wrap r for rune-level scanning and byte counting.
//   - Stage 2: parse into a scratch buffer of Len() elements.
//   - Stage 3: swap the scratch buffer in on success.
//
// Behavior highlights:
//   - On error the receiver is unchanged.
//
// Returns:
//   - bytes consumed from r (as observed through the scanner) and any error.
//
// Errors:
//   - parse errors from fmt, io.EOF (no tokens), io.ErrUnexpectedEOF (short input).
func (s *Sequence[T]) ReadFrom(r io.Reader) (int64, error) {
	cs := newCountingSource(r)
	start := cs.n
	tmp := newStore[T](s.buf.n)
	if err := scanInto(cs, tmp.data, 0); err != nil {
		return cs.n - start, seqErrorf(ctxReadFrom, err)
	}
	s.buf.swap(&tmp)

	return cs.n - start, nil
}

// WriteTo writes every element followed by a space, in index order.
// On error the count covers only bytes that reached w.
// Complexity: O(n).
func (s *Sequence[T]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := writeElems(bw, s.buf.data)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return delivered(bw, n), seqErrorf(ctxWriteTo, err)
	}

	return n, nil
}

// ReadFrom reads Dim() rows of Dim() elements each, row-major.
// Tokens may be laid out arbitrarily across lines.
// On error the receiver is unchanged.
func (m *SquareMatrix[T]) ReadFrom(r io.Reader) (int64, error) {
	cs := newCountingSource(r)
	start := cs.n
	n := m.rows.n
	tmp := newStore[Sequence[T]](n)
	for i := 0; i < n; i++ {
		tmp.data[i] = Sequence[T]{buf: newStore[T](n)}
		if err := scanInto(cs, tmp.data[i].buf.data, i*n); err != nil {
			return cs.n - start, fmt.Errorf("SquareMatrix.%s: row %d: %w", ctxReadFrom, i, err)
		}
	}
	m.rows.swap(&tmp)

	return cs.n - start, nil
}

// WriteTo writes one row per line, each row using the Sequence element format.
func (m *SquareMatrix[T]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for i := 0; i < m.rows.n; i++ {
		n, err := writeElems(bw, m.rows.data[i].buf.data)
		total += n
		if err != nil {
			return delivered(bw, total), matErrorf(ctxWriteTo, err)
		}
		k, err := bw.WriteString(_fmtRowEnd)
		total += int64(k)
		if err != nil {
			return delivered(bw, total), matErrorf(ctxWriteTo, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return delivered(bw, total), matErrorf(ctxWriteTo, err)
	}

	return total, nil
}
